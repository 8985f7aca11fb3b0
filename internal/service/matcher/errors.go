package matcher

import "errors"

var ErrNoEligibleTruck = errors.New("no eligible truck")
