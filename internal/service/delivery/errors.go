package delivery

import "errors"

// ErrLoadWithoutTruck - назначенный груз без записанной машины, освобождать нечего.
var ErrLoadWithoutTruck = errors.New("assigned load has no truck")
