package load

import "errors"

var (
	ErrLoadNotFound      = errors.New("load not found")
	ErrInvalidDimensions = errors.New("load dimensions out of range")
	ErrInvalidPayload    = errors.New("load payload out of range")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidLoadStatus = errors.New("invalid load status")
	ErrEmptyModify       = errors.New("nothing to update")
)
