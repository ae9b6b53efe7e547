package ext

import "errors"

var (
	ErrNoData       = errors.New("no data was passed")
	ErrInvalidSize  = errors.New("extension payload has invalid size")
	ErrInvalidValue = errors.New("extension field has invalid value")
)
