package crypto

import "errors"

var (
	ErrNoData                 = errors.New("no data was passed")
	ErrInvalidSize            = errors.New("buffer has invalid size")
	ErrUnsupportedCipherSuite = errors.New("unsupported cipher suite")
	ErrInvalidKeyLength       = errors.New("key length does not match cipher suite")
	ErrAlreadyKeyed           = errors.New("session already keyed")
	ErrNotKeyed               = errors.New("session not keyed")
	ErrCapacityExceeded       = errors.New("encrypted payload would exceed max payload size")
	ErrPayloadTooShort        = errors.New("encrypted payload is smaller than the minimum")
	ErrAuthenticationFailed   = errors.New("packet failed authentication")
	ErrReplayDetected         = errors.New("packet replay detected")
)
