package network

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNotAvailable    = errors.New("not available")
	ErrNotSupported    = errors.New("not supported")
	ErrOperationFailed = errors.New("operation failed")
)
