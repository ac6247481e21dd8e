package mock

import "errors"

var (
	errNotFound          = errors.New("record not found")
	errInvalidTransition = errors.New("illegal status transition")
)
