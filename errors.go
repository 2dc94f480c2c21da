package lsag

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrEncodingOverflow = errors.New("value overflows its encoding slot")
	ErrInternal         = errors.New("internal error")

	ErrLinked       = errors.New("key image already used in this ring")
	ErrBadSignature = errors.New("signature verification failed")
)
