package dmencode

import "errors"

var (
	// ErrEmptyContents is returned when there is nothing to encode.
	ErrEmptyContents = errors.New("dmencode: empty contents")

	// ErrWriter is returned when contents cannot be encoded. The underlying
	// encoder error is wrapped alongside it.
	ErrWriter = errors.New("writer error")
)
