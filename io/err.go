package io

import (
	"errors"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputEnd     = errors.New(f("input exhausted"))
	ErrInputInvalid = errors.New(f("input invalid"))
	ErrOutputClosed = errors.New(f("output closed"))
)

// ErrNumber is an input word that is not an integer.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrNumber) Is(target error) bool {
	return target == ErrInputInvalid
}
