package ratingcode

import "errors"

var ErrCodeSpaceExhausted = errors.New("rating code space exhausted")
