package format

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrNotAcceptable = errors.New("none of the requested content types is supported")
)
