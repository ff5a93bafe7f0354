package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image dimensions must be positive")
	ErrNilWorld          = errors.New("renderer: no world defined")
)
