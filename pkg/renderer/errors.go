package renderer

import "errors"

var (
	ErrNilWorld      = errors.New("renderer: no world defined")
	ErrNilCamera     = errors.New("renderer: no camera defined")
	ErrUnknownFormat = errors.New("renderer: unknown image format")
)
