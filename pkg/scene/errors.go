package scene

import "errors"

var (
	ErrUnknownScene    = errors.New("scene: unknown scene")
	ErrUnknownMaterial = errors.New("scene: unknown material")
	ErrInvalidObject   = errors.New("scene: invalid object")
)
