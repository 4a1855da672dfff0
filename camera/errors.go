package camera

import "errors"

var (
	ErrInvalidDimensions  = errors.New("camera: image width and height must both be positive")
	ErrBothFOVUnset       = errors.New("camera: neither vertical nor horizontal field of view was set")
	ErrDegenerateBasis    = errors.New("camera: direction and up vector are parallel, no camera basis exists")
	ErrInvalidSampleCount = errors.New("camera: samples per pixel must be positive")
	ErrInvalidMaxDepth    = errors.New("camera: max depth must be positive")
)
