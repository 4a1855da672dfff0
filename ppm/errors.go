package ppm

import "errors"

var (
	ErrBadHeader         = errors.New("ppm: expected \"P3\" header")
	ErrBadDimensions     = errors.New("ppm: width and height must be positive")
	ErrBadMaxMagnitude   = errors.New("ppm: max magnitude must be positive")
	ErrUnexpectedEOF     = errors.New("ppm: unexpected end of input")
	ErrChannelOutOfRange = errors.New("ppm: channel value out of [0,max] range")
)
