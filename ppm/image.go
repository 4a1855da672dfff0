// Package ppm owns the Image pixel container and the plain NetPBM P3
// codec the renderer writes frames through.
package ppm

import "github.com/mtandon-io/lumentrace/types"

// Image is a row-major grid of linear-radiance pixels. The renderer's
// row workers write to disjoint rows concurrently; Image itself performs
// no locking.
type Image struct {
	Width, Height int
	Pixels        []types.Color
}

// NewImage allocates a black width x height image.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]types.Color, width*height),
	}
}

// Set stores c at (x,y).
func (img *Image) Set(x, y int, c types.Color) {
	img.Pixels[y*img.Width+x] = c
}

// At returns the color at (x,y).
func (img *Image) At(x, y int) types.Color {
	return img.Pixels[y*img.Width+x]
}
