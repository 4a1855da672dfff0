package camera

import (
	"math"

	"github.com/mtandon-io/lumentrace/types"
)

const (
	defaultVerticalFOVDeg  = 90.0
	defaultSamplesPerPixel = 100
	defaultMaxDepth        = 10
)

type fovKind uint8

const (
	fovVertical fovKind = iota
	fovHorizontal
)

// Builder accumulates the recognized camera options and resolves them
// into a Camera at Build. Methods return the Builder so calls can be
// chained.
type Builder struct {
	imageWidth, imageHeight   int
	aspectRatio               float64
	widthFromAspect           bool
	heightFromAspect          bool

	center types.Point3

	direction    types.Vec3
	directionSet bool

	lookAt    types.Point3
	lookAtSet bool

	up types.Vec3

	fov     float64
	fovKind fovKind
	fovSet  bool

	focusDistance    float64
	focusDistanceSet bool

	defocusAngleDeg float64

	samplesPerPixel int
	maxDepth        int

	background    types.Color
	hasBackground bool
}

// NewBuilder returns a Builder with every option at its documented
// default.
func NewBuilder() *Builder {
	return &Builder{
		up:              types.XYZ(0, 1, 0),
		fov:             defaultVerticalFOVDeg,
		fovKind:         fovVertical,
		samplesPerPixel: defaultSamplesPerPixel,
		maxDepth:        defaultMaxDepth,
	}
}

// ImageWidth sets the pixel width directly.
func (b *Builder) ImageWidth(w int) *Builder {
	b.imageWidth = w
	b.widthFromAspect = false
	return b
}

// ImageHeight sets the pixel height directly.
func (b *Builder) ImageHeight(h int) *Builder {
	b.imageHeight = h
	b.heightFromAspect = false
	return b
}

// ImageByWidthAndAspectRatio sets the width directly and derives the
// height as width/aspectRatio at Build time.
func (b *Builder) ImageByWidthAndAspectRatio(w int, aspectRatio float64) *Builder {
	b.imageWidth = w
	b.aspectRatio = aspectRatio
	b.heightFromAspect = true
	return b
}

// ImageByHeightAndAspectRatio sets the height directly and derives the
// width as height*aspectRatio at Build time.
func (b *Builder) ImageByHeightAndAspectRatio(h int, aspectRatio float64) *Builder {
	b.imageHeight = h
	b.aspectRatio = aspectRatio
	b.widthFromAspect = true
	return b
}

// Center sets the eye position.
func (b *Builder) Center(p types.Point3) *Builder {
	b.center = p
	return b
}

// Direction sets the look direction vector directly.
func (b *Builder) Direction(v types.Vec3) *Builder {
	b.direction = v
	b.directionSet = true
	b.lookAtSet = false
	return b
}

// DirectionTowards sets the look direction to p-Center, but only the
// first time it is called; later calls are ignored, matching the
// "direction_towards" option's "sets direction once" semantics.
func (b *Builder) DirectionTowards(p types.Point3) *Builder {
	if b.directionSet || b.lookAtSet {
		return b
	}
	b.direction = p.Sub(b.center)
	b.directionSet = true
	return b
}

// LookAt always recomputes the direction at Build time as p-Center,
// overriding any prior Direction/DirectionTowards call.
func (b *Builder) LookAt(p types.Point3) *Builder {
	b.lookAt = p
	b.lookAtSet = true
	return b
}

// Up sets the view-up hint.
func (b *Builder) Up(v types.Vec3) *Builder {
	b.up = v
	return b
}

// FocusDistance overrides the default focus distance (|direction|).
func (b *Builder) FocusDistance(d float64) *Builder {
	b.focusDistance = d
	b.focusDistanceSet = true
	return b
}

// DefocusAngleDeg sets the thin-lens aperture cone angle; 0 is a pinhole.
func (b *Builder) DefocusAngleDeg(deg float64) *Builder {
	b.defocusAngleDeg = deg
	return b
}

// TurnBlurOff is equivalent to DefocusAngleDeg(0).
func (b *Builder) TurnBlurOff() *Builder {
	b.defocusAngleDeg = 0
	return b
}

// VerticalFOVDeg sets the vertical field of view. Vertical and
// horizontal FOV are mutually exclusive; whichever was called last wins.
func (b *Builder) VerticalFOVDeg(deg float64) *Builder {
	b.fov = deg
	b.fovKind = fovVertical
	b.fovSet = true
	return b
}

// HorizontalFOVDeg sets the horizontal field of view. Vertical and
// horizontal FOV are mutually exclusive; whichever was called last wins.
func (b *Builder) HorizontalFOVDeg(deg float64) *Builder {
	b.fov = deg
	b.fovKind = fovHorizontal
	b.fovSet = true
	return b
}

// SamplesPerPixel sets the Monte Carlo sample count per pixel.
func (b *Builder) SamplesPerPixel(n int) *Builder {
	b.samplesPerPixel = n
	return b
}

// MaxDepth sets the recursion depth cap.
func (b *Builder) MaxDepth(n int) *Builder {
	b.maxDepth = n
	return b
}

// Background overrides the default sky gradient with a flat miss color.
func (b *Builder) Background(c types.Color) *Builder {
	b.background = c
	b.hasBackground = true
	return b
}

// Build resolves every option into a Camera, deriving the viewport basis,
// pixel deltas and defocus disk. It returns an error for any invalid
// configuration (zero image dimensions, no FOV, a degenerate up/direction
// pair, non-positive sample count or max depth).
func (b *Builder) Build() (*Camera, error) {
	width, height, err := b.resolveDimensions()
	if err != nil {
		return nil, err
	}
	if !b.fovSet && b.fov == 0 {
		return nil, ErrBothFOVUnset
	}
	if b.samplesPerPixel <= 0 {
		return nil, ErrInvalidSampleCount
	}
	if b.maxDepth <= 0 {
		return nil, ErrInvalidMaxDepth
	}

	direction := b.direction
	if b.lookAtSet {
		direction = b.lookAt.Sub(b.center)
	} else if !b.directionSet {
		direction = types.XYZ(0, 0, -1)
	}

	focusDistance := direction.Length()
	if b.focusDistanceSet {
		focusDistance = b.focusDistance
	}

	ez := direction.Unit().Negate()
	ex := b.up.Cross(ez)
	if ex.NearZero() {
		return nil, ErrDegenerateBasis
	}
	ex = ex.Unit()
	ey := ez.Cross(ex)

	aspect := float64(width) / float64(height)
	var viewportHeight float64
	switch b.fovKind {
	case fovHorizontal:
		viewportWidth := 2 * focusDistance * math.Tan(radians(b.fov)/2)
		viewportHeight = viewportWidth / aspect
	default:
		viewportHeight = 2 * focusDistance * math.Tan(radians(b.fov)/2)
	}
	viewportWidth := viewportHeight * aspect

	viewportU := ex.Mul(viewportWidth)
	viewportV := ey.Mul(-viewportHeight)

	pixelDeltaU := viewportU.Mul(1 / float64(width))
	pixelDeltaV := viewportV.Mul(1 / float64(height))

	viewportUpperLeft := b.center.
		Sub(ez.Mul(focusDistance)).
		Sub(viewportU.Mul(0.5)).
		Sub(viewportV.Mul(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5))

	defocusRadius := focusDistance * math.Tan(radians(b.defocusAngleDeg)/2)

	return &Camera{
		ImageWidth:      width,
		ImageHeight:     height,
		center:          b.center,
		pixel00:         pixel00,
		pixelDeltaU:     pixelDeltaU,
		pixelDeltaV:     pixelDeltaV,
		defocusAngle:    radians(b.defocusAngleDeg),
		defocusDiskU:    ex.Mul(defocusRadius),
		defocusDiskV:    ey.Mul(defocusRadius),
		SamplesPerPixel: b.samplesPerPixel,
		MaxDepth:        b.maxDepth,
		Background:      b.background,
		HasBackground:   b.hasBackground,
	}, nil
}

func (b *Builder) resolveDimensions() (int, int, error) {
	width, height := b.imageWidth, b.imageHeight
	if b.widthFromAspect && b.aspectRatio > 0 {
		width = int(float64(height) * b.aspectRatio)
	}
	if b.heightFromAspect && b.aspectRatio > 0 {
		height = int(float64(width) / b.aspectRatio)
		if height < 1 {
			height = 1
		}
	}
	if width <= 0 || height <= 0 {
		return 0, 0, ErrInvalidDimensions
	}
	return width, height, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
