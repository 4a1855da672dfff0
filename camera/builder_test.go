package camera

import (
	"math"
	"testing"

	"github.com/mtandon-io/lumentrace/rng"
	"github.com/mtandon-io/lumentrace/types"
)

func TestBuilderDefaultsToPinholeNinetyDegrees(t *testing.T) {
	cam, err := NewBuilder().
		ImageWidth(200).
		ImageHeight(112).
		Center(types.XYZ(0, 0, 0)).
		LookAt(types.XYZ(0, 0, -1)).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cam.ImageWidth != 200 || cam.ImageHeight != 112 {
		t.Fatalf("unexpected image dims: %dx%d", cam.ImageWidth, cam.ImageHeight)
	}

	gen := rng.NewGenerator(1)
	r := cam.Ray(100, 56, gen)
	if r.Dir.Z >= 0 {
		t.Fatalf("expected central ray to point roughly towards -z, got dir %+v", r.Dir)
	}
	if r.Origin != (types.Vec3{}) {
		t.Fatalf("expected default pinhole camera to emit rays from Center, got origin %+v", r.Origin)
	}

	// With a 90 degree vertical FOV the top row looks up at 45 degrees,
	// give or take one pixel of jitter (2/112).
	top := cam.Ray(100, 0, gen)
	if slope := top.Dir.Y / -top.Dir.Z; math.Abs(slope-1) > 0.02 {
		t.Fatalf("expected default 90 degree vertical FOV, got top-row slope %v", slope)
	}
}

func TestBuilderRejectsZeroDimensions(t *testing.T) {
	_, err := NewBuilder().ImageWidth(0).ImageHeight(100).Build()
	if err != ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestBuilderDirectionTowardsSetsOnce(t *testing.T) {
	b := NewBuilder().
		ImageWidth(100).
		ImageHeight(100).
		Center(types.XYZ(0, 0, 0)).
		DirectionTowards(types.XYZ(0, 0, -5)).
		DirectionTowards(types.XYZ(10, 0, 0))

	cam, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gen := rng.NewGenerator(1)
	r := cam.Ray(cam.ImageWidth/2, cam.ImageHeight/2, gen)
	if r.Dir.Z >= 0 {
		t.Fatalf("expected first DirectionTowards call to stick, got dir %+v", r.Dir)
	}
}

func TestBuilderDefocusDiskRadiusZeroWhenAngleZero(t *testing.T) {
	cam, err := NewBuilder().
		ImageWidth(64).
		ImageHeight(64).
		Center(types.XYZ(0, 0, 0)).
		LookAt(types.XYZ(0, 0, -1)).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gen := rng.NewGenerator(42)
	for i := 0; i < 10; i++ {
		r := cam.Ray(32, 32, gen)
		if math.Abs(r.Origin.X) > 1e-12 || math.Abs(r.Origin.Y) > 1e-12 {
			t.Fatalf("expected pinhole camera to emit rays from Center, got origin %+v", r.Origin)
		}
	}
}
