package types

import (
	"math"
	"testing"
)

func TestReflectIsInvolution(t *testing.T) {
	d := XYZ(1, -1, 0.5).Unit()
	n := XYZ(0, 1, 0)
	got := Reflect(Reflect(d, n), n)
	if math.Abs(got.X-d.X) > 1e-9 || math.Abs(got.Y-d.Y) > 1e-9 || math.Abs(got.Z-d.Z) > 1e-9 {
		t.Fatalf("reflect not involutive: got %+v want %+v", got, d)
	}
}

func TestRefractInverse(t *testing.T) {
	n := XYZ(0, 1, 0)
	d := XYZ(0.3, -1, 0).Unit()
	if d.Dot(n) >= 0 {
		t.Fatalf("test setup invalid: dot(d,n) must be negative")
	}
	eta := 0.9
	refracted, ok := Refract(d, n, eta)
	if !ok {
		t.Fatalf("expected refraction to succeed")
	}
	// Send the refracted ray back through the same boundary: reversed
	// direction, normal facing the reversed ray. It must retrace -d.
	back, ok := Refract(refracted.Negate(), n.Negate(), 1/eta)
	if !ok {
		t.Fatalf("expected inverse refraction to succeed")
	}
	want := d.Negate()
	if math.Abs(back.X-want.X) > 1e-9 || math.Abs(back.Y-want.Y) > 1e-9 || math.Abs(back.Z-want.Z) > 1e-9 {
		t.Fatalf("refract not invertible: got %+v want %+v", back, want)
	}
}

func TestRefractTotalInternalReflection(t *testing.T) {
	n := XYZ(0, 1, 0)
	// Grazing direction, large eta ratio forces TIR.
	d := XYZ(0.99, -0.14107, 0).Unit()
	if _, ok := Refract(d, n, 2.0); ok {
		t.Fatalf("expected total internal reflection to be detected")
	}
}

func TestNearZero(t *testing.T) {
	if !XYZ(1e-9, -1e-9, 0).NearZero() {
		t.Fatalf("expected near-zero vector to be detected")
	}
	if XYZ(1e-3, 0, 0).NearZero() {
		t.Fatalf("did not expect vector to be near-zero")
	}
}

func TestUnitVectorMagnitude(t *testing.T) {
	v := XYZ(3, 4, 0).Unit()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Fatalf("expected unit length, got %v", v.Length())
	}
}
