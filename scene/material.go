package scene

import (
	"math"

	"github.com/mtandon-io/lumentrace/rng"
	"github.com/mtandon-io/lumentrace/types"
)

// MaterialKind closes the set of scatter/emit behaviors a Material can
// exhibit, dispatched by a type switch rather than an interface vtable
// so the hottest loop (leaf intersect -> scatter) stays inlinable.
type MaterialKind uint8

const (
	Lambertian MaterialKind = iota
	Metal
	Dielectric
	DiffuseLight
)

// Material is a tagged union of the four scatter/emit behaviors. Only the
// fields relevant to Kind are meaningful.
type Material struct {
	Kind MaterialKind

	// Lambertian, Metal: reflectance.
	Albedo types.Color

	// Metal: reflection lobe perturbation, clamped to [0,1] by NewMetal.
	Fuzz float64

	// Dielectric: ratio of refractive indices.
	RefractIndex float64

	// DiffuseLight: emitted radiance is Intensity*EmitColor.
	EmitColor types.Color
	Intensity float64
}

// NewLambertian returns a diffuse material with the given reflectance.
func NewLambertian(albedo types.Color) *Material {
	return &Material{Kind: Lambertian, Albedo: albedo}
}

// NewMetal returns a specular material with the given reflectance and
// fuzz, clamping fuzz to [0,1].
func NewMetal(albedo types.Color, fuzz float64) *Material {
	if fuzz > 1 {
		fuzz = 1
	} else if fuzz < 0 {
		fuzz = 0
	}
	return &Material{Kind: Metal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric returns a refractive material with the given index of
// refraction.
func NewDielectric(refractIndex float64) *Material {
	return &Material{Kind: Dielectric, RefractIndex: refractIndex}
}

// NewDiffuseLight returns an emissive material; emit() = intensity*color.
func NewDiffuseLight(color types.Color, intensity float64) *Material {
	return &Material{Kind: DiffuseLight, EmitColor: color, Intensity: intensity}
}

// ScatterResult is the outcome of a successful Scatter call.
type ScatterResult struct {
	Scattered   types.Ray
	Attenuation types.Color
}

// Scatter computes the material's randomized reflection/refraction of an
// incident ray. ok is false when the ray is absorbed.
func (m *Material) Scatter(r types.Ray, hit HitRecord, gen *rng.Generator) (ScatterResult, bool) {
	switch m.Kind {
	case Lambertian:
		dir := hit.UnitNormal.Add(gen.UnitVector())
		if dir.NearZero() {
			dir = hit.UnitNormal
		}
		return ScatterResult{
			Scattered:   types.Ray{Origin: hit.Point, Dir: dir},
			Attenuation: m.Albedo,
		}, true

	case Metal:
		reflected := types.Reflect(r.Dir.Unit(), hit.UnitNormal)
		dir := reflected.Add(gen.UnitVector().Mul(m.Fuzz))
		if dir.Dot(hit.UnitNormal) <= 0 {
			return ScatterResult{}, false
		}
		return ScatterResult{
			Scattered:   types.Ray{Origin: hit.Point, Dir: dir},
			Attenuation: m.Albedo,
		}, true

	case Dielectric:
		etaRatio := m.RefractIndex
		if hit.FrontFace {
			etaRatio = 1.0 / m.RefractIndex
		}
		unitDir := r.Dir.Unit()
		cosTheta := math.Min(unitDir.Negate().Dot(hit.UnitNormal), 1.0)

		var dir types.Vec3
		refracted, canRefract := types.Refract(unitDir, hit.UnitNormal, etaRatio)
		if !canRefract || schlickReflectance(cosTheta, etaRatio) > gen.Float64() {
			dir = types.Reflect(unitDir, hit.UnitNormal)
		} else {
			dir = refracted
		}
		return ScatterResult{
			Scattered:   types.Ray{Origin: hit.Point, Dir: dir},
			Attenuation: types.Color{X: 1, Y: 1, Z: 1},
		}, true

	default: // DiffuseLight
		return ScatterResult{}, false
	}
}

// Emit returns the material's emitted radiance; non-emitters return zero.
func (m *Material) Emit() types.Color {
	if m.Kind != DiffuseLight {
		return types.Color{}
	}
	return m.EmitColor.Mul(m.Intensity)
}

// schlickReflectance approximates the Fresnel reflectance for a
// dielectric boundary.
func schlickReflectance(cosTheta, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
