package rng

import (
	"math"

	"github.com/mtandon-io/lumentrace/types"
)

const (
	lcgMultiplier uint32 = 1_664_525
	lcgIncrement  uint32 = 1_013_904_223
)

// Generator is a per-thread linear congruential generator. It is not
// safe for concurrent use; each render worker owns exactly one.
type Generator struct {
	state uint32
}

// NewGenerator seeds a Generator from the given 64-bit seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{state: uint32(seed)}
}

// next advances the LCG state and returns it.
func (g *Generator) next() uint32 {
	g.state = lcgMultiplier*g.state + lcgIncrement
	return g.state
}

// Float64 returns a value uniformly distributed in [0,1].
func (g *Generator) Float64() float64 {
	return float64(g.next()) / float64(math.MaxUint32)
}

// Range returns a value uniformly distributed in [min,max] via affine
// scaling of Float64.
func (g *Generator) Range(min, max float64) float64 {
	return min + (max-min)*g.Float64()
}

// Vec3 returns a vector with each component uniform in [min,max].
func (g *Generator) Vec3(min, max float64) types.Vec3 {
	return types.Vec3{X: g.Range(min, max), Y: g.Range(min, max), Z: g.Range(min, max)}
}

// UnitVector returns a direction uniformly distributed over the unit
// sphere, obtained by rejection-sampling the unit ball then normalizing.
func (g *Generator) UnitVector() types.Vec3 {
	for {
		v := g.Vec3(-1, 1)
		lenSq := v.LengthSquared()
		if 1e-160 < lenSq && lenSq < 1 {
			return v.Mul(1 / math.Sqrt(lenSq))
		}
	}
}

// InUnitDisk returns a point uniformly distributed in the 2D unit disk,
// embedded on the z=0 plane.
func (g *Generator) InUnitDisk() types.Vec3 {
	for {
		v := types.Vec3{X: g.Range(-1, 1), Y: g.Range(-1, 1), Z: 0}
		if v.LengthSquared() < 1 {
			return v
		}
	}
}

// InUnitSquare returns a point uniform in [-0.5,0.5]^2 on the z=0 plane,
// used to jitter a camera ray's target within a pixel for stratified
// sampling.
func (g *Generator) InUnitSquare() (dx, dy float64) {
	return g.Range(-0.5, 0.5), g.Range(-0.5, 0.5)
}
