package particle

import (
	"math"
	"math/rand/v2"
)

// Field owns the particle set and the pointer it reacts to.
type Field struct {
	rng       *rand.Rand
	bounds    Bounds
	pointer   Pointer
	particles []Particle
}

// NewField returns an empty field seeded with seed. Call Resize before use.
func NewField(seed uint64) *Field {
	return &Field{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		pointer: Offscreen,
	}
}

// Count is the number of particles generated for a width×height viewport.
func Count(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(width * height / AreaPerParticle))
}

// Resize discards every particle and regenerates the set for the new size.
func (f *Field) Resize(width, height float64) {
	f.bounds = Bounds{Width: math.Max(width, 0), Height: math.Max(height, 0)}
	n := Count(width, height)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng, f.bounds)
	}
}

// MovePointer records the latest pointer position.
func (f *Field) MovePointer(x, y float64) {
	f.pointer = Pointer{X: x, Y: y}
}

// Step updates every particle once.
func (f *Field) Step() {
	for i := range f.particles {
		Update(&f.particles[i], f.pointer, f.bounds)
	}
}

// Render clears s and draws every particle.
func (f *Field) Render(s Surface) {
	s.Clear()
	for i := range f.particles {
		Draw(&f.particles[i], s)
	}
}

// Frame runs one update-then-draw pass.
func (f *Field) Frame(s Surface) {
	f.Step()
	f.Render(s)
}

func (f *Field) Bounds() Bounds           { return f.bounds }
func (f *Field) Pointer() Pointer         { return f.pointer }
func (f *Field) Len() int                 { return len(f.particles) }
func (f *Field) Particles() []Particle    { return f.particles }
func (f *Field) Particle(i int) *Particle { return &f.particles[i] }
