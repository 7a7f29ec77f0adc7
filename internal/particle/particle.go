// Package particle simulates the drifting, pointer-repelled dot field drawn
// behind the site.
package particle

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/vybe/internal/mathutil"
)

const (
	// RepulsionRadius is the pointer distance under which particles are pushed away.
	RepulsionRadius = 250.0
	// ReturnDivisor controls how fast a displaced particle relaxes to its base.
	ReturnDivisor = 40.0
	// AreaPerParticle is the viewport area (px²) that yields one particle.
	AreaPerParticle = 10000.0

	PurpleChance = 0.12
	DriftScale   = 0.3
)

var (
	Lavender = color.NRGBA{R: 143, G: 107, B: 255, A: 255}
	White    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Particle is a single dot. Only the field that created it mutates it.
type Particle struct {
	X, Y           float64
	BaseX, BaseY   float64
	DriftX, DriftY float64

	Size     float64
	Density  float64
	Alpha    float64
	IsPurple bool
}

// Bounds is the extent particles' base positions are confined to.
type Bounds struct {
	Width, Height float64
}

// Pointer is the last known cursor position.
type Pointer struct {
	X, Y float64
}

// Offscreen is the initial pointer position, far enough away that no
// particle starts inside the repulsion radius.
var Offscreen = Pointer{X: -1000, Y: -1000}

// Surface is anything particles can be drawn onto.
type Surface interface {
	Clear()
	FillCircle(x, y, radius float64, clr color.Color)
}

func newParticle(rng *rand.Rand, b Bounds) Particle {
	p := Particle{
		X:        rng.Float64() * b.Width,
		Y:        rng.Float64() * b.Height,
		Size:     rng.Float64()*2 + 0.5,
		Density:  rng.Float64()*30 + 1,
		Alpha:    rng.Float64()*0.4 + 0.05,
		DriftX:   (rng.Float64() - 0.5) * DriftScale,
		DriftY:   (rng.Float64() - 0.5) * DriftScale,
		IsPurple: rng.Float64() < PurpleChance,
	}
	p.BaseX, p.BaseY = p.X, p.Y
	return p
}

// Update advances p by one frame against the pointer and bounds.
func Update(p *Particle, ptr Pointer, b Bounds) {
	p.BaseX += p.DriftX
	p.BaseY += p.DriftY

	// Axes are reflected independently.
	if p.BaseX < 0 || p.BaseX > b.Width {
		p.DriftX = -p.DriftX
		p.BaseX = mathutil.Clamp(p.BaseX, 0, b.Width)
	}
	if p.BaseY < 0 || p.BaseY > b.Height {
		p.DriftY = -p.DriftY
		p.BaseY = mathutil.Clamp(p.BaseY, 0, b.Height)
	}

	dx := ptr.X - p.X
	dy := ptr.Y - p.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	if distance < RepulsionRadius {
		force := (RepulsionRadius - distance) / RepulsionRadius
		if distance > 0 {
			p.X -= (dx / distance) * force * p.Density
			p.Y -= (dy / distance) * force * p.Density
		}
		return
	}

	if p.X != p.BaseX {
		p.X += (p.BaseX - p.X) / ReturnDivisor
	}
	if p.Y != p.BaseY {
		p.Y += (p.BaseY - p.Y) / ReturnDivisor
	}
}

// Draw paints p onto s at its current position.
func Draw(p *Particle, s Surface) {
	s.FillCircle(p.X, p.Y, p.Size, p.Color())
}

// Color returns the fill color including the particle's opacity.
func (p *Particle) Color() color.NRGBA {
	c := White
	if p.IsPurple {
		c = Lavender
	}
	c.A = uint8(math.Round(mathutil.Clamp(p.Alpha, 0, 1) * 255))
	return c
}
