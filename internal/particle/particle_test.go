package particle

import (
	"image/color"
	"math"
	"testing"
)

type recordingSurface struct {
	clears  int
	circles []circle
}

type circle struct {
	x, y, r float64
	clr     color.Color
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordingSurface) FillCircle(x, y, r float64, clr color.Color) {
	s.circles = append(s.circles, circle{x, y, r, clr})
}

const eps = 1e-9

func TestCount(t *testing.T) {
	testCases := []struct {
		w, h float64
		want int
	}{
		{1000, 1000, 100},
		{1920, 1080, 207},
		{99, 100, 0},
		{0, 800, 0},
		{-100, -100, 0},
		{1280, 800, 102},
	}
	for _, tc := range testCases {
		if got := Count(tc.w, tc.h); got != tc.want {
			t.Errorf("Count(%v, %v) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestResizeRegeneratesWithinBounds(t *testing.T) {
	f := NewField(1)
	f.Resize(1000, 1000)
	if f.Len() != 100 {
		t.Fatalf("expected 100 particles, got %d", f.Len())
	}
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= 1000 || p.Y < 0 || p.Y >= 1000 {
			t.Fatalf("particle %d out of range: (%f, %f)", i, p.X, p.Y)
		}
		if p.BaseX != p.X || p.BaseY != p.Y {
			t.Fatalf("particle %d base differs from position", i)
		}
		if p.Size < 0.5 || p.Size >= 2.5 {
			t.Errorf("particle %d size %f out of range", i, p.Size)
		}
		if p.Density < 1 || p.Density >= 31 {
			t.Errorf("particle %d density %f out of range", i, p.Density)
		}
		if p.Alpha < 0.05 || p.Alpha >= 0.45 {
			t.Errorf("particle %d alpha %f out of range", i, p.Alpha)
		}
		if math.Abs(p.DriftX) > DriftScale/2 || math.Abs(p.DriftY) > DriftScale/2 {
			t.Errorf("particle %d drift (%f, %f) out of range", i, p.DriftX, p.DriftY)
		}
	}

	f.Resize(300, 200)
	if f.Len() != 6 {
		t.Fatalf("expected 6 particles after shrink, got %d", f.Len())
	}
	if f.Bounds() != (Bounds{Width: 300, Height: 200}) {
		t.Fatalf("unexpected bounds %+v", f.Bounds())
	}
}

func TestZeroAreaFieldIsEmpty(t *testing.T) {
	f := NewField(3)
	f.Resize(0, 0)
	s := &recordingSurface{}
	f.Frame(s)
	if f.Len() != 0 {
		t.Fatalf("expected no particles, got %d", f.Len())
	}
	if s.clears != 1 || len(s.circles) != 0 {
		t.Fatalf("expected one clear and no circles, got %d clears %d circles", s.clears, len(s.circles))
	}
}

func TestPurpleFrequency(t *testing.T) {
	f := NewField(7)
	f.Resize(4000, 5000) // 2000 particles
	purple := 0
	for _, p := range f.Particles() {
		if p.IsPurple {
			purple++
		}
	}
	ratio := float64(purple) / float64(f.Len())
	// 4 standard deviations for n=2000, p=0.12
	if math.Abs(ratio-PurpleChance) > 0.03 {
		t.Fatalf("purple ratio %f too far from %f", ratio, PurpleChance)
	}
}

func TestBaseStaysInBounds(t *testing.T) {
	f := NewField(11)
	f.Resize(200, 150)
	for i := range f.Particles() {
		// exaggerate drift so walls are hit often
		p := f.Particle(i)
		p.DriftX *= 100
		p.DriftY *= 100
	}
	for step := 0; step < 2000; step++ {
		f.Step()
		for i, p := range f.Particles() {
			if p.BaseX < 0 || p.BaseX > 200 || p.BaseY < 0 || p.BaseY > 150 {
				t.Fatalf("step %d particle %d base out of bounds: (%f, %f)", step, i, p.BaseX, p.BaseY)
			}
		}
	}
}

func TestReflectionIsPerAxis(t *testing.T) {
	p := Particle{X: 5, Y: 50, BaseX: 5, BaseY: 50, DriftX: 2, DriftY: 1, Density: 1}
	b := Bounds{Width: 6, Height: 100}

	Update(&p, Offscreen, b)

	if p.BaseX != 6 || p.DriftX != -2 {
		t.Fatalf("expected x clamped to 6 with drift -2, got base %f drift %f", p.BaseX, p.DriftX)
	}
	if p.BaseY != 51 || p.DriftY != 1 {
		t.Fatalf("expected y untouched, got base %f drift %f", p.BaseY, p.DriftY)
	}

	// the reversal persists
	Update(&p, Offscreen, b)
	if p.BaseX != 4 || p.DriftX != -2 {
		t.Fatalf("expected x to keep moving left, got base %f drift %f", p.BaseX, p.DriftX)
	}
}

func TestRepulsionDisplacement(t *testing.T) {
	testCases := []struct {
		name    string
		ptr     Pointer
		density float64
	}{
		{"close", Pointer{X: 103, Y: 104}, 10},
		{"far edge", Pointer{X: 100 + 249, Y: 100}, 5},
		{"diagonal", Pointer{X: 20, Y: 30}, 30},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Particle{X: 100, Y: 100, BaseX: 100, BaseY: 100, Density: tc.density}
			dx, dy := tc.ptr.X-p.X, tc.ptr.Y-p.Y
			d := math.Hypot(dx, dy)

			Update(&p, tc.ptr, Bounds{Width: 1000, Height: 1000})

			mx, my := p.X-100, p.Y-100
			got := math.Hypot(mx, my)
			want := (RepulsionRadius - d) / RepulsionRadius * tc.density
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("displacement %f, want %f", got, want)
			}
			// directed away from the pointer: anti-parallel to (dx, dy)
			if cross := mx*dy - my*dx; math.Abs(cross) > 1e-9 {
				t.Fatalf("displacement not collinear with pointer, cross %f", cross)
			}
			if mx*dx+my*dy >= 0 {
				t.Fatal("displacement points toward the pointer")
			}
		})
	}
}

func TestPointerOnParticleLeavesItInPlace(t *testing.T) {
	f := NewField(5)
	f.Resize(1000, 1000)
	if f.Len() != 100 {
		t.Fatalf("expected 100 particles, got %d", f.Len())
	}
	p := f.Particle(0)
	p.DriftX, p.DriftY = 0, 0
	x, y := p.X, p.Y
	f.MovePointer(x, y)

	Update(p, f.Pointer(), f.Bounds())

	if p.X != x || p.Y != y {
		t.Fatalf("expected position unchanged, got (%f, %f) want (%f, %f)", p.X, p.Y, x, y)
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Fatal("NaN position")
	}
}

func TestRelaxationDecaysGeometrically(t *testing.T) {
	p := Particle{X: 180, Y: 20, BaseX: 100, BaseY: 100, Density: 1}
	b := Bounds{Width: 1000, Height: 1000}
	ptr := Pointer{X: 900, Y: 900}

	prevX, prevY := math.Abs(p.X-p.BaseX), math.Abs(p.Y-p.BaseY)
	for i := 0; i < 400; i++ {
		Update(&p, ptr, b)
		gx, gy := math.Abs(p.X-p.BaseX), math.Abs(p.Y-p.BaseY)
		if gx > prevX+eps || gy > prevY+eps {
			t.Fatalf("gap grew at step %d: (%f, %f) -> (%f, %f)", i, prevX, prevY, gx, gy)
		}
		if i == 0 {
			if math.Abs(gx-80*39.0/40.0) > eps || math.Abs(gy-80*39.0/40.0) > eps {
				t.Fatalf("expected first step ratio 39/40, got gaps (%f, %f)", gx, gy)
			}
		}
		prevX, prevY = gx, gy
	}
	if prevX > 0.01 || prevY > 0.01 {
		t.Fatalf("expected gap to approach zero, got (%f, %f)", prevX, prevY)
	}
}

func TestRelaxationSkipsSettledAxis(t *testing.T) {
	p := Particle{X: 100, Y: 120, BaseX: 100, BaseY: 100, Density: 1}
	Update(&p, Offscreen, Bounds{Width: 1000, Height: 1000})
	if p.X != 100 {
		t.Fatalf("expected settled x to stay 100, got %f", p.X)
	}
	if math.Abs(p.Y-119.5) > eps {
		t.Fatalf("expected y 119.5, got %f", p.Y)
	}
}

func TestRenderDrawsEveryParticle(t *testing.T) {
	f := NewField(9)
	f.Resize(500, 400)
	s := &recordingSurface{}
	f.Render(s)

	if s.clears != 1 {
		t.Fatalf("expected one clear, got %d", s.clears)
	}
	if len(s.circles) != f.Len() {
		t.Fatalf("expected %d circles, got %d", f.Len(), len(s.circles))
	}
	for i, c := range s.circles {
		p := f.Particles()[i]
		if c.x != p.X || c.y != p.Y || c.r != p.Size {
			t.Fatalf("circle %d does not match particle", i)
		}
		want := White
		if p.IsPurple {
			want = Lavender
		}
		got := c.clr.(color.NRGBA)
		if got.R != want.R || got.G != want.G || got.B != want.B {
			t.Fatalf("circle %d color %v, want hue %v", i, got, want)
		}
		if got.A != uint8(math.Round(p.Alpha*255)) {
			t.Fatalf("circle %d alpha %d, want %f", i, got.A, p.Alpha)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, b := NewField(21), NewField(21)
	a.Resize(800, 600)
	b.Resize(800, 600)
	for i := range a.Particles() {
		if a.Particles()[i] != b.Particles()[i] {
			t.Fatalf("particle %d differs between equally seeded fields", i)
		}
	}
}
