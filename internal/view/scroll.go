package view

import (
	"math"
	"time"
)

// ScrollDuration is how long a smooth scroll takes end to end.
const ScrollDuration = 1200 * time.Millisecond

// Ease is the exponential ease-out used for smooth scrolling.
func Ease(t float64) float64 {
	return math.Min(1, 1.001-math.Pow(2, -10*t))
}

// Scroller animates a vertical offset toward a target.
type Scroller struct {
	offset    float64
	from, to  float64
	start     time.Time
	animating bool
	limit     float64
}

// SetLimit bounds the offset to [0, content-viewport].
func (s *Scroller) SetLimit(content, viewport float64) {
	s.limit = math.Max(0, content-viewport)
	s.offset = s.clamp(s.offset)
	s.to = s.clamp(s.to)
}

// ScrollTo moves to target, either at once or animated from the current offset.
func (s *Scroller) ScrollTo(target float64, now time.Time, immediate bool) {
	target = s.clamp(target)
	if immediate {
		s.offset, s.from, s.to = target, target, target
		s.animating = false
		return
	}
	s.from = s.offset
	s.to = target
	s.start = now
	s.animating = true
}

// ScrollBy retargets relative to where the scroll is heading.
func (s *Scroller) ScrollBy(delta float64, now time.Time) {
	base := s.offset
	if s.animating {
		base = s.to
	}
	s.ScrollTo(base+delta, now, false)
}

// Tick advances the animation and returns the current offset.
func (s *Scroller) Tick(now time.Time) float64 {
	if !s.animating {
		return s.offset
	}
	t := float64(now.Sub(s.start)) / float64(ScrollDuration)
	if t >= 1 {
		s.offset = s.to
		s.animating = false
		return s.offset
	}
	s.offset = s.from + (s.to-s.from)*Ease(math.Max(t, 0))
	return s.offset
}

func (s *Scroller) Offset() float64 { return s.offset }
func (s *Scroller) Target() float64 { return s.to }
func (s *Scroller) Animating() bool { return s.animating }
func (s *Scroller) Limit() float64  { return s.limit }

func (s *Scroller) clamp(v float64) float64 {
	return math.Max(0, math.Min(s.limit, v))
}
