// Package splash drives the intro screen shown before the site.
package splash

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	QuoteDelay = 500 * time.Millisecond
	QuoteFade  = 800 * time.Millisecond
	ReadyAfter = 2600 * time.Millisecond
	RevealSite = 650 * time.Millisecond
	HideAfter  = 1300 * time.Millisecond
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseWarp
	PhaseExit
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseWarp:
		return "warp"
	case PhaseExit:
		return "exit"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Splash is the intro sequence. All methods take the current time so the
// sequence can be driven by the frame clock or by tests.
type Splash struct {
	quote     string
	start     time.Time
	enteredAt time.Time
	entered   bool
}

// New picks a quote from quotes and starts the sequence at now.
func New(quotes []string, rng *rand.Rand, now time.Time) *Splash {
	s := &Splash{start: now}
	if len(quotes) > 0 {
		s.quote = quoted(quotes[rng.IntN(len(quotes))])
	}
	return s
}

func quoted(q string) string {
	if strings.HasPrefix(q, `"`) {
		return q
	}
	return `"` + q + `"`
}

func (s *Splash) Quote() string { return s.quote }

// QuoteOpacity fades the quote in after QuoteDelay.
func (s *Splash) QuoteOpacity(now time.Time) float64 {
	t := now.Sub(s.start) - QuoteDelay
	if t <= 0 {
		return 0
	}
	if t >= QuoteFade {
		return 1
	}
	return float64(t) / float64(QuoteFade)
}

func (s *Splash) Phase(now time.Time) Phase {
	if !s.entered {
		if now.Sub(s.start) < ReadyAfter {
			return PhaseLoading
		}
		return PhaseReady
	}
	since := now.Sub(s.enteredAt)
	switch {
	case since < RevealSite:
		return PhaseWarp
	case since < HideAfter:
		return PhaseExit
	default:
		return PhaseDone
	}
}

// Enter accepts the enter action. It reports true only the first time it is
// accepted, which is when the caller should start the music.
func (s *Splash) Enter(now time.Time) bool {
	if s.entered || s.Phase(now) != PhaseReady {
		return false
	}
	s.entered = true
	s.enteredAt = now
	return true
}

// SiteVisible reports whether the site behind the splash is revealed.
func (s *Splash) SiteVisible(now time.Time) bool {
	p := s.Phase(now)
	return p == PhaseExit || p == PhaseDone
}

// Opacity of the splash overlay: opaque until the site is revealed, then
// fading out until it is hidden.
func (s *Splash) Opacity(now time.Time) float64 {
	if !s.entered {
		return 1
	}
	since := now.Sub(s.enteredAt)
	switch {
	case since <= RevealSite:
		return 1
	case since >= HideAfter:
		return 0
	default:
		return 1 - float64(since-RevealSite)/float64(HideAfter-RevealSite)
	}
}

// Progress is how far the warp animation is, in [0, 1].
func (s *Splash) Progress(now time.Time) float64 {
	if !s.entered {
		return 0
	}
	p := float64(now.Sub(s.enteredAt)) / float64(HideAfter)
	if p > 1 {
		return 1
	}
	return p
}
