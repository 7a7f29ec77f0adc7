// Package view switches between the site's pages and scrolls within them.
package view

import (
	"fmt"
	"strings"
	"time"
)

// SectionDelay is how long a section link waits after switching back to Home.
const SectionDelay = 100 * time.Millisecond

// NavCompactAfter is the offset past which the nav bar condenses.
const NavCompactAfter = 50

type View int

const (
	Home View = iota
	About
)

func (v View) String() string {
	if v == About {
		return "about"
	}
	return "home"
}

type LinkKind int

const (
	LinkHome LinkKind = iota
	LinkAbout
	LinkSection
	LinkTop
)

// Link is a navigation target.
type Link struct {
	Kind   LinkKind
	Target string
}

// ParseLink reads "home", "about", "top" or "section:<id>".
func ParseLink(s string) (Link, error) {
	switch {
	case s == "home":
		return Link{Kind: LinkHome}, nil
	case s == "about":
		return Link{Kind: LinkAbout}, nil
	case s == "top":
		return Link{Kind: LinkTop}, nil
	case strings.HasPrefix(s, "section:"):
		id := strings.TrimPrefix(s, "section:")
		if id == "" {
			return Link{}, fmt.Errorf("link %q has no section", s)
		}
		return Link{Kind: LinkSection, Target: id}, nil
	default:
		return Link{}, fmt.Errorf("unknown link %q", s)
	}
}

type pendingScroll struct {
	target string
	at     time.Time
}

// Router owns the active view and its scroll position.
type Router struct {
	pages    [2]*Page
	active   View
	scroll   Scroller
	viewport float64
	pending  *pendingScroll
}

func NewRouter(home, about *Page, viewport float64) *Router {
	r := &Router{pages: [2]*Page{home, about}, viewport: viewport}
	r.scroll.SetLimit(home.Height, viewport)
	home.Reveal(0, viewport)
	return r
}

// Switch activates v and jumps to its top.
func (r *Router) Switch(v View, now time.Time) {
	r.active = v
	r.pending = nil
	r.scroll.SetLimit(r.Page().Height, r.viewport)
	r.scroll.ScrollTo(0, now, true)
	r.Page().Reveal(0, r.viewport)
}

// Navigate follows l.
func (r *Router) Navigate(l Link, now time.Time) {
	switch l.Kind {
	case LinkHome:
		r.Switch(Home, now)
	case LinkAbout:
		r.Switch(About, now)
	case LinkTop:
		r.scroll.ScrollTo(0, now, false)
	case LinkSection:
		if r.active == About {
			r.Switch(Home, now)
			r.pending = &pendingScroll{target: l.Target, at: now.Add(SectionDelay)}
			return
		}
		r.scrollToSection(l.Target, now)
	}
}

func (r *Router) scrollToSection(id string, now time.Time) {
	s, ok := r.Page().Section(id)
	if !ok {
		return
	}
	r.scroll.ScrollTo(s.Top, now, false)
}

// Wheel scrolls by dy pixels.
func (r *Router) Wheel(dy float64, now time.Time) {
	r.scroll.ScrollBy(dy, now)
}

// Resize updates the viewport height.
func (r *Router) Resize(viewport float64) {
	r.viewport = viewport
	r.scroll.SetLimit(r.Page().Height, viewport)
}

// Tick runs delayed scrolls, advances the animation and reveals sections.
func (r *Router) Tick(now time.Time) {
	if r.pending != nil && !now.Before(r.pending.at) {
		id := r.pending.target
		r.pending = nil
		r.scrollToSection(id, now)
	}
	offset := r.scroll.Tick(now)
	r.Page().Reveal(offset, r.viewport)
}

func (r *Router) Active() View        { return r.active }
func (r *Router) Page() *Page         { return r.pages[r.active] }
func (r *Router) Offset() float64     { return r.scroll.Offset() }
func (r *Router) Scroller() *Scroller { return &r.scroll }

// NavCompact reports whether the nav bar should use its condensed style.
func (r *Router) NavCompact() bool { return r.scroll.Offset() > NavCompactAfter }
