package game

import (
	"github.com/iburimskiy/vybe/internal/config"
	"github.com/iburimskiy/vybe/internal/mathutil"
)

type panelAction int

const (
	actionNone panelAction = iota
	actionDrag
	actionPrev
	actionToggle
	actionNext
	actionExpand
	actionVolume
)

const (
	panelButton = 28.0
	panelPad    = 10.0
)

// playerPanel is the floating, draggable music player.
type playerPanel struct {
	x, y     float64
	placed   bool
	expanded bool

	dragging       bool
	dragDX, dragDY float64
	volDragging    bool
}

func (p *playerPanel) width() float64 {
	if p.expanded {
		return config.PlayerExpandedWidth
	}
	return config.PlayerWidth
}

func (p *playerPanel) height() float64 {
	if p.expanded {
		return config.PlayerHeight + config.PlayerExpandedExtra
	}
	return config.PlayerHeight
}

// bounds anchors the panel bottom-left until it is first dragged.
func (p *playerPanel) bounds(screenH float64) rect {
	if !p.placed {
		return rect{config.PlayerMargin, screenH - p.height() - config.PlayerMargin, p.width(), p.height()}
	}
	return rect{p.x, p.y, p.width(), p.height()}
}

func (p *playerPanel) buttons(screenH float64) (prev, toggle, next, expand rect) {
	b := p.bounds(screenH)
	y := b.y + (config.PlayerHeight-panelButton)/2
	expand = rect{b.x + b.w - panelPad - panelButton, y, panelButton, panelButton}
	next = rect{expand.x - 4 - panelButton, y, panelButton, panelButton}
	toggle = rect{next.x - 4 - panelButton, y, panelButton, panelButton}
	prev = rect{toggle.x - 4 - panelButton, y, panelButton, panelButton}
	return
}

func (p *playerPanel) slider(screenH float64) (rect, bool) {
	if !p.expanded {
		return rect{}, false
	}
	b := p.bounds(screenH)
	return rect{b.x + panelPad*2, b.y + config.PlayerHeight + 28, b.w - panelPad*4, 8}, true
}

// volumeAt maps a pointer x onto the slider as a volume in [0, 1].
func volumeAt(slider rect, x float64) float64 {
	if slider.w <= 0 {
		return 0
	}
	return mathutil.Clamp01((x - slider.x) / slider.w)
}

// press handles a mouse down at (mx, my).
func (p *playerPanel) press(mx, my, screenH float64) panelAction {
	b := p.bounds(screenH)
	if !b.contains(mx, my) {
		return actionNone
	}
	prev, toggle, next, expand := p.buttons(screenH)
	switch {
	case prev.contains(mx, my):
		return actionPrev
	case toggle.contains(mx, my):
		return actionToggle
	case next.contains(mx, my):
		return actionNext
	case expand.contains(mx, my):
		p.expanded = !p.expanded
		if !p.placed {
			// keep the bottom edge where it was
			p.x, p.y = b.x, b.y+b.h-p.height()
			p.placed = true
		}
		return actionExpand
	}
	if s, ok := p.slider(screenH); ok {
		// generous vertical hit area around the thin track
		hit := rect{s.x - 6, s.y - 10, s.w + 12, s.h + 20}
		if hit.contains(mx, my) {
			p.volDragging = true
			return actionVolume
		}
	}
	p.x, p.y = b.x, b.y
	p.placed = true
	p.dragging = true
	p.dragDX, p.dragDY = mx-b.x, my-b.y
	return actionDrag
}

// move follows the pointer while a drag is active. It reports a new volume
// when the slider is being dragged.
func (p *playerPanel) move(mx, my, screenH float64) (float64, bool) {
	if p.volDragging {
		s, ok := p.slider(screenH)
		if !ok {
			return 0, false
		}
		return volumeAt(s, mx), true
	}
	if p.dragging {
		p.x = mx - p.dragDX
		p.y = my - p.dragDY
	}
	return 0, false
}

func (p *playerPanel) release() {
	p.dragging = false
	p.volDragging = false
}

func (p *playerPanel) busy() bool { return p.dragging || p.volDragging }
