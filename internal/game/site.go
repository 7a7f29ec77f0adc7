package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/vybe/internal/config"
	"github.com/iburimskiy/vybe/internal/view"
)

// basicfont.Face7x13 metrics
const (
	glyphW = 7
	glyphH = 13
)

const (
	siteMargin  = 48.0
	blockGap    = 20.0
	blockTop    = 70.0
	cardHeight  = 120.0
	cardOpen    = 200.0
	memberH     = 90.0
	memberOpenH = 150.0
	linkGap     = 28.0
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 12, A: 255}
	textColor       = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	mutedColor      = color.RGBA{R: 150, G: 150, B: 165, A: 255}
	accentColor     = color.RGBA{R: 143, G: 107, B: 255, A: 255}
	cardColor       = color.RGBA{R: 20, G: 20, B: 26, A: 200}
	borderColor     = color.RGBA{R: 60, G: 55, B: 90, A: 255}
)

func textWidth(s string) float64 { return float64(len([]rune(s)) * glyphW) }

func (g *Game) navHeight() float64 {
	if g.router.NavCompact() {
		return config.NavCompactH
	}
	return config.NavHeight
}

func (g *Game) logoRect() rect {
	h := g.navHeight()
	return rect{24, h/2 - glyphH, textWidth("VYBE") + 8, glyphH * 2}
}

// navRects lays the links out right-aligned in the nav bar.
func (g *Game) navRects() []rect {
	h := g.navHeight()
	rects := make([]rect, len(navLinks))
	x := float64(g.width) - 24
	for i := len(navLinks) - 1; i >= 0; i-- {
		w := textWidth(navLinks[i].label)
		x -= w
		rects[i] = rect{x, h/2 - glyphH, w, glyphH * 2}
		x -= linkGap
	}
	return rects
}

// sectionY is where a home section currently starts on screen.
func (g *Game) sectionY(id string) (float64, bool) {
	if g.router.Active() != view.Home {
		return 0, false
	}
	s, ok := g.router.Page().Section(id)
	if !ok {
		return 0, false
	}
	return s.Top - g.router.Offset(), true
}

func (g *Game) blockRects(id string, n int, height func(i int) float64) []rect {
	y, ok := g.sectionY(id)
	if !ok || n == 0 {
		return nil
	}
	w := (float64(g.width) - 2*siteMargin - blockGap*float64(n-1)) / float64(n)
	rects := make([]rect, n)
	for i := range rects {
		rects[i] = rect{siteMargin + float64(i)*(w+blockGap), y + blockTop, w, height(i)}
	}
	return rects
}

func (g *Game) cardRects() []rect {
	return g.blockRects("services", len(serviceCards), func(i int) float64 {
		if g.cards.Expanded(i) {
			return cardOpen
		}
		return cardHeight
	})
}

func (g *Game) memberRects() []rect {
	return g.blockRects("team", len(teamMembers), func(i int) float64 {
		if g.team[i] {
			return memberOpenH
		}
		return memberH
	})
}

func (g *Game) drawSite(screen *ebiten.Image) {
	offset := g.router.Offset()
	for _, s := range g.router.Page().Sections {
		y := s.Top - offset
		if !s.Revealed() || y > float64(g.height) || y+s.Height < 0 {
			continue
		}
		text.Draw(screen, s.Title, basicfont.Face7x13, int(siteMargin), int(y+40), textColor)
		vector.StrokeLine(screen, siteMargin, float32(y+48), siteMargin+float32(textWidth(s.Title)), float32(y+48), 2, accentColor, false)
		for i, line := range s.Lines {
			text.Draw(screen, line, basicfont.Face7x13, int(siteMargin), int(y+blockTop+float64(i)*22), mutedColor)
		}
	}

	for i, r := range g.cardRects() {
		c := serviceCards[i]
		g.drawBlock(screen, r, g.cards.Expanded(i))
		text.Draw(screen, c.title, basicfont.Face7x13, int(r.x+16), int(r.y+30), textColor)
		text.Draw(screen, c.summary, basicfont.Face7x13, int(r.x+16), int(r.y+56), mutedColor)
		if g.cards.Expanded(i) {
			for j, line := range c.detail {
				text.Draw(screen, line, basicfont.Face7x13, int(r.x+16), int(r.y+100+float64(j)*20), textColor)
			}
		}
	}
	for i, r := range g.memberRects() {
		m := teamMembers[i]
		g.drawBlock(screen, r, g.team[i])
		text.Draw(screen, m.name, basicfont.Face7x13, int(r.x+16), int(r.y+30), textColor)
		text.Draw(screen, m.role, basicfont.Face7x13, int(r.x+16), int(r.y+56), mutedColor)
		if g.team[i] {
			for j, line := range m.bio {
				text.Draw(screen, line, basicfont.Face7x13, int(r.x+16), int(r.y+96+float64(j)*20), textColor)
			}
		}
	}

	g.drawNav(screen)
}

func (g *Game) drawBlock(screen *ebiten.Image, r rect, active bool) {
	border := borderColor
	if active {
		border = accentColor
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), cardColor, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, border, false)
}

func (g *Game) drawNav(screen *ebiten.Image) {
	h := g.navHeight()
	bg := color.RGBA{R: 10, G: 10, B: 12, A: 51}
	if g.router.NavCompact() {
		bg.A = 140
	}
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(h), bg, false)

	logo := g.logoRect()
	text.Draw(screen, "VYBE", basicfont.Face7x13, int(logo.x+4), int(h/2+4), accentColor)

	for i, r := range g.navRects() {
		clr := mutedColor
		if navLinks[i].link == g.router.Active().String() {
			clr = textColor
		}
		text.Draw(screen, navLinks[i].label, basicfont.Face7x13, int(r.x), int(h/2+4), clr)
	}
}
