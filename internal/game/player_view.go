package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/vybe/internal/config"
)

func (g *Game) drawPlayer(screen *ebiten.Image) {
	screenH := float64(g.height)
	b := g.panel.bounds(screenH)
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), color.RGBA{R: 16, G: 16, B: 22, A: 220}, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, borderColor, false)

	g.drawDisk(screen, b.x+32, b.y+config.PlayerHeight/2)

	if track, ok := g.player.Current(); ok {
		name := truncate(track.Name, 12)
		artist := truncate(track.Artist, 12)
		text.Draw(screen, name, basicfont.Face7x13, int(b.x+62), int(b.y+28), textColor)
		text.Draw(screen, artist, basicfont.Face7x13, int(b.x+62), int(b.y+46), mutedColor)
	}

	prev, toggle, next, expand := g.panel.buttons(screenH)
	playLabel := ">"
	if !g.player.Paused() {
		playLabel = "||"
	}
	expandLabel := "^"
	if g.panel.expanded {
		expandLabel = "v"
	}
	mx, my := ebiten.CursorPosition()
	for _, btn := range []struct {
		r     rect
		label string
	}{
		{prev, "<<"},
		{toggle, playLabel},
		{next, ">>"},
		{expand, expandLabel},
	} {
		bg := color.RGBA{R: 34, G: 30, B: 48, A: 255}
		if btn.r.contains(float64(mx), float64(my)) {
			bg = color.RGBA{R: 60, G: 48, B: 100, A: 255}
		}
		vector.DrawFilledRect(screen, float32(btn.r.x), float32(btn.r.y), float32(btn.r.w), float32(btn.r.h), bg, false)
		text.Draw(screen, btn.label, basicfont.Face7x13,
			int(btn.r.x+btn.r.w/2-textWidth(btn.label)/2), int(btn.r.y+btn.r.h/2+4), textColor)
	}

	s, ok := g.panel.slider(screenH)
	if !ok {
		return
	}
	pos, total := g.player.Progress()
	text.Draw(screen, formatDuration(pos)+" / "+formatDuration(total), basicfont.Face7x13,
		int(s.x), int(s.y-10), mutedColor)

	vol := g.player.Volume()
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h), color.RGBA{R: 40, G: 40, B: 52, A: 255}, false)
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(s.w*vol), float32(s.h), accentColor, false)
	vector.DrawFilledCircle(screen, float32(s.x+s.w*vol), float32(s.y+s.h/2), 7, textColor, true)
}

// drawDisk spins while music plays and swells with its loudness.
func (g *Game) drawDisk(screen *ebiten.Image, cx, cy float64) {
	level := g.player.Level()
	radius := 20 + level*5
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), color.RGBA{R: 24, G: 22, B: 30, A: 255}, true)
	for i := 0; i < 3; i++ {
		angle := g.diskAngle + float64(i)*2*math.Pi/3
		r, gr, b := hsvToRgb(255+float64(i)*20+level*60, 0.6, 0.9)
		vector.StrokeLine(screen,
			float32(cx+math.Cos(angle)*6), float32(cy+math.Sin(angle)*6),
			float32(cx+math.Cos(angle)*(radius-3)), float32(cy+math.Sin(angle)*(radius-3)),
			2, color.RGBA{R: r, G: gr, B: b, A: 200}, true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 4, accentColor, true)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
