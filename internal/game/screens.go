package game

import (
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/vybe/internal/mathutil"
	"github.com/iburimskiy/vybe/internal/splash"
)

func (g *Game) enterButton() rect {
	w, h := 160.0, 40.0
	return rect{float64(g.width)/2 - w/2, float64(g.height)/2 + 80, w, h}
}

var (
	splashBackdrop = color.NRGBA{R: 6, G: 6, B: 8, A: 255}
	quoteColor     = color.NRGBA{R: 200, G: 200, B: 210, A: 255}
)

// fade scales the alpha of c by opacity. The colour is non-premultiplied so
// its channels stay valid at every opacity.
func fade(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * mathutil.Clamp01(opacity)))
	return c
}

func (g *Game) drawSplash(screen *ebiten.Image, now time.Time) {
	phase := g.splash.Phase(now)
	opacity := g.splash.Opacity(now)

	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), fade(splashBackdrop, opacity), false)

	cx, cy := float64(g.width)/2, float64(g.height)/2
	// logo rises and glows during the warp
	warp := g.splash.Progress(now)
	logoY := cy - 40 - warp*60
	r, gr, b := hsvToRgb(260+warp*90, 0.58, 1)
	logo := color.NRGBA{R: r, G: gr, B: b, A: 255}
	text.Draw(screen, "VYBE", basicfont.Face7x13, int(cx-textWidth("VYBE")/2), int(logoY), fade(logo, opacity))
	if warp > 0 {
		vector.StrokeCircle(screen, float32(cx), float32(logoY-4), float32(20+warp*math.Max(cx, cy)), 2,
			fade(logo, opacity*(1-warp)), true)
	}

	if q := g.splash.Quote(); q != "" && phase < splash.PhaseWarp {
		g.drawWrapped(screen, q, cx, cy, 70, fade(quoteColor, g.splash.QuoteOpacity(now)))
	}

	switch phase {
	case splash.PhaseLoading:
		label := "loading" + strings.Repeat(".", int(now.UnixMilli()/333%4))
		text.Draw(screen, label, basicfont.Face7x13, int(cx-textWidth(label)/2), int(cy+100), mutedColor)
	case splash.PhaseReady:
		btn := g.enterButton()
		mx, my := ebiten.CursorPosition()
		bg := color.RGBA{R: 40, G: 30, B: 70, A: 230}
		if btn.contains(float64(mx), float64(my)) {
			bg = color.RGBA{R: 70, G: 52, B: 130, A: 240}
		}
		vector.DrawFilledRect(screen, float32(btn.x), float32(btn.y), float32(btn.w), float32(btn.h), bg, false)
		vector.StrokeRect(screen, float32(btn.x), float32(btn.y), float32(btn.w), float32(btn.h), 2, accentColor, false)
		label := "Enter"
		text.Draw(screen, label, basicfont.Face7x13, int(btn.x+btn.w/2-textWidth(label)/2), int(btn.y+btn.h/2+4), textColor)
	}
}

// drawWrapped centers s on (cx, y), breaking lines at width runes.
func (g *Game) drawWrapped(screen *ebiten.Image, s string, cx, y float64, width int, clr color.Color) {
	for i, line := range wrap(s, width) {
		text.Draw(screen, line, basicfont.Face7x13, int(cx-textWidth(line)/2), int(y+float64(i)*18), clr)
	}
}

func wrap(s string, width int) []string {
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(w) > width {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

func (g *Game) drawStatus(screen *ebiten.Image, now time.Time) {
	if g.toast != "" && now.Before(g.toastEnd) {
		w := textWidth(g.toast) + 24
		x := float64(g.width)/2 - w/2
		y := g.navHeight() + 12
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 28, color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), 28, 1, accentColor, false)
		text.Draw(screen, g.toast, basicfont.Face7x13, int(x+12), int(y+18), textColor)
	}
	if g.lastErr != nil {
		msg := "Error: " + g.lastErr.Error()
		ebitenutil.DebugPrintAt(screen, msg, g.width-len(msg)*6-12, g.height-20)
	}
}
