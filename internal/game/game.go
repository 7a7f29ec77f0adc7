package game

import (
	"log"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/vybe/internal/config"
	"github.com/iburimskiy/vybe/internal/contact"
	"github.com/iburimskiy/vybe/internal/particle"
	"github.com/iburimskiy/vybe/internal/player"
	"github.com/iburimskiy/vybe/internal/splash"
	"github.com/iburimskiy/vybe/internal/view"
)

const (
	wheelStep  = 60.0
	toastFor   = 4 * time.Second
	diskSpin   = 0.04
	noticeSize = 8
)

type Game struct {
	now func() time.Time

	// background
	field   *particle.Field
	layers  map[string]*ebiten.Image
	width   int
	height  int
	cursorX int
	cursorY int

	// site
	splash *splash.Splash
	router *view.Router
	cards  *view.Accordion
	team   view.Toggles

	// music
	player       *player.Player
	panel        playerPanel
	diskAngle    float64
	musicStarted bool
	musicPending bool

	// contact
	contact  *contact.Client
	formOpen atomic.Bool
	notices  chan string
	toast    string
	toastEnd time.Time

	lastErr error
}

// New builds the game from cfg. A nil out plays through the speaker.
func New(cfg config.Config, out player.Output) (*Game, error) {
	tracks := make([]player.Track, 0, len(cfg.Playlist))
	for _, s := range cfg.Playlist {
		t, err := player.ParseTrack(s)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}

	now := time.Now()
	g := &Game{
		now:     time.Now,
		field:   particle.NewField(cfg.Seed),
		layers:  map[string]*ebiten.Image{},
		router:  view.NewRouter(homePage(config.NavHeight), aboutPage(config.NavHeight), float64(cfg.WindowHeight)),
		cards:   view.NewAccordion(len(serviceCards)),
		team:    make(view.Toggles, len(teamMembers)),
		player:  player.New(out, tracks, cfg.Volume),
		contact: contact.NewClient(cfg.WebhookURL, cfg.WebhookTimeout, nil),
		notices: make(chan string, noticeSize),
	}
	if cfg.Splash {
		rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1))
		g.splash = splash.New(splash.Quotes, rng, now)
	}
	return g, nil
}

func (g *Game) Update() error {
	now := g.now()

	fx, fy := g.trackPointer(ebiten.CursorPosition())

	g.player.Tick()
	if !g.player.Paused() {
		g.diskAngle += diskSpin
	}
	g.drainNotices(now)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	keys := inpututil.AppendJustPressedKeys(nil)
	if g.musicPending && (clicked || len(keys) > 0) {
		// retry once after the user interacted
		g.musicPending = false
		if err := g.player.Play(); err != nil {
			g.lastErr = err
		}
	}

	if g.splash == nil && !g.musicStarted {
		g.startMusic()
	}
	if g.splash != nil && !g.splash.SiteVisible(now) {
		g.updateSplash(now, fx, fy, clicked)
		return nil
	}

	g.updatePlayer(fx, fy, clicked)
	if !g.panel.busy() && clicked && !g.panel.bounds(float64(g.height)).contains(fx, fy) {
		g.handleSiteClick(fx, fy, now)
	}
	g.handleKeys(now)

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.router.Wheel(-dy*wheelStep, now)
	}
	g.router.Tick(now)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.now()
	screen.Fill(backgroundColor)

	layer := g.ensureLayer(config.BackdropLayerID, g.width, g.height)
	g.field.Frame(canvas{layer})
	screen.DrawImage(layer, nil)

	siteVisible := g.splash == nil || g.splash.SiteVisible(now)
	if siteVisible {
		g.drawSite(screen)
		g.drawPlayer(screen)
	}
	if g.splash != nil && g.splash.Phase(now) != splash.PhaseDone {
		g.drawSplash(screen, now)
	}
	g.drawStatus(screen, now)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// trackPointer forwards the cursor to the field only when it moved. ebiten
// reports (0, 0) before the first cursor event, so the field keeps its
// off-screen pointer until the user actually moves.
func (g *Game) trackPointer(x, y int) (float64, float64) {
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.field.MovePointer(float64(x), float64(y))
	}
	return float64(x), float64(y)
}

// resize rebuilds the particle field for the new viewport.
func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.field.Resize(float64(w), float64(h))
	g.router.Resize(float64(h))
	log.Printf("viewport %dx%d, %d particles", w, h, g.field.Len())
}

// Close releases audio resources.
func (g *Game) Close() {
	g.player.Close()
	for id, img := range g.layers {
		img.Deallocate()
		delete(g.layers, id)
	}
}

func (g *Game) startMusic() {
	g.musicStarted = true
	if err := g.player.Play(); err != nil {
		log.Printf("music did not start, waiting for input: %v", err)
		g.lastErr = err
		g.musicPending = true
	}
}

func (g *Game) updateSplash(now time.Time, mx, my float64, clicked bool) {
	if g.splash.Phase(now) != splash.PhaseReady {
		return
	}
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		(clicked && g.enterButton().contains(mx, my))
	if enter && g.splash.Enter(now) {
		g.startMusic()
	}
}

func (g *Game) updatePlayer(mx, my float64, clicked bool) {
	screenH := float64(g.height)
	if clicked {
		var err error
		switch g.panel.press(mx, my, screenH) {
		case actionPrev:
			err = g.player.Prev()
		case actionNext:
			err = g.player.Next()
		case actionToggle:
			err = g.player.Toggle()
		case actionVolume:
			if s, ok := g.panel.slider(screenH); ok {
				g.player.SetVolume(volumeAt(s, mx))
			}
		}
		if err != nil {
			g.lastErr = err
		}
	}
	if g.panel.busy() {
		if v, ok := g.panel.move(mx, my, screenH); ok {
			g.player.SetVolume(v)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.panel.release()
	}
}

func (g *Game) handleSiteClick(mx, my float64, now time.Time) {
	for i, r := range g.navRects() {
		if r.contains(mx, my) {
			g.follow(navLinks[i].link, now)
			return
		}
	}
	if g.logoRect().contains(mx, my) {
		g.follow("top", now)
		return
	}
	if g.router.Active() != view.Home {
		return
	}
	for i, r := range g.cardRects() {
		if r.contains(mx, my) {
			g.cards.Toggle(i)
			return
		}
	}
	for i, r := range g.memberRects() {
		if r.contains(mx, my) {
			g.team.Toggle(i)
			return
		}
	}
}

func (g *Game) follow(s string, now time.Time) {
	l, err := view.ParseLink(s)
	if err != nil {
		g.lastErr = err
		return
	}
	g.router.Navigate(l, now)
}

func (g *Game) handleKeys(now time.Time) {
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		err = g.player.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		err = g.player.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		err = g.player.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		err = g.addTrackDialog()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.openContactForm()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.follow("home", now)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.follow("about", now)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.follow("top", now)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown), inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.router.Wheel(float64(g.height)/2, now)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp), inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.router.Wheel(-float64(g.height)/2, now)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.player.SetVolume(g.player.Volume() + 0.1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.player.SetVolume(g.player.Volume() - 0.1)
	}
	for i, k := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5} {
		if i < len(navLinks) && inpututil.IsKeyJustPressed(k) {
			g.follow(navLinks[i].link, now)
		}
	}
	if err != nil {
		g.lastErr = err
	}
}

// notify queues a toast without blocking the caller.
func (g *Game) notify(msg string) {
	select {
	case g.notices <- msg:
	default:
	}
}

func (g *Game) drainNotices(now time.Time) {
	for {
		select {
		case msg := <-g.notices:
			g.toast = msg
			g.toastEnd = now.Add(toastFor)
		default:
			return
		}
	}
}
