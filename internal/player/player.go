// Package player is the persistent background music player.
package player

import (
	"errors"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"

	"github.com/iburimskiy/vybe/internal/config"
	"github.com/iburimskiy/vybe/internal/mathutil"
)

var ErrEmptyPlaylist = errors.New("playlist is empty")

// Player plays one track of its playlist at a time. Methods are safe to call
// from the UI goroutine while the output streams on its own goroutine.
type Player struct {
	out Output

	mu       sync.Mutex
	playlist []Track
	index    int
	volume   float64
	paused   bool
	level    float64

	// audio chain: streamer -> tap -> gain -> ctrl
	file       *os.File
	streamer   beep.StreamSeekCloser
	sampleRate beep.SampleRate
	ctrl       *beep.Ctrl
	gain       *effects.Gain
	tap        *levelTap
	initDone   bool

	gen   uint64
	ended atomic.Uint64
}

// New returns a paused player. A nil out plays through the speaker.
func New(out Output, playlist []Track, volume float64) *Player {
	if out == nil {
		out = SpeakerOutput{}
	}
	return &Player{
		out:      out,
		playlist: append([]Track(nil), playlist...),
		volume:   mathutil.Clamp01(volume),
		paused:   true,
	}
}

// Play resumes the current track, opening it first if needed.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.play()
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return p.play()
	}
	p.setPaused(true)
	return nil
}

// Load makes index the current track, wrapping out-of-range values. When the
// player is playing the new track starts immediately.
func (p *Player) Load(index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load(index)
}

// Next loads the following track and plays it.
func (p *Player) Next() error { return p.skip(1) }

// Prev loads the preceding track and plays it.
func (p *Player) Prev() error { return p.skip(-1) }

func (p *Player) skip(delta int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.load(p.index + delta); err != nil {
		return err
	}
	return p.play()
}

// Add appends t to the playlist.
func (p *Player) Add(t Track) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playlist = append(p.playlist, t)
}

// SetVolume sets the linear volume, clamped into [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = mathutil.Clamp01(v)
	if p.gain != nil {
		p.out.Lock()
		p.gain.Gain = p.volume - 1
		p.out.Unlock()
	}
}

// Tick releases a track that finished playing and refreshes the level meter.
// Call it once per frame.
func (p *Player) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer != nil && p.ended.Load() == p.gen {
		log.Printf("track finished: %s", p.playlist[p.index].Name)
		p.release()
		p.paused = true
	}

	var mag float64
	if p.tap != nil && !p.paused {
		mag = loudness(p.tap.snapshot(2048))
	}
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*mag
}

// Close stops playback and releases the open track.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.release()
	p.paused = true
}

func (p *Player) Current() (Track, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.playlist) == 0 {
		return Track{}, false
	}
	return p.playlist[p.index], true
}

func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.playlist)
}

func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Progress returns how far into the current track playback is.
func (p *Player) Progress() (pos, total time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0, 0
	}
	p.out.Lock()
	n, length := p.streamer.Position(), p.streamer.Len()
	p.out.Unlock()
	return p.sampleRate.D(n), p.sampleRate.D(length)
}

// Level is the smoothed loudness of what is currently playing, in [0, 1].
func (p *Player) Level() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *Player) play() error {
	if len(p.playlist) == 0 {
		return ErrEmptyPlaylist
	}
	if p.streamer == nil {
		if err := p.open(); err != nil {
			return err
		}
	}
	p.setPaused(false)
	return nil
}

func (p *Player) load(index int) error {
	if len(p.playlist) == 0 {
		return ErrEmptyPlaylist
	}
	if index < 0 {
		index = len(p.playlist) - 1
	}
	if index >= len(p.playlist) {
		index = 0
	}
	p.release()
	p.index = index
	if p.paused {
		return nil
	}
	if err := p.open(); err != nil {
		p.paused = true
		return err
	}
	return nil
}

func (p *Player) setPaused(paused bool) {
	p.paused = paused
	if p.ctrl == nil {
		return
	}
	p.out.Lock()
	p.ctrl.Paused = paused
	p.out.Unlock()
}

// open decodes the current track and starts streaming it, unpaused.
func (p *Player) open() error {
	track := p.playlist[p.index]
	f, streamer, format, err := decode(track.File)
	if err != nil {
		return err
	}

	// (Re)initialize the output when the sample rate changes
	if !p.initDone || p.sampleRate != format.SampleRate {
		bufferSize := format.SampleRate.N(time.Second / 20)
		if err := p.out.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		p.initDone = true
		p.sampleRate = format.SampleRate
	}

	t := newLevelTap(streamer, config.LevelRingSize)
	gain := &effects.Gain{Streamer: t, Gain: p.volume - 1}
	ctrl := &beep.Ctrl{Streamer: gain, Paused: false}

	p.gen++
	gen := p.gen
	p.file = f
	p.streamer = streamer
	p.tap = t
	p.gain = gain
	p.ctrl = ctrl

	log.Printf("playing %s - %s", track.Name, track.Artist)
	p.out.Play(beep.Seq(ctrl, beep.Callback(func() {
		// runs on the output goroutine; Tick does the cleanup
		p.ended.Store(gen)
	})))
	return nil
}

func (p *Player) release() {
	if p.streamer == nil {
		return
	}
	p.out.Lock()
	p.out.Clear()
	p.out.Unlock()
	_ = p.streamer.Close()
	_ = p.file.Close()
	p.streamer = nil
	p.file = nil
	p.ctrl = nil
	p.gain = nil
	p.tap = nil
}
