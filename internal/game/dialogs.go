package game

import (
	"context"
	"errors"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/vybe/internal/contact"
	"github.com/iburimskiy/vybe/internal/player"
)

const (
	msgSent   = "Message sent. We'll be in touch!"
	msgFailed = "Something went wrong. Please try again."
)

// addTrackDialog asks for an audio file, appends it and plays it.
func (g *Game) addTrackDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Add Track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	log.Printf("added track %s", filename)
	g.player.Add(player.TrackFromFile(filename))
	if err := g.player.Load(g.player.Len() - 1); err != nil {
		return err
	}
	return g.player.Play()
}

// openContactForm collects the form with dialogs and submits it in the
// background. The outcome is shown as a dialog and a toast.
func (g *Game) openContactForm() {
	if !g.contact.Enabled() {
		g.notify("Contact form is unavailable right now.")
		return
	}
	if !g.formOpen.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer g.formOpen.Store(false)

		sub, err := promptSubmission()
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				log.Printf("contact form: %v", err)
			}
			return
		}
		if err := g.contact.Submit(context.Background(), sub); err != nil {
			log.Printf("contact submit: %v", err)
			msg := msgFailed
			if errors.Is(err, contact.ErrIncomplete) {
				msg = "Please fill in every field."
			}
			g.notify(msg)
			_ = zenity.Error(msg, zenity.Title("Contact"))
			return
		}
		g.notify(msgSent)
		_ = zenity.Info(msgSent, zenity.Title("Contact"))
	}()
}

func promptSubmission() (contact.Submission, error) {
	var sub contact.Submission
	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Your name", &sub.Name},
		{"Your email", &sub.Email},
		{"Your message", &sub.Message},
	} {
		v, err := zenity.Entry(field.prompt, zenity.Title("Contact"))
		if err != nil {
			return contact.Submission{}, err
		}
		*field.dst = v
	}
	return sub, nil
}
