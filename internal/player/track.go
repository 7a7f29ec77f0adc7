package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported file type")

// Track is a playlist entry.
type Track struct {
	Name   string
	Artist string
	File   string
}

// ParseTrack reads "name|artist|file" or a bare file path.
func ParseTrack(s string) (Track, error) {
	parts := strings.Split(strings.TrimSpace(s), "|")
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return Track{}, errors.New("empty track")
		}
		return TrackFromFile(parts[0]), nil
	case 3:
		t := Track{
			Name:   strings.TrimSpace(parts[0]),
			Artist: strings.TrimSpace(parts[1]),
			File:   strings.TrimSpace(parts[2]),
		}
		if t.File == "" {
			return Track{}, fmt.Errorf("track %q has no file", s)
		}
		if t.Name == "" {
			t.Name = TrackFromFile(t.File).Name
		}
		return t, nil
	default:
		return Track{}, fmt.Errorf("track %q: want name|artist|file", s)
	}
}

// TrackFromFile names a track after its file.
func TrackFromFile(path string) Track {
	base := filepath.Base(path)
	return Track{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		File: path,
	}
}

// decode opens path and picks a decoder by extension.
func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return f, streamer, format, nil
}
