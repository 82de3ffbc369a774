// Package sound lists the notification sounds installed on the system.
package sound

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrUnsupported indicates sound selection has no source on this platform.
var ErrUnsupported = errors.New("sound selection not supported on this platform")

// Source is a set of directories and the file extensions that count as sounds.
type Source struct {
	Dirs       []string
	Extensions []string
}

var sources = map[string]Source{
	"darwin": {
		Dirs:       []string{"/System/Library/Sounds"},
		Extensions: []string{".aiff"},
	},
	"linux": {
		Dirs: []string{
			"/usr/share/sounds/freedesktop/stereo",
			"/usr/share/sounds/gnome/default/alerts",
			"/usr/share/sounds/ubuntu/stereo",
		},
		Extensions: []string{".oga", ".ogg", ".wav"},
	},
}

// SourceFor returns the sound directories for goos.
func SourceFor(goos string) (Source, bool) {
	src, ok := sources[goos]
	return src, ok
}

// Available lists sound names for goos, sorted and de-duplicated.
func Available(fs afero.Fs, goos string) ([]string, error) {
	src, ok := SourceFor(goos)
	if !ok {
		return nil, ErrUnsupported
	}
	return src.List(fs), nil
}

// List returns the sound names found in s. Unreadable directories are skipped.
func (s Source) List(fs afero.Fs) []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range s.Dirs {
		entries, err := afero.ReadDir(fs, dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.Mode().IsRegular() {
				continue
			}
			name, ok := s.soundName(entry.Name())
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (s Source) soundName(fileName string) (string, bool) {
	ext := filepath.Ext(fileName)
	for _, want := range s.Extensions {
		if ext == want {
			name := strings.TrimSuffix(fileName, ext)
			return name, name != ""
		}
	}
	return "", false
}
