// Package playback provides the placeholder clip selection and the TMDb
// Helper player definition install/uninstall.
package playback

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPlaceholder is returned when the video directory holds no usable clip.
var ErrNoPlaceholder = errors.New("no placeholder video found")

// Selector picks a placeholder clip to play while the real item downloads.
type Selector struct {
	dir string
}

// NewSelector creates a selector over the given video directory.
func NewSelector(dir string) *Selector {
	return &Selector{dir: dir}
}

// Pick returns the path of a random clip named downloading*.mp4.
func (s *Selector) Pick() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("listing placeholder videos: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.Type().IsRegular() && strings.HasPrefix(name, "downloading") && strings.HasSuffix(name, ".mp4") {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return "", ErrNoPlaceholder
	}

	selected := candidates[rand.IntN(len(candidates))]
	return filepath.Join(s.dir, selected), nil
}
