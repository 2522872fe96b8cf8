package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreFile keeps the best score as a single decimal integer in a text
// file.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile returns a store for the given path. A leading ~ is
// expanded when the home directory is known.
func NewHighScoreFile(path string) *HighScoreFile {
	if expanded, err := ExpandHome(path); err == nil {
		path = expanded
	}
	return &HighScoreFile{path: path}
}

// Path returns the file location.
func (h *HighScoreFile) Path() string {
	return h.path
}

// Load returns the stored score. A missing or unreadable file counts as 0.
func (h *HighScoreFile) Load() uint32 {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return 0
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// Save overwrites the file with score.
func (h *HighScoreFile) Save(score uint32) error {
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(h.path, []byte(strconv.FormatUint(uint64(score), 10)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}
