package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// HighScoreFile keeps the best score as a single decimal integer in a plain
// text file. A missing or unreadable file counts as zero.
type HighScoreFile struct {
	mu   sync.Mutex
	path string
}

// NewHighScoreFile returns a store backed by path. A leading ~ is expanded.
// The file is created on the first successful Save.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: path}, nil
}

// Path returns the record file location.
func (h *HighScoreFile) Path() string {
	return h.path
}

// Load returns the stored high score, or 0 if the file is missing or corrupt.
func (h *HighScoreFile) Load() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *HighScoreFile) load() int {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n
}

// Save writes score if it beats the stored value. Lower or equal scores
// leave the file untouched.
func (h *HighScoreFile) Save(score int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if score <= h.load() {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", h.path, err)
	}
	if err := os.WriteFile(h.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// Reset deletes the stored high score.
func (h *HighScoreFile) Reset() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Remove(h.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}
