package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt is returned when the score file exists but cannot be decoded
var ErrCorrupt = errors.New("corrupt score file")

// scoreData is the on-disk layout
type scoreData struct {
	HighScore int `json:"high_score"`
}

// FileStore keeps the high score in a small JSON file
type FileStore struct {
	path  string
	mutex sync.Mutex
}

// NewFileStore creates a store at path; the file is created on the first save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// LoadHighScore reads the stored score; a missing file reads as 0
func (s *FileStore) LoadHighScore() (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}

	var data scoreData
	if err := json.Unmarshal(raw, &data); err != nil {
		return 0, fmt.Errorf("%s: %w: %v", s.path, ErrCorrupt, err)
	}
	if data.HighScore < 0 {
		return 0, fmt.Errorf("%s: negative score %d: %w", s.path, data.HighScore, ErrCorrupt)
	}
	return data.HighScore, nil
}

// SaveHighScore replaces the stored score atomically through a temp file and rename
func (s *FileStore) SaveHighScore(score int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	raw, err := json.MarshalIndent(scoreData{HighScore: score}, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w", s.path, err)
	}
	return nil
}
