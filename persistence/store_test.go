package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/planet-offline/engine"
)

var (
	_ engine.ScoreStore = (*FileStore)(nil)
	_ engine.ScoreStore = (*MemoryStore)(nil)
)

func TestFileStoreMissingFileReadsZero(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "score.json"))
	got, err := s.LoadHighScore()
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestFileStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "score.json")
	s := NewFileStore(path)
	if err := s.SaveHighScore(12345); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveHighScore(23456); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).LoadHighScore()
	if err != nil {
		t.Fatal(err)
	}
	if got != 23456 {
		t.Errorf("score = %d, want 23456", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d files, want only the score file", len(entries))
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "high score: lots"},
		{"negative", `{"high_score": -5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "score.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := NewFileStore(path).LoadHighScore()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("err = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(10)
	if got, _ := s.LoadHighScore(); got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
	if err := s.SaveHighScore(20); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.LoadHighScore(); got != 20 || s.Saves != 1 {
		t.Errorf("score = %d saves = %d", got, s.Saves)
	}
}
