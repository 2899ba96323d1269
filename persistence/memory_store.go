package persistence

import "sync"

// MemoryStore keeps the high score in memory
type MemoryStore struct {
	mutex sync.Mutex
	score int
	Saves int // Number of SaveHighScore calls
	Err   error
}

func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

func (s *MemoryStore) LoadHighScore() (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.score, s.Err
}

func (s *MemoryStore) SaveHighScore(score int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.score = score
	s.Saves++
	return nil
}
