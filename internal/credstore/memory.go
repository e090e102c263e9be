package credstore

import (
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu     sync.Mutex
	creds  map[string]string
	drafts map[int]*AttemptDraft
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		creds:  make(map[string]string),
		drafts: make(map[int]*AttemptDraft),
	}
}

func (s *MemoryStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds[KeyToken], nil
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[KeyToken] = token
	return nil
}

func (s *MemoryStore) RefreshToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds[KeyRefreshToken], nil
}

func (s *MemoryStore) SetRefreshToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[KeyRefreshToken] = token
	return nil
}

func (s *MemoryStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, KeyToken)
	delete(s.creds, KeyRefreshToken)
	return nil
}

func (s *MemoryStore) Draft(exerciseID int) (*AttemptDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[exerciseID]
	if !ok {
		return nil, fmt.Errorf("exercise %d: %w", exerciseID, ErrNoDraft)
	}
	cp := *d
	cp.Responses = make(map[string]string, len(d.Responses))
	for k, v := range d.Responses {
		cp.Responses[k] = v
	}
	return &cp, nil
}

func (s *MemoryStore) SaveDraft(d *AttemptDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *d
	s.drafts[d.ExerciseID] = &cp
	return nil
}

func (s *MemoryStore) DeleteDraft(exerciseID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, exerciseID)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
