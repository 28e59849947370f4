package votehistory

import (
	"context"
	"sync"
)

// MemoryStore - потокобезопасное хранилище истории голосов в памяти
type MemoryStore struct {
	mu    sync.RWMutex
	votes map[string]map[string]Direction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		votes: make(map[string]map[string]Direction),
	}
}

func (s *MemoryStore) Set(_ context.Context, clientID, reportID string, dir Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.votes[clientID] == nil {
		s.votes[clientID] = make(map[string]Direction)
	}
	s.votes[clientID][reportID] = dir
	return nil
}

func (s *MemoryStore) Get(_ context.Context, clientID string) (map[string]Direction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Direction, len(s.votes[clientID]))
	for k, v := range s.votes[clientID] {
		out[k] = v
	}
	return out, nil
}
