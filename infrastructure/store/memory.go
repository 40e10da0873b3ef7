package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryStore é o fallback em processo com a mesma semântica do Redis.
// A expiração é preguiçosa: toda leitura descarta entradas vencidas, então
// uma chave expirada nunca é reportada como presente
type memoryStore struct {
	mu   sync.Mutex
	keys map[string]memoryEntry
	sets map[string][]ScoredMember
	now  func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero = sem expiração
}

func NewMemoryStore() Store {
	return &memoryStore{
		keys: make(map[string]memoryEntry),
		sets: make(map[string][]ScoredMember),
		now:  time.Now,
	}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.keys[key]
	if !ok {
		return "", ErrNotFound
	}

	if !entry.expiresAt.IsZero() && !entry.expiresAt.After(s.now()) {
		delete(s.keys, key)
		return "", ErrNotFound
	}

	return entry.value, nil
}

func (s *memoryStore) SetEX(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.keys[key] = entry

	return nil
}

func (s *memoryStore) ZAdd(_ context.Context, set string, score float64, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := s.sets[set]

	// Mesmo comportamento do ZADD: membro repetido apenas atualiza o score
	for i, m := range members {
		if m.Member == member {
			members[i].Score = score
			return nil
		}
	}

	s.sets[set] = append(members, ScoredMember{Member: member, Score: score})
	return nil
}

func (s *memoryStore) ZRevRangeTop(_ context.Context, set string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]ScoredMember, len(s.sets[set]))
	copy(members, s.sets[set])

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Score > members[j].Score
	})

	if n > len(members) {
		n = len(members)
	}

	out := make([]string, 0, n)
	for _, m := range members[:n] {
		out = append(out, m.Member)
	}
	return out, nil
}

func (s *memoryStore) Ping(_ context.Context) error {
	return nil
}
