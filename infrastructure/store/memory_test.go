package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_SetEXGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.SetEX(ctx, "dedup:B0TESTE01", "1", time.Hour)
	assert.NoError(t, err)

	value, err := s.Get(ctx, "dedup:B0TESTE01")
	assert.NoError(t, err)
	assert.Equal(t, "1", value)

	_, err = s.Get(ctx, "dedup:inexistente")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ExpiracaoPreguicosa(t *testing.T) {
	ctx := context.Background()

	current := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	s := &memoryStore{
		keys: make(map[string]memoryEntry),
		sets: make(map[string][]ScoredMember),
		now:  func() time.Time { return current },
	}

	assert.NoError(t, s.SetEX(ctx, "dedup:B0TTL", "1", 24*time.Hour))

	// Dentro da janela a chave é visível
	_, err := s.Get(ctx, "dedup:B0TTL")
	assert.NoError(t, err)

	// Passada a janela, a leitura descarta a entrada vencida
	current = current.Add(25 * time.Hour)
	_, err = s.Get(ctx, "dedup:B0TTL")
	assert.ErrorIs(t, err, ErrNotFound)

	// E a releitura continua reportando ausência
	_, err = s.Get(ctx, "dedup:B0TTL")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TTLZeroNaoExpira(t *testing.T) {
	ctx := context.Background()

	current := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	s := &memoryStore{
		keys: make(map[string]memoryEntry),
		sets: make(map[string][]ScoredMember),
		now:  func() time.Time { return current },
	}

	assert.NoError(t, s.SetEX(ctx, "chave", "valor", 0))

	current = current.Add(1000 * time.Hour)
	value, err := s.Get(ctx, "chave")
	assert.NoError(t, err)
	assert.Equal(t, "valor", value)
}

func TestMemoryStore_ZAddAtualizaScoreDeMembroRepetido(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	assert.NoError(t, s.ZAdd(ctx, "wk:2025-W11:score", 3.5, "oferta-a"))
	assert.NoError(t, s.ZAdd(ctx, "wk:2025-W11:score", 4.5, "oferta-a"))
	assert.NoError(t, s.ZAdd(ctx, "wk:2025-W11:score", 4.0, "oferta-b"))

	top, err := s.ZRevRangeTop(ctx, "wk:2025-W11:score", 10)
	assert.NoError(t, err)
	assert.Equal(t, []string{"oferta-a", "oferta-b"}, top)
}

func TestMemoryStore_ZRevRangeTopLimitaEOrdena(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	assert.NoError(t, s.ZAdd(ctx, "wk:2025-W11:discount", 20, "vinte"))
	assert.NoError(t, s.ZAdd(ctx, "wk:2025-W11:discount", 55, "cinquenta-e-cinco"))
	assert.NoError(t, s.ZAdd(ctx, "wk:2025-W11:discount", 40, "quarenta"))

	top, err := s.ZRevRangeTop(ctx, "wk:2025-W11:discount", 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"cinquenta-e-cinco", "quarenta"}, top)

	// n maior que o conjunto devolve tudo
	all, err := s.ZRevRangeTop(ctx, "wk:2025-W11:discount", 50)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	// Conjunto inexistente e n não positivo são vazios
	empty, err := s.ZRevRangeTop(ctx, "wk:vazia:discount", 5)
	assert.NoError(t, err)
	assert.Empty(t, empty)

	none, err := s.ZRevRangeTop(ctx, "wk:2025-W11:discount", 0)
	assert.NoError(t, err)
	assert.Empty(t, none)
}
