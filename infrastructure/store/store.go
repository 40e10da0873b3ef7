// Package store abstrai o armazenamento chave-valor com TTL e os conjuntos
// ordenados usados por dedup, cache e métricas. Há duas implementações com a
// mesma semântica: Redis remoto e fallback em memória
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/internal/config"
)

// ErrNotFound sinaliza chave ausente ou expirada. Não é um erro de operação:
// quem lê decide o fallback (cache miss, "não visto" etc.)
type notFoundError struct{}

func (notFoundError) Error() string { return "chave não encontrada" }

var ErrNotFound error = notFoundError{}

// ScoredMember é um membro de conjunto ordenado com seu score
type ScoredMember struct {
	Member string
	Score  float64
}

// Store é o contrato mínimo consumido pelos repositórios. Cada Get/Set é
// atômico no nível da chave; não há transações multi-chave
type Store interface {
	// Get retorna o valor da chave ou ErrNotFound se ausente/expirada
	Get(ctx context.Context, key string) (string, error)
	// SetEX grava o valor com expiração. TTL zero significa sem expiração
	SetEX(ctx context.Context, key, value string, ttl time.Duration) error
	// ZAdd adiciona um membro com score ao conjunto ordenado
	ZAdd(ctx context.Context, set string, score float64, member string) error
	// ZRevRangeTop retorna os n membros de maior score, em ordem decrescente
	ZRevRangeTop(ctx context.Context, set string, n int) ([]string, error)
	Ping(ctx context.Context) error
}

// New seleciona a implementação pela presença da URL do Redis na configuração.
// Sem Redis configurado (ou inacessível), opera degradado em memória
func New(ctx context.Context, cfg config.Redis) Store {
	if cfg.URL == "" {
		logrus.Info("REDIS_URL não configurada; usando armazenamento em memória")
		return NewMemoryStore()
	}

	s, err := NewRedisStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao conectar no Redis; operando degradado em memória")
		return NewMemoryStore()
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return s
}
