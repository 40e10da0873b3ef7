// Package repository contém os repositórios de dedup, cache e métricas
// sobre o armazenamento chave-valor
package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/store"
)

const dedupKeyPrefix = "dedup:"

// DedupRepository registra identificadores publicados dentro da janela de
// supressão e responde se um identificador foi visto recentemente
type DedupRepository interface {
	// MarkSeen registra o identificador com expiração na janela configurada.
	// Idempotente: re-marcar apenas renova a expiração
	MarkSeen(ctx context.Context, id string) error
	// SeenRecently retorna true se existe registro não expirado para o id
	SeenRecently(ctx context.Context, id string) bool
}

type dedupRepository struct {
	store  store.Store
	window time.Duration
}

func NewDedupRepository(s store.Store, window time.Duration) DedupRepository {
	return &dedupRepository{
		store:  s,
		window: window,
	}
}

func (r *dedupRepository) MarkSeen(ctx context.Context, id string) error {
	return r.store.SetEX(ctx, dedupKeyPrefix+id, "1", r.window)
}

func (r *dedupRepository) SeenRecently(ctx context.Context, id string) bool {
	_, err := r.store.Get(ctx, dedupKeyPrefix+id)
	if err == store.ErrNotFound {
		return false
	}
	if err != nil {
		// Falha de leitura abre a supressão: no pior caso repetimos um post,
		// nunca descartamos uma oferta válida
		logrus.WithError(err).WithField("id", id).Warn("Falha ao consultar dedup; tratando como não visto")
		return false
	}
	return true
}
