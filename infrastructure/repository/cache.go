package repository

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/brislydeals/deals-pipeline/infrastructure/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrCacheMiss sinaliza chave ausente ou expirada no cache. Não é um erro de
// operação: o chamador segue para o provedor externo
var ErrCacheMiss = errors.New("cache miss")

// CacheRepository é o cache genérico com TTL por entrada. Valores são
// registros estruturados serializados em JSON (round-trip exato)
type CacheRepository interface {
	// Get desserializa o valor da chave em dest; ErrCacheMiss se ausente
	Get(ctx context.Context, key string, dest any) error
	// Set serializa e grava o valor com o TTL informado
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type cacheRepository struct {
	store store.Store
}

func NewCacheRepository(s store.Store) CacheRepository {
	return &cacheRepository{store: s}
}

func (r *cacheRepository) Get(ctx context.Context, key string, dest any) error {
	raw, err := r.store.Get(ctx, key)
	if err == store.ErrNotFound {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.Wrapf(err, "erro ao ler cache %q", key)
	}

	if err := json.UnmarshalFromString(raw, dest); err != nil {
		return errors.Wrapf(err, "erro ao desserializar cache %q", key)
	}
	return nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.MarshalToString(value)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar cache %q", key)
	}

	return r.store.SetEX(ctx, key, raw, ttl)
}
