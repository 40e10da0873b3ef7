package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/brislydeals/deals-pipeline/internal/config"
)

// redisStore implementa Store sobre um Redis remoto. A expiração de chaves
// fica a cargo do TTL nativo do servidor
type redisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, cfg config.Redis) (Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "REDIS_URL inválida")
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao testar conexão com Redis")
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "erro ao ler chave %q", key)
	}
	return val, nil
}

func (s *redisStore) SetEX(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "erro ao gravar chave %q", key)
	}
	return nil
}

func (s *redisStore) ZAdd(ctx context.Context, set string, score float64, member string) error {
	err := s.client.ZAdd(ctx, set, redis.Z{Score: score, Member: member}).Err()
	if err != nil {
		return errors.Wrapf(err, "erro ao adicionar membro ao conjunto %q", set)
	}
	return nil
}

func (s *redisStore) ZRevRangeTop(ctx context.Context, set string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	members, err := s.client.ZRevRange(ctx, set, 0, int64(n-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar top do conjunto %q", set)
	}
	return members, nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
