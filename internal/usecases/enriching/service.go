// Package enriching aplica o histórico de preços aos candidatos Amazon,
// limitado por um orçamento de chamadas externas por execução
package enriching

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/keepa"
	"github.com/brislydeals/deals-pipeline/infrastructure/repository"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
)

const cacheKeyPrefix = "keepa:"

type EnrichmentService interface {
	// Enrich popula o enriquecimento dos candidatos elegíveis, na ordem de
	// entrada. Acertos de cache não consomem orçamento. Falhas do provedor e
	// esgotamento do orçamento não são fatais: o restante passa inalterado
	Enrich(ctx context.Context, candidates []domain.Candidate) []domain.Candidate
}

type Service struct {
	pricing  keepa.KeepaIntegrator
	cache    repository.CacheRepository
	cacheTTL time.Duration
	maxCalls int
}

func NewService(cfg *config.Config, pricing keepa.KeepaIntegrator, cache repository.CacheRepository) EnrichmentService {
	return &Service{
		pricing:  pricing,
		cache:    cache,
		cacheTTL: cfg.Keepa.TTL(),
		maxCalls: cfg.Keepa.MaxEnrich,
	}
}

func (s *Service) Enrich(ctx context.Context, candidates []domain.Candidate) []domain.Candidate {
	externalCalls := 0

	for i := range candidates {
		c := &candidates[i]

		if c.Source != domain.SourceAmazon {
			continue
		}

		cacheKey := cacheKeyPrefix + c.ID

		var cached domain.Enrichment
		err := s.cache.Get(ctx, cacheKey, &cached)
		if err == nil {
			apply(c, &cached)
			continue
		}
		if err != repository.ErrCacheMiss {
			logrus.WithError(err).WithField("asin", c.ID).Warn("Falha ao ler cache de enriquecimento")
		}

		if externalCalls >= s.maxCalls {
			// Orçamento esgotado não é erro; os demais seguem sem enriquecer
			continue
		}

		externalCalls++

		enrichment, err := s.pricing.Lookup(ctx, c.ID)
		if err != nil {
			logrus.WithError(err).WithField("asin", c.ID).Warn("Falha no enriquecimento; candidato segue sem histórico")
			continue
		}
		if enrichment == nil {
			// Sem dados não cacheia resultado negativo nem re-tenta na execução
			continue
		}

		if err := s.cache.Set(ctx, cacheKey, enrichment, s.cacheTTL); err != nil {
			logrus.WithError(err).WithField("asin", c.ID).Warn("Falha ao gravar cache de enriquecimento")
		}

		apply(c, enrichment)
	}

	logrus.WithFields(logrus.Fields{
		"candidates":     len(candidates),
		"external_calls": externalCalls,
	}).Info("Enriquecimento concluído")

	return candidates
}

// apply grava o enriquecimento e faz o backfill do preço antigo: sem preço
// de referência mas com média de 90 dias acima do preço atual, a média vira
// o preço antigo e o desconto é recalculado. Este é o único ponto em que o
// desconto muda depois da coleta
func apply(c *domain.Candidate, enrichment *domain.Enrichment) {
	c.Enrichment = enrichment

	if c.PriceOld == nil && enrichment.AvgPrice90d != nil && *enrichment.AvgPrice90d > c.PriceNow {
		old := *enrichment.AvgPrice90d
		c.PriceOld = &old
		c.DiscountPct = domain.DiscountPercent(old, c.PriceNow)
	}
}
