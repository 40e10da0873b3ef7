// Package ranking filtra e ordena os candidatos sobreviventes
package ranking

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
	"github.com/brislydeals/deals-pipeline/internal/usecases/scoring"
)

type RankingService interface {
	// Rank descarta candidatos abaixo do desconto mínimo (aplicado depois do
	// backfill do enriquecimento), computa o score dos sobreviventes e ordena
	// por (score, desconto) decrescentes com desempate estável. A truncagem
	// em slots de publicação é política do chamador
	Rank(candidates []domain.Candidate) []domain.Candidate
}

type Service struct {
	minDiscount int
}

func NewService(cfg *config.Config) RankingService {
	return &Service{
		minDiscount: cfg.Selection.MinDiscount,
	}
}

func (s *Service) Rank(candidates []domain.Candidate) []domain.Candidate {
	survivors := make([]domain.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if c.DiscountPct < s.minDiscount {
			continue
		}

		score := scoring.Score(&c)
		c.Score = &score
		survivors = append(survivors, c)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if *survivors[i].Score != *survivors[j].Score {
			return *survivors[i].Score > *survivors[j].Score
		}
		return survivors[i].DiscountPct > survivors[j].DiscountPct
	})

	logrus.WithFields(logrus.Fields{
		"input":     len(candidates),
		"survivors": len(survivors),
	}).Info("Ranking concluído")

	return survivors
}
