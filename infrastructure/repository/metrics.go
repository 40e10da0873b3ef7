package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/store"
	"github.com/brislydeals/deals-pipeline/internal/domain"
	"github.com/brislydeals/deals-pipeline/pkg/utils"
)

// Tipos de leaderboard semanal
const (
	MetricKindScore    = "score"
	MetricKindDiscount = "discount"
)

// MetricsRepository acumula publicações nos leaderboards da semana ISO.
// Entradas nunca mutam depois de gravadas; a leitura é só para o relatório
type MetricsRepository interface {
	// Add anexa a entrada aos dois leaderboards da semana (score e desconto)
	Add(ctx context.Context, week string, entry domain.WeeklyMetricsEntry) error
	// Top retorna as n melhores entradas da semana pelo tipo informado
	Top(ctx context.Context, week, kind string, n int) ([]domain.WeeklyMetricsEntry, error)
}

type metricsRepository struct {
	store store.Store
}

func NewMetricsRepository(s store.Store) MetricsRepository {
	return &metricsRepository{store: s}
}

func weekSetKey(week, kind string) string {
	return fmt.Sprintf("wk:%s:%s", week, kind)
}

func (r *metricsRepository) Add(ctx context.Context, week string, entry domain.WeeklyMetricsEntry) error {
	raw, err := json.MarshalToString(entry)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar entrada de métricas")
	}

	// Sufixo nanoid para que duas publicações idênticas não colapsem no
	// mesmo membro do conjunto ordenado
	suffix, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar sufixo do membro")
	}
	member := raw + "|" + suffix

	if err := r.store.ZAdd(ctx, weekSetKey(week, MetricKindScore), entry.Score, member); err != nil {
		return err
	}
	return r.store.ZAdd(ctx, weekSetKey(week, MetricKindDiscount), float64(entry.DiscountPct), member)
}

func (r *metricsRepository) Top(ctx context.Context, week, kind string, n int) ([]domain.WeeklyMetricsEntry, error) {
	members, err := r.store.ZRevRangeTop(ctx, weekSetKey(week, kind), n)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.WeeklyMetricsEntry, 0, len(members))
	for _, m := range members {
		// Descarta o sufixo de unicidade antes de desserializar
		if i := strings.LastIndexByte(m, '|'); i >= 0 {
			m = m[:i]
		}

		var entry domain.WeeklyMetricsEntry
		if err := json.UnmarshalFromString(m, &entry); err != nil {
			logrus.WithError(err).Warn("Entrada de métricas ilegível no leaderboard; ignorando")
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
