// Package reporting lê os leaderboards da semana e envia o relatório
package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/notifier/telegram"
	"github.com/brislydeals/deals-pipeline/infrastructure/repository"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
	"github.com/brislydeals/deals-pipeline/internal/formatting"
	"github.com/brislydeals/deals-pipeline/pkg/utils"
)

const reportTopN = 5

type ReportService interface {
	// SendWeeklyReport envia ao canal principal os top 5 por score e por
	// desconto da semana ISO corrente
	SendWeeklyReport(ctx context.Context) error
	// WeeklySummary retorna os leaderboards correntes sem enviar nada
	WeeklySummary(ctx context.Context) (*WeeklySummary, error)
}

// WeeklySummary é a visão dos leaderboards exposta pela API administrativa
type WeeklySummary struct {
	Week        string                      `json:"week"`
	TopScore    []domain.WeeklyMetricsEntry `json:"top_score"`
	TopDiscount []domain.WeeklyMetricsEntry `json:"top_discount"`
}

type Service struct {
	cfg      *config.Config
	metrics  repository.MetricsRepository
	notifier telegram.Notifier
	location *time.Location
	now      func() time.Time
}

func NewService(cfg *config.Config, metrics repository.MetricsRepository, notifier telegram.Notifier) ReportService {
	return &Service{
		cfg:      cfg,
		metrics:  metrics,
		notifier: notifier,
		location: utils.LoadLocation(cfg.App.Timezone),
		now:      time.Now,
	}
}

func (s *Service) WeeklySummary(ctx context.Context) (*WeeklySummary, error) {
	week := utils.WeekKey(s.now().In(s.location))

	topScore, err := s.metrics.Top(ctx, week, repository.MetricKindScore, reportTopN)
	if err != nil {
		return nil, err
	}

	topDiscount, err := s.metrics.Top(ctx, week, repository.MetricKindDiscount, reportTopN)
	if err != nil {
		return nil, err
	}

	return &WeeklySummary{
		Week:        week,
		TopScore:    topScore,
		TopDiscount: topDiscount,
	}, nil
}

func (s *Service) SendWeeklyReport(ctx context.Context) error {
	summary, err := s.WeeklySummary(ctx)
	if err != nil {
		return err
	}

	text := formatting.BuildWeeklyReport(summary.TopScore, summary.TopDiscount)

	if err := s.notifier.SendMessage(ctx, s.cfg.Telegram.ChannelMain, text); err != nil {
		return err
	}

	logrus.WithField("week", summary.Week).Info("Relatório semanal enviado")
	return nil
}
