// Package publishing orquestra uma execução completa do pipeline:
// coleta -> filtro de dedup -> enriquecimento -> ranking -> entrega ->
// commit e métricas
package publishing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/notifier/telegram"
	"github.com/brislydeals/deals-pipeline/infrastructure/repository"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
	"github.com/brislydeals/deals-pipeline/internal/formatting"
	"github.com/brislydeals/deals-pipeline/internal/usecases/collecting"
	"github.com/brislydeals/deals-pipeline/internal/usecases/enriching"
	"github.com/brislydeals/deals-pipeline/internal/usecases/ranking"
	"github.com/brislydeals/deals-pipeline/pkg/utils"
)

type PublishService interface {
	// PublishSlot executa o lote de um slot de publicação. Ranking vazio é
	// um desfecho normal, não um erro
	PublishSlot(ctx context.Context) error
}

type Service struct {
	cfg       *config.Config
	collector collecting.CollectorService
	enricher  enriching.EnrichmentService
	ranker    ranking.RankingService
	dedup     repository.DedupRepository
	metrics   repository.MetricsRepository
	notifier  telegram.Notifier
	location  *time.Location
	now       func() time.Time
}

func NewService(
	cfg *config.Config,
	collector collecting.CollectorService,
	enricher enriching.EnrichmentService,
	ranker ranking.RankingService,
	dedup repository.DedupRepository,
	metrics repository.MetricsRepository,
	notifier telegram.Notifier,
) *Service {
	return &Service{
		cfg:       cfg,
		collector: collector,
		enricher:  enricher,
		ranker:    ranker,
		dedup:     dedup,
		metrics:   metrics,
		notifier:  notifier,
		location:  utils.LoadLocation(cfg.App.Timezone),
		now:       time.Now,
	}
}

func (s *Service) PublishSlot(ctx context.Context) error {
	runID := uuid.NewString()
	logger := logrus.WithField("run_id", runID)

	logger.Info("Iniciando slot de publicação")

	candidates := s.collector.Gather(ctx)

	fresh := s.filterSeen(ctx, candidates)
	enriched := s.enricher.Enrich(ctx, fresh)
	ranked := s.ranker.Rank(enriched)

	if len(ranked) == 0 {
		logger.Info("Nenhuma oferta elegível para este slot")
		return nil
	}

	toPost := ranked
	if s.cfg.Publish.PostsPerSlot > 0 && len(toPost) > s.cfg.Publish.PostsPerSlot {
		toPost = toPost[:s.cfg.Publish.PostsPerSlot]
	}

	week := utils.WeekKey(s.now().In(s.location))

	for i := range toPost {
		s.publishOffer(ctx, logger, &toPost[i], week)
	}

	logger.WithField("published", len(toPost)).Info("Slot de publicação concluído")
	return nil
}

// filterSeen remove candidatos publicados dentro da janela de dedup
func (s *Service) filterSeen(ctx context.Context, candidates []domain.Candidate) []domain.Candidate {
	fresh := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if s.dedup.SeenRecently(ctx, c.ID) {
			continue
		}
		fresh = append(fresh, c)
	}
	return fresh
}

// publishOffer entrega a oferta aos canais roteados. O commit de dedup só
// acontece quando ao menos uma entrega teve sucesso: falha transitória de
// entrega não pode suprimir uma oferta válida pela janela inteira
func (s *Service) publishOffer(ctx context.Context, logger *logrus.Entry, offer *domain.Candidate, week string) {
	payload := formatting.BuildPayload(offer, s.cfg.Amazon.PartnerTag)
	targets := s.targetChannels(offer.Source)

	delivered := false

	for _, channel := range targets {
		var err error
		if payload.ImageURL != "" {
			err = s.notifier.SendPhoto(ctx, channel, payload.ImageURL, payload.Caption)
		} else {
			err = s.notifier.SendMessage(ctx, channel, payload.Caption)
		}

		if err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"id":      offer.ID,
				"channel": channel,
			}).Error("Falha na entrega; canal ignorado nesta execução")
			continue
		}

		delivered = true

		entry := domain.NewWeeklyMetricsEntry(offer, channel, s.now())
		if err := s.metrics.Add(ctx, week, entry); err != nil {
			logger.WithError(err).WithField("id", offer.ID).Warn("Falha ao registrar métricas da publicação")
		}

		logger.WithFields(logrus.Fields{
			"id":      offer.ID,
			"source":  offer.Source,
			"channel": channel,
		}).Info("Oferta publicada: ", offer.Title)
	}

	if !delivered {
		return
	}

	if err := s.dedup.MarkSeen(ctx, offer.ID); err != nil {
		logger.WithError(err).WithField("id", offer.ID).Warn("Falha ao registrar dedup da publicação")
	}
}

// targetChannels resolve o roteamento por fonte configurado
func (s *Service) targetChannels(source domain.Source) []string {
	var targets []string

	if source == domain.SourceAmazon {
		if s.cfg.Publish.AmazonToMain {
			targets = append(targets, s.cfg.Telegram.ChannelMain)
		}
		if s.cfg.Publish.AmazonToAli {
			targets = append(targets, s.cfg.Telegram.ChannelAli)
		}
		return targets
	}

	if s.cfg.Publish.AliToMain {
		targets = append(targets, s.cfg.Telegram.ChannelMain)
	}
	if s.cfg.Publish.AliToAli {
		targets = append(targets, s.cfg.Telegram.ChannelAli)
	}
	return targets
}
