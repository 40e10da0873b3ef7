package publishing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	telegrammocks "github.com/brislydeals/deals-pipeline/infrastructure/notifier/telegram/mocks"
	repomocks "github.com/brislydeals/deals-pipeline/infrastructure/repository/mocks"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
	collectingmocks "github.com/brislydeals/deals-pipeline/internal/usecases/collecting/mocks"
	enrichingmocks "github.com/brislydeals/deals-pipeline/internal/usecases/enriching/mocks"
	"github.com/brislydeals/deals-pipeline/internal/usecases/ranking"
)

func floatPtr(v float64) *float64 { return &v }

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Timezone = "UTC"
	cfg.Amazon.PartnerTag = "brislydeals-21"
	cfg.Telegram.ChannelMain = "@BrislyDeals"
	cfg.Telegram.ChannelAli = "@FengXpress"
	cfg.Publish.PostsPerSlot = 2
	cfg.Publish.AmazonToMain = true
	cfg.Publish.AliToAli = true
	cfg.Selection.MinDiscount = 15
	return cfg
}

type testMocks struct {
	collector *collectingmocks.MockCollectorService
	enricher  *enrichingmocks.MockEnrichmentService
	dedup     *repomocks.MockDedupRepository
	metrics   *repomocks.MockMetricsRepository
	notifier  *telegrammocks.MockNotifier
}

func newTestService(t *testing.T, cfg *config.Config) (*Service, testMocks) {
	ctrl := gomock.NewController(t)

	m := testMocks{
		collector: collectingmocks.NewMockCollectorService(ctrl),
		enricher:  enrichingmocks.NewMockEnrichmentService(ctrl),
		dedup:     repomocks.NewMockDedupRepository(ctrl),
		metrics:   repomocks.NewMockMetricsRepository(ctrl),
		notifier:  telegrammocks.NewMockNotifier(ctrl),
	}

	service := NewService(
		cfg,
		m.collector,
		m.enricher,
		ranking.NewService(cfg),
		m.dedup,
		m.metrics,
		m.notifier,
	)
	service.now = func() time.Time {
		return time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	}

	return service, m
}

func strongOffer(id string) domain.Candidate {
	return domain.Candidate{
		Source:      domain.SourceAmazon,
		ID:          id,
		Title:       "Oferta de teste",
		URL:         "https://www.amazon.it/dp/" + id,
		Image:       "https://img.example/" + id + ".jpg",
		PriceNow:    80,
		PriceOld:    floatPtr(100),
		DiscountPct: 20,
		Stars:       floatPtr(4.6),
		Reviews:     1200,
	}
}

func TestPublishSlot_PublicaECommitaDedup(t *testing.T) {
	cfg := newTestConfig()
	service, m := newTestService(t, cfg)

	offer := strongOffer("B0PUB001")
	batch := []domain.Candidate{offer}

	m.collector.EXPECT().Gather(gomock.Any()).Return(batch)
	m.dedup.EXPECT().SeenRecently(gomock.Any(), "B0PUB001").Return(false)
	m.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, candidates []domain.Candidate) []domain.Candidate {
			return candidates
		})

	m.notifier.EXPECT().
		SendPhoto(gomock.Any(), "@BrislyDeals", offer.Image, gomock.Any()).
		Return(nil)

	// Métricas registradas na semana ISO da execução
	m.metrics.EXPECT().
		Add(gomock.Any(), "2025-W11", gomock.Any()).
		Return(nil)

	// Commit só depois de entrega bem-sucedida
	m.dedup.EXPECT().MarkSeen(gomock.Any(), "B0PUB001").Return(nil)

	err := service.PublishSlot(context.Background())
	assert.NoError(t, err)
}

func TestPublishSlot_FalhaDeEntregaNaoCommitaDedup(t *testing.T) {
	cfg := newTestConfig()
	service, m := newTestService(t, cfg)

	offer := strongOffer("B0PUB002")

	m.collector.EXPECT().Gather(gomock.Any()).Return([]domain.Candidate{offer})
	m.dedup.EXPECT().SeenRecently(gomock.Any(), "B0PUB002").Return(false)
	m.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, candidates []domain.Candidate) []domain.Candidate {
			return candidates
		})

	m.notifier.EXPECT().
		SendPhoto(gomock.Any(), "@BrislyDeals", gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// Nenhum MarkSeen nem Add: a oferta pode concorrer no próximo slot

	err := service.PublishSlot(context.Background())
	assert.NoError(t, err)
}

func TestPublishSlot_FiltraOfertasJaVistas(t *testing.T) {
	cfg := newTestConfig()
	service, m := newTestService(t, cfg)

	seen := strongOffer("B0VISTO")
	fresh := strongOffer("B0NOVO")

	m.collector.EXPECT().Gather(gomock.Any()).Return([]domain.Candidate{seen, fresh})
	m.dedup.EXPECT().SeenRecently(gomock.Any(), "B0VISTO").Return(true)
	m.dedup.EXPECT().SeenRecently(gomock.Any(), "B0NOVO").Return(false)
	m.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, candidates []domain.Candidate) []domain.Candidate {
			assert.Len(t, candidates, 1)
			assert.Equal(t, "B0NOVO", candidates[0].ID)
			return candidates
		})

	m.notifier.EXPECT().
		SendPhoto(gomock.Any(), "@BrislyDeals", gomock.Any(), gomock.Any()).
		Return(nil)
	m.metrics.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.dedup.EXPECT().MarkSeen(gomock.Any(), "B0NOVO").Return(nil)

	err := service.PublishSlot(context.Background())
	assert.NoError(t, err)
}

func TestPublishSlot_TruncaNoLimiteDoSlot(t *testing.T) {
	cfg := newTestConfig()
	cfg.Publish.PostsPerSlot = 1
	service, m := newTestService(t, cfg)

	first := strongOffer("B0TOP")
	first.DiscountPct = 50
	second := strongOffer("B0RESTO")

	m.collector.EXPECT().Gather(gomock.Any()).Return([]domain.Candidate{first, second})
	m.dedup.EXPECT().SeenRecently(gomock.Any(), gomock.Any()).Return(false).Times(2)
	m.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, candidates []domain.Candidate) []domain.Candidate {
			return candidates
		})

	// Só a melhor oferta é publicada
	m.notifier.EXPECT().
		SendPhoto(gomock.Any(), "@BrislyDeals", gomock.Any(), gomock.Any()).
		Return(nil)
	m.metrics.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.dedup.EXPECT().MarkSeen(gomock.Any(), "B0TOP").Return(nil)

	err := service.PublishSlot(context.Background())
	assert.NoError(t, err)
}

func TestPublishSlot_RankingVazioEhDesfechoNormal(t *testing.T) {
	cfg := newTestConfig()
	service, m := newTestService(t, cfg)

	// Desconto abaixo do mínimo: o ranking descarta tudo
	weak := strongOffer("B0FRACO")
	weak.DiscountPct = 5

	m.collector.EXPECT().Gather(gomock.Any()).Return([]domain.Candidate{weak})
	m.dedup.EXPECT().SeenRecently(gomock.Any(), "B0FRACO").Return(false)
	m.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, candidates []domain.Candidate) []domain.Candidate {
			return candidates
		})

	err := service.PublishSlot(context.Background())
	assert.NoError(t, err)
}

func TestPublishSlot_RoteamentoAliExpress(t *testing.T) {
	cfg := newTestConfig()
	service, m := newTestService(t, cfg)

	offer := strongOffer("1005009")
	offer.Source = domain.SourceAliExpress
	offer.URL = "https://www.aliexpress.com/item/1005009.html"

	m.collector.EXPECT().Gather(gomock.Any()).Return([]domain.Candidate{offer})
	m.dedup.EXPECT().SeenRecently(gomock.Any(), "1005009").Return(false)
	m.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, candidates []domain.Candidate) []domain.Candidate {
			return candidates
		})

	// Roteamento: AliExpress só vai ao canal Ali na configuração de teste
	m.notifier.EXPECT().
		SendPhoto(gomock.Any(), "@FengXpress", gomock.Any(), gomock.Any()).
		Return(nil)
	m.metrics.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.dedup.EXPECT().MarkSeen(gomock.Any(), "1005009").Return(nil)

	err := service.PublishSlot(context.Background())
	assert.NoError(t, err)
}

func TestPublishSlot_SemImagemUsaMensagemDeTexto(t *testing.T) {
	cfg := newTestConfig()
	service, m := newTestService(t, cfg)

	offer := strongOffer("B0SEMIMG")
	offer.Image = ""

	m.collector.EXPECT().Gather(gomock.Any()).Return([]domain.Candidate{offer})
	m.dedup.EXPECT().SeenRecently(gomock.Any(), "B0SEMIMG").Return(false)
	m.enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, candidates []domain.Candidate) []domain.Candidate {
			return candidates
		})

	m.notifier.EXPECT().
		SendMessage(gomock.Any(), "@BrislyDeals", gomock.Any()).
		Return(nil)
	m.metrics.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.dedup.EXPECT().MarkSeen(gomock.Any(), "B0SEMIMG").Return(nil)

	err := service.PublishSlot(context.Background())
	assert.NoError(t, err)
}
