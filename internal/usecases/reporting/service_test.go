package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	telegrammocks "github.com/brislydeals/deals-pipeline/infrastructure/notifier/telegram/mocks"
	"github.com/brislydeals/deals-pipeline/infrastructure/repository"
	repomocks "github.com/brislydeals/deals-pipeline/infrastructure/repository/mocks"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
)

func newTestService(metrics repository.MetricsRepository, notifier *telegrammocks.MockNotifier) ReportService {
	cfg := &config.Config{}
	cfg.App.Timezone = "UTC"
	cfg.Telegram.ChannelMain = "@BrislyDeals"

	service := NewService(cfg, metrics, notifier)
	service.(*Service).now = func() time.Time {
		return time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	}
	return service
}

func TestWeeklySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetrics := repomocks.NewMockMetricsRepository(ctrl)
	mockNotifier := telegrammocks.NewMockNotifier(ctrl)

	topScore := []domain.WeeklyMetricsEntry{{ID: "B0A", Title: "Oferta A", Score: 4.5, DiscountPct: 20}}
	topDiscount := []domain.WeeklyMetricsEntry{{ID: "B0B", Title: "Oferta B", Score: 3.5, DiscountPct: 60}}

	mockMetrics.EXPECT().
		Top(gomock.Any(), "2025-W11", repository.MetricKindScore, 5).
		Return(topScore, nil)
	mockMetrics.EXPECT().
		Top(gomock.Any(), "2025-W11", repository.MetricKindDiscount, 5).
		Return(topDiscount, nil)

	service := newTestService(mockMetrics, mockNotifier)

	summary, err := service.WeeklySummary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "2025-W11", summary.Week)
	assert.Equal(t, topScore, summary.TopScore)
	assert.Equal(t, topDiscount, summary.TopDiscount)
}

func TestSendWeeklyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetrics := repomocks.NewMockMetricsRepository(ctrl)
	mockNotifier := telegrammocks.NewMockNotifier(ctrl)

	mockMetrics.EXPECT().
		Top(gomock.Any(), "2025-W11", repository.MetricKindScore, 5).
		Return([]domain.WeeklyMetricsEntry{{Title: "Oferta A", Score: 4.5, DiscountPct: 20}}, nil)
	mockMetrics.EXPECT().
		Top(gomock.Any(), "2025-W11", repository.MetricKindDiscount, 5).
		Return(nil, nil)

	mockNotifier.EXPECT().
		SendMessage(gomock.Any(), "@BrislyDeals", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string) error {
			assert.Contains(t, text, "Report settimanale BrislyDeals")
			assert.Contains(t, text, "Oferta A")
			return nil
		})

	service := newTestService(mockMetrics, mockNotifier)

	err := service.SendWeeklyReport(context.Background())
	assert.NoError(t, err)
}

func TestSendWeeklyReport_FalhaDeLeituraDasMetricas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetrics := repomocks.NewMockMetricsRepository(ctrl)
	mockNotifier := telegrammocks.NewMockNotifier(ctrl)

	mockMetrics.EXPECT().
		Top(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	service := newTestService(mockMetrics, mockNotifier)

	err := service.SendWeeklyReport(context.Background())
	assert.Error(t, err)
}
