package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/usecases/publishing/mocks"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Timezone = "UTC"
	cfg.Publish.CronSchedule = "0 9,11,13,15,17,19,21 * * 1-5"
	cfg.Publish.Enabled = true
	return cfg
}

func TestRunPublishSlot_DelegaAoPublicador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPublisher := mocks.NewMockPublishService(ctrl)
	mockPublisher.EXPECT().PublishSlot(gomock.Any()).Return(nil)

	service := NewPublishSyncService(mockPublisher, newTestConfig())

	err := service.RunPublishSlot(context.Background())
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.NotEqual(t, time.Time{}, status["last_sync_started_at"])
	assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
}

func TestRunPublishSlot_ExecucaoUnica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	mockPublisher := mocks.NewMockPublishService(ctrl)
	mockPublisher.EXPECT().
		PublishSlot(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			close(started)
			<-release
			return nil
		})

	service := NewPublishSyncService(mockPublisher, newTestConfig())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = service.RunPublishSlot(context.Background())
	}()

	<-started

	// Segunda chamada com o slot em andamento retorna sem publicar de novo
	err := service.RunPublishSlot(context.Background())
	assert.NoError(t, err)

	close(release)
	wg.Wait()
}

func TestGetStatus_RefleteAConfiguracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPublisher := mocks.NewMockPublishService(ctrl)

	cfg := newTestConfig()
	service := NewPublishSyncService(mockPublisher, cfg)

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, cfg.Publish.CronSchedule, status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
