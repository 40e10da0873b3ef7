// Package scheduler contém os serviços de agendamento do pipeline
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/usecases/publishing"
	"github.com/brislydeals/deals-pipeline/pkg/utils"
)

type PublishSyncService struct {
	scheduler           *gocron.Scheduler
	publisher           publishing.PublishService
	cronSchedule        string
	enabled             bool
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPublishSyncService(publisher publishing.PublishService, cfg *config.Config) *PublishSyncService {
	scheduler := gocron.NewScheduler(utils.LoadLocation(cfg.App.Timezone))

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.Publish.CronSchedule,
	}).Info("Configuração do agendador de publicação carregada")

	return &PublishSyncService{
		scheduler:    scheduler,
		publisher:    publisher,
		cronSchedule: cfg.Publish.CronSchedule,
		enabled:      cfg.Publish.Enabled,
	}
}

func (s *PublishSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Cron de publicação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando cron dos slots de publicação")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		if err := s.RunPublishSlot(ctx); err != nil {
			logrus.WithError(err).Error("Erro no slot de publicação")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar slots de publicação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron dos slots de publicação")
		s.scheduler.Stop()
	}()

	return nil
}

// RunPublishSlot executa um slot de publicação garantindo execução única
func (s *PublishSyncService) RunPublishSlot(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Slot de publicação já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	return s.publisher.PublishSlot(ctx)
}

// TriggerManualSync inicia manualmente um slot de publicação
func (s *PublishSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Slot de publicação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando slot de publicação manual")
	go func() {
		if err := s.RunPublishSlot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no slot de publicação manual")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PublishSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_cron":              s.cronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
