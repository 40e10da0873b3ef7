package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/usecases/reporting"
	"github.com/brislydeals/deals-pipeline/pkg/utils"
)

type WeeklyReportSyncService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.ReportService
	cronSchedule        string
	enabled             bool
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewWeeklyReportSyncService(reporter reporting.ReportService, cfg *config.Config) *WeeklyReportSyncService {
	scheduler := gocron.NewScheduler(utils.LoadLocation(cfg.App.Timezone))

	return &WeeklyReportSyncService{
		scheduler:    scheduler,
		reporter:     reporter,
		cronSchedule: cfg.Publish.ReportCronSchedule,
		enabled:      cfg.Publish.ReportEnabled,
	}
}

func (s *WeeklyReportSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Cron do relatório semanal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando cron do relatório semanal")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		if err := s.RunWeeklyReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro no envio do relatório semanal")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório semanal")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *WeeklyReportSyncService) RunWeeklyReport(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Relatório semanal já está em execução")
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

	return s.reporter.SendWeeklyReport(ctx)
}

// TriggerManualSync inicia manualmente o envio do relatório semanal
func (s *WeeklyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório semanal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando relatório semanal manual")
	go func() {
		if err := s.RunWeeklyReport(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no relatório semanal manual")
		}
	}()
}

func (s *WeeklyReportSyncService) GetStatus() map[string]any {
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
