package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/internal/scheduler"
	"github.com/brislydeals/deals-pipeline/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePublish      = "publish"
	CronJobTypeWeeklyReport = "weekly-report"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PublishSyncService      *scheduler.PublishSyncService
	WeeklyReportSyncService *scheduler.WeeklyReportSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePublish:
			if services.PublishSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de publicação não disponível", nil)
				return
			}
			services.PublishSyncService.TriggerManualSync()

		case CronJobTypeWeeklyReport:
			if services.WeeklyReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatório semanal não disponível", nil)
				return
			}
			services.WeeklyReportSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.PublishSyncService != nil {
				services.PublishSyncService.TriggerManualSync()
			}
			if services.WeeklyReportSyncService != nil {
				services.WeeklyReportSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: publish, weekly-report, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"publish":       services.PublishSyncService.GetStatus(),
			"weekly-report": services.WeeklyReportSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
