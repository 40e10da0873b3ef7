package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/internal/usecases/reporting"
	"github.com/brislydeals/deals-pipeline/pkg/apiErrors"
)

// GetWeeklySummary retorna os destaques da semana corrente
func GetWeeklySummary(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetWeeklySummary")

		summary, err := service.WeeklySummary(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar o resumo semanal")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao montar o resumo semanal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}
