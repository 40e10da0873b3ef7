package formatting

import (
	"fmt"
	"strings"

	"github.com/brislydeals/deals-pipeline/internal/domain"
)

// BuildWeeklyReport monta o texto HTML do relatório semanal com os dois
// leaderboards (score e desconto)
func BuildWeeklyReport(topScore, topDiscount []domain.WeeklyMetricsEntry) string {
	return strings.Join([]string{
		"<b>📊 Report settimanale BrislyDeals</b>",
		"",
		"<b>🏅 Top 5 per Punteggio</b>",
		reportLines(topScore),
		"",
		"<b>💥 Top 5 per Risparmio</b>",
		reportLines(topDiscount),
		"",
		"Grazie per averci seguito! ❤️",
	}, "\n")
}

func reportLines(entries []domain.WeeklyMetricsEntry) string {
	if len(entries) == 0 {
		return "Nessun dato disponibile questa settimana."
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d) %s — ⭐%.1f/5 — 💸 %d%%", i+1, e.Title, e.Score, e.DiscountPct))
	}
	return strings.Join(lines, "\n")
}
