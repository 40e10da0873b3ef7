package domain

import "time"

// WeeklyMetricsEntry é um registro imutável de publicação, anexado aos
// leaderboards semanais (por score e por desconto) para o relatório
type WeeklyMetricsEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Channel     string   `json:"channel"`
	PriceNow    float64  `json:"price_now"`
	PriceOld    *float64 `json:"price_old,omitempty"`
	DiscountPct int      `json:"discount_pct"`
	Score       float64  `json:"score"`
	Source      Source   `json:"source"`
	Timestamp   int64    `json:"ts"`
}

// NewWeeklyMetricsEntry monta o registro de métricas a partir de um
// candidato publicado em um canal
func NewWeeklyMetricsEntry(c *Candidate, channel string, now time.Time) WeeklyMetricsEntry {
	score := 0.0
	if c.Score != nil {
		score = *c.Score
	}

	return WeeklyMetricsEntry{
		ID:          c.ID,
		Title:       c.Title,
		Channel:     channel,
		PriceNow:    c.PriceNow,
		PriceOld:    c.PriceOld,
		DiscountPct: c.DiscountPct,
		Score:       score,
		Source:      c.Source,
		Timestamp:   now.Unix(),
	}
}
