package formatting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brislydeals/deals-pipeline/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildPayload_Amazon(t *testing.T) {
	score := 4.5
	c := &domain.Candidate{
		Source:      domain.SourceAmazon,
		ID:          "B0TESTE01",
		Title:       "Hisense TV OLED 55",
		URL:         "https://www.amazon.it/dp/B0TESTE01",
		Image:       "https://img.example/B0TESTE01.jpg",
		PriceNow:    499.99,
		PriceOld:    floatPtr(699.99),
		DiscountPct: 29,
		Stars:       floatPtr(4.6),
		Reviews:     1834,
		Score:       &score,
		Tags:        []string{"Hisense", "SmartTV"},
		Enrichment: &domain.Enrichment{
			AvgPrice90d:      floatPtr(620.0),
			MinPrice:         floatPtr(480.0),
			MaxPrice:         floatPtr(749.0),
			IsPrime:          true,
			BuyboxIsPlatform: true,
			SalesRank:        intPtr(3),
			CategoryName:     "TV e Home Cinema",
		},
	}

	payload := BuildPayload(c, "brislydeals-21")

	assert.Contains(t, payload.Caption, "🟢 [AMAZON]")
	assert.Contains(t, payload.Caption, "Hisense TV OLED 55")
	assert.Contains(t, payload.Caption, "<b>499.99€</b> <s>699.99€</s>")
	assert.Contains(t, payload.Caption, "Sconto/Risparmio: <b>29%</b>")
	assert.Contains(t, payload.Caption, "Punteggio BrislyDeals: 4.5/5")
	assert.Contains(t, payload.Caption, "⭐ Valutazione: 4.6 ★ (1834+)")
	assert.Contains(t, payload.Caption, "#3 in TV e Home Cinema")
	assert.Contains(t, payload.Caption, "🚚 <b>Prime</b>")
	assert.Contains(t, payload.Caption, "Buy Box: Amazon")
	assert.Contains(t, payload.Caption, "Storico prezzi (Keepa)")
	assert.Contains(t, payload.Caption, "📊 Media 90g: 620€")
	assert.Contains(t, payload.Caption, "#Hisense #SmartTV")

	assert.Equal(t, "https://img.example/B0TESTE01.jpg", payload.ImageURL)
	assert.Equal(t, "https://www.amazon.it/dp/B0TESTE01?tag=brislydeals-21", payload.LinkURL)
}

func TestBuildPayload_AliExpress(t *testing.T) {
	score := 3.5
	c := &domain.Candidate{
		Source:      domain.SourceAliExpress,
		ID:          "1005001",
		Title:       "Cuffie bluetooth",
		URL:         "https://www.aliexpress.com/item/1005001.html",
		PriceNow:    25.90,
		DiscountPct: 48,
		Score:       &score,
	}

	payload := BuildPayload(c, "brislydeals-21")

	assert.Contains(t, payload.Caption, "🧧 [ALIEXPRESS]")
	assert.Contains(t, payload.Caption, "Guarda su AliExpress")

	// O tag de afiliado Amazon não vaza para links AliExpress
	assert.Equal(t, "https://www.aliexpress.com/item/1005001.html", payload.LinkURL)
	assert.NotContains(t, payload.Caption, "tag=brislydeals-21")
}

func TestBuildPayload_TagDeAfiliado(t *testing.T) {
	base := domain.Candidate{
		Source:   domain.SourceAmazon,
		ID:       "B0TESTE02",
		Title:    "Oferta",
		PriceNow: 10,
	}

	// Link sem query string ganha "?tag="
	c := base
	c.URL = "https://www.amazon.it/dp/B0TESTE02"
	assert.Equal(t, "https://www.amazon.it/dp/B0TESTE02?tag=brislydeals-21", BuildPayload(&c, "brislydeals-21").LinkURL)

	// Link com query string ganha "&tag="
	c = base
	c.URL = "https://www.amazon.it/dp/B0TESTE02?th=1"
	assert.Equal(t, "https://www.amazon.it/dp/B0TESTE02?th=1&tag=brislydeals-21", BuildPayload(&c, "brislydeals-21").LinkURL)

	// Link que já tem tag não é alterado
	c = base
	c.URL = "https://www.amazon.it/dp/B0TESTE02?tag=outro-21"
	assert.Equal(t, "https://www.amazon.it/dp/B0TESTE02?tag=outro-21", BuildPayload(&c, "brislydeals-21").LinkURL)
}

func TestBuildPayload_CamposOpcionaisAusentes(t *testing.T) {
	c := &domain.Candidate{
		Source:   domain.SourceAmazon,
		ID:       "B0MINIMO",
		Title:    "Oferta mínima",
		URL:      "https://www.amazon.it/dp/B0MINIMO",
		PriceNow: 19.99,
	}

	payload := BuildPayload(c, "brislydeals-21")

	assert.Contains(t, payload.Caption, "<b>19.99€</b>")
	assert.NotContains(t, payload.Caption, "<s>")
	assert.NotContains(t, payload.Caption, "Valutazione")
	assert.NotContains(t, payload.Caption, "Categoria")
	assert.NotContains(t, payload.Caption, "Storico prezzi")
	assert.NotContains(t, payload.Caption, "#")
	assert.Empty(t, payload.ImageURL)
}

func TestBuildWeeklyReport(t *testing.T) {
	topScore := []domain.WeeklyMetricsEntry{
		{Title: "Oferta A", Score: 4.5, DiscountPct: 20},
		{Title: "Oferta B", Score: 4.0, DiscountPct: 35},
	}
	topDiscount := []domain.WeeklyMetricsEntry{
		{Title: "Oferta B", Score: 4.0, DiscountPct: 35},
	}

	report := BuildWeeklyReport(topScore, topDiscount)

	assert.Contains(t, report, "Report settimanale BrislyDeals")
	assert.Contains(t, report, "Top 5 per Punteggio")
	assert.Contains(t, report, "Top 5 per Risparmio")
	assert.Contains(t, report, "1) Oferta A — ⭐4.5/5 — 💸 20%")
	assert.Contains(t, report, "2) Oferta B — ⭐4.0/5 — 💸 35%")
}

func TestBuildWeeklyReport_SemDados(t *testing.T) {
	report := BuildWeeklyReport(nil, nil)

	assert.Equal(t, 2, strings.Count(report, "Nessun dato disponibile questa settimana."))
}
