package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brislydeals/deals-pipeline/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate *domain.Candidate
		expected  float64
	}{
		{
			name: "Oferta forte com todos os sinais - score alto",
			candidate: &domain.Candidate{
				Source:      domain.SourceAmazon,
				ID:          "B0TESTE01",
				PriceNow:    80.0,
				PriceOld:    floatPtr(100.0),
				DiscountPct: 20,
				Stars:       floatPtr(4.8),
				Reviews:     5000,
				Enrichment: &domain.Enrichment{
					AvgPrice90d:      floatPtr(95.0),
					IsPrime:          true,
					BuyboxIsPlatform: true,
				},
			},
			// desconto 0.5*0.35 + rating 1.0*0.25 + tendência 1.0*0.20 +
			// rank neutro 0.5*0.10 + bônus 0.10 + 0.10 = 0.875 -> 4.5
			expected: 4.5,
		},
		{
			name: "Sem nenhum sinal além do preço - pontos neutros",
			candidate: &domain.Candidate{
				Source:   domain.SourceAmazon,
				ID:       "B0TESTE02",
				PriceNow: 50.0,
			},
			// desconto 0 + rating padrão 4.0 -> 0.5*0.25 + tendência 0.5*0.20 +
			// rank 0.5*0.10 = 0.275 -> 1.5
			expected: 1.5,
		},
		{
			name: "Top 5 por cento da categoria satura o sub-score de rank",
			candidate: &domain.Candidate{
				Source:      domain.SourceAmazon,
				ID:          "B0TESTE03",
				PriceNow:    50.0,
				DiscountPct: 40,
				Stars:       floatPtr(4.5),
				Enrichment: &domain.Enrichment{
					SalesRank:    intPtr(5),
					CategorySize: intPtr(100),
				},
			},
			// desconto 1.0*0.35 + rating 1.0*0.25 + tendência 0.5*0.20 +
			// rank 1.0*0.10 = 0.80 -> 4.0
			expected: 4.0,
		},
		{
			name: "Pior que a mediana zera o sub-score de rank",
			candidate: &domain.Candidate{
				Source:      domain.SourceAmazon,
				ID:          "B0TESTE04",
				PriceNow:    50.0,
				DiscountPct: 40,
				Stars:       floatPtr(4.5),
				Enrichment: &domain.Enrichment{
					SalesRank:    intPtr(50),
					CategorySize: intPtr(100),
				},
			},
			// desconto 1.0*0.35 + rating 1.0*0.25 + tendência 0.5*0.20 = 0.70 -> 3.5
			expected: 3.5,
		},
		{
			name: "Preço bem acima da média de 90 dias zera a tendência",
			candidate: &domain.Candidate{
				Source:      domain.SourceAmazon,
				ID:          "B0TESTE05",
				PriceNow:    120.0,
				DiscountPct: 40,
				Stars:       floatPtr(4.5),
				Enrichment: &domain.Enrichment{
					AvgPrice90d: floatPtr(90.0),
				},
			},
			// desconto 1.0*0.35 + rating 1.0*0.25 + tendência 0 + rank 0.5*0.10 = 0.65 -> 3.5
			expected: 3.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.candidate)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScore_Deterministico(t *testing.T) {
	c := &domain.Candidate{
		Source:      domain.SourceAmazon,
		ID:          "B0TESTE10",
		PriceNow:    33.0,
		DiscountPct: 27,
		Stars:       floatPtr(4.2),
		Reviews:     321,
	}

	first := Score(c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(c))
	}
}

func TestScore_PassosDeMeioPonto(t *testing.T) {
	// O score final sempre cai em múltiplos de 0.5 dentro de [0, 5]
	candidates := []*domain.Candidate{
		{PriceNow: 10.0, DiscountPct: 7, Stars: floatPtr(3.9), Reviews: 12},
		{PriceNow: 199.0, DiscountPct: 33, Stars: floatPtr(4.6), Reviews: 987},
		{PriceNow: 55.5, DiscountPct: 51, Reviews: 44},
	}

	for _, c := range candidates {
		got := Score(c)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 5.0)
		assert.Zero(t, math.Mod(got*2, 1.0))
	}
}

func TestNormalizeDiscount(t *testing.T) {
	assert.Equal(t, 0.0, normalizeDiscount(0))
	assert.Equal(t, 0.5, normalizeDiscount(20))
	assert.Equal(t, 1.0, normalizeDiscount(40))
	assert.Equal(t, 1.0, normalizeDiscount(80))
}

func TestNormalizeRating(t *testing.T) {
	assert.Equal(t, 0.0, normalizeRating(3.0))
	assert.Equal(t, 0.0, normalizeRating(3.5))
	assert.InDelta(t, 0.5, normalizeRating(4.0), 1e-9)
	assert.Equal(t, 1.0, normalizeRating(4.5))
	assert.Equal(t, 1.0, normalizeRating(5.0))
}

func TestTrendScore(t *testing.T) {
	// Sem média de 90 dias, ponto neutro
	assert.Equal(t, 0.5, trendScore(100.0, nil))
	assert.Equal(t, 0.5, trendScore(0.0, floatPtr(90.0)))

	// Na média ou abaixo satura
	assert.Equal(t, 1.0, trendScore(90.0, floatPtr(90.0)))
	assert.Equal(t, 1.0, trendScore(70.0, floatPtr(90.0)))

	// 20 por cento acima da média zera
	assert.InDelta(t, 0.0, trendScore(108.0, floatPtr(90.0)), 1e-9)

	// 10 por cento acima fica no meio da rampa
	assert.InDelta(t, 0.5, trendScore(99.0, floatPtr(90.0)), 1e-9)
}

func TestReviewsBonus(t *testing.T) {
	assert.Equal(t, 0.0, reviewsBonus(0))
	assert.Equal(t, 0.0, reviewsBonus(-5))

	// Satura em 1000 avaliações
	assert.InDelta(t, 1.0, reviewsBonus(1000), 1e-2)
	assert.Equal(t, 1.0, reviewsBonus(100000))
}
