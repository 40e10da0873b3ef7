// Package scoring calcula o score composto de desejabilidade de uma oferta.
// A função é pura e determinística; os pontos de saturação e a regra de
// arredondamento em meios pontos garantem reprodutibilidade entre versões —
// não altere sem versionar o score
package scoring

import (
	"math"

	"github.com/brislydeals/deals-pipeline/internal/domain"
)

// Pesos dos sub-scores. A soma dos pesos base mais os tetos dos dois
// bônus é 1.0
const (
	WeightDiscount    = 0.35
	WeightRating      = 0.25
	WeightTrend       = 0.20
	WeightRank        = 0.10
	WeightPrimeBuybox = 0.10 // bônus fixo: Prime + buybox da plataforma
	WeightReviews     = 0.10 // teto do bônus logarítmico de popularidade
)

func clamp01(x float64) float64 {
	return math.Max(0.0, math.Min(1.0, x))
}

// normalizeDiscount satura em 40% de desconto
func normalizeDiscount(pct int) float64 {
	return clamp01(float64(pct) / 40.0)
}

// normalizeRating zera abaixo de 3.5 estrelas e satura em 4.5
func normalizeRating(stars float64) float64 {
	return clamp01((stars - 3.5) / 1.0)
}

// trendScore compara o preço atual com a média de 90 dias: 20% acima da
// média zera, na média ou abaixo satura. Sem média, ponto neutro 0.5
func trendScore(current float64, avg90 *float64) float64 {
	if current <= 0 || avg90 == nil || *avg90 <= 0 {
		return 0.5
	}
	delta := (current - *avg90) / *avg90
	return clamp01(1.0 - (delta / 0.20))
}

// rankPercentileScore mapeia o percentil dentro da categoria: top 5% vale
// 1.0, pior que a mediana vale 0.0, linear no intervalo. Sem ranking ou
// tamanho da categoria, ponto neutro 0.5
func rankPercentileScore(rank, totalInCat *int) float64 {
	if rank == nil || *rank <= 0 || totalInCat == nil || *totalInCat <= 0 {
		return 0.5
	}
	percentile := float64(*rank) / float64(*totalInCat)
	if percentile <= 0.05 {
		return 1.0
	}
	if percentile >= 0.50 {
		return 0.0
	}
	return clamp01((0.50 - percentile) / 0.45)
}

// reviewsBonus cresce com log10 do número de avaliações, saturando em 1000
func reviewsBonus(nReviews int) float64 {
	if nReviews <= 0 {
		return 0.0
	}
	return clamp01(math.Log10(float64(nReviews)+1) / 3.0)
}

// Score computa o score final em [0, 5] com passos de 0.5
func Score(c *domain.Candidate) float64 {
	stars := effectiveStars(c)
	rank, totalInCat := effectiveRank(c)
	reviews := effectiveReviews(c)

	var avg90 *float64
	isPrime := false
	buyboxPlatform := false
	if c.Enrichment != nil {
		avg90 = c.Enrichment.AvgPrice90d
		isPrime = c.Enrichment.IsPrime
		buyboxPlatform = c.Enrichment.BuyboxIsPlatform
	}

	base := WeightDiscount*normalizeDiscount(c.DiscountPct) +
		WeightRating*normalizeRating(stars) +
		WeightTrend*trendScore(c.PriceNow, avg90) +
		WeightRank*rankPercentileScore(rank, totalInCat)

	bonus := 0.0
	if isPrime && buyboxPlatform {
		bonus += WeightPrimeBuybox
	}
	bonus += math.Min(WeightReviews, reviewsBonus(reviews))

	score01 := clamp01(base + bonus)
	return math.Round(score01*5*2) / 2.0
}

// effectiveStars usa as estrelas do catálogo, depois a avaliação do
// enriquecimento, por fim a nota neutra
func effectiveStars(c *domain.Candidate) float64 {
	if c.Stars != nil {
		return *c.Stars
	}
	if c.Enrichment != nil && c.Enrichment.Rating != nil {
		return *c.Enrichment.Rating
	}
	return domain.DefaultStars
}

func effectiveRank(c *domain.Candidate) (*int, *int) {
	rank := c.Rank
	var totalInCat *int
	if c.Enrichment != nil {
		if rank == nil {
			rank = c.Enrichment.SalesRank
		}
		totalInCat = c.Enrichment.CategorySize
	}
	return rank, totalInCat
}

func effectiveReviews(c *domain.Candidate) int {
	if c.Reviews > 0 {
		return c.Reviews
	}
	if c.Enrichment != nil && c.Enrichment.ReviewCount != nil {
		return *c.Enrichment.ReviewCount
	}
	return 0
}
