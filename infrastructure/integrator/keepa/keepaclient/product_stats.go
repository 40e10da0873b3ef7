package keepaclient

import (
	keepadomain "github.com/brislydeals/deals-pipeline/infrastructure/integrator/keepa/domain"
	"github.com/brislydeals/deals-pipeline/internal/domain"
)

// ParseEnrichment é a única costura entre o esquema da Keepa e o modelo do
// pipeline. O esquema autoritativo é o de agregados por série (stats.avg90
// etc.); quando a série de 90 dias vem vazia cai para a média geral, como o
// esquema antigo fazia. Mudanças de esquema upstream devem ser absorvidas
// aqui, nunca por branches espalhados no pipeline.
// Retorna nil quando a resposta não contém nenhum dado aproveitável
func ParseEnrichment(p *keepadomain.Product) *domain.Enrichment {
	if p == nil || p.Stats == nil {
		return nil
	}

	stats := p.Stats

	avg90 := seriesPrice(stats.Avg90)
	if avg90 == nil {
		// Esquema legado: sem avg90, usa a média geral
		avg90 = seriesPrice(stats.Avg)
	}

	enrichment := &domain.Enrichment{
		AvgPrice90d:      avg90,
		MinPrice:         seriesPrice(stats.Min),
		MaxPrice:         seriesPrice(stats.Max),
		IsPrime:          stats.BuyBoxIsPrimeEligible || stats.BuyBoxIsPrimeExclusive,
		BuyboxIsPlatform: stats.BuyBoxIsAmazon,
		Rating:           seriesRating(stats.Current),
		ReviewCount:      seriesCount(stats.Current, keepadomain.CSVTypeCountReviews),
		SalesRank:        seriesCount(stats.Current, keepadomain.CSVTypeSales),
	}

	if len(p.CategoryTree) > 0 {
		enrichment.CategoryName = p.CategoryTree[len(p.CategoryTree)-1].Name
	}

	if enrichment.AvgPrice90d == nil && enrichment.MinPrice == nil &&
		enrichment.MaxPrice == nil && enrichment.SalesRank == nil {
		return nil
	}

	return enrichment
}

// seriesPrice extrai o preço NEW (ou AMAZON como fallback) de uma série de
// agregados. Valores vêm em centavos; -1 ou 0 significam ausência
func seriesPrice(series []float64) *float64 {
	for _, idx := range []int{keepadomain.CSVTypeNew, keepadomain.CSVTypeAmazon} {
		if idx < len(series) && series[idx] > 0 {
			price := series[idx] / 100.0
			return &price
		}
	}
	return nil
}

// seriesRating extrai a avaliação (escala Keepa x10) da série atual
func seriesRating(current []float64) *float64 {
	idx := keepadomain.CSVTypeRating
	if idx < len(current) && current[idx] > 0 {
		rating := current[idx] / 10.0
		return &rating
	}
	return nil
}

// seriesCount extrai um contador inteiro (reviews, sales rank) da série
func seriesCount(current []float64, idx int) *int {
	if idx < len(current) && current[idx] > 0 {
		count := int(current[idx])
		return &count
	}
	return nil
}
