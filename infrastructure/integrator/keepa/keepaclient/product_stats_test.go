package keepaclient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	keepadomain "github.com/brislydeals/deals-pipeline/infrastructure/integrator/keepa/domain"
)

// série de agregados com os índices usados pelo parser preenchidos
func series(amazon, newPrice, sales, rating, reviews float64) []float64 {
	s := make([]float64, 18)
	for i := range s {
		s[i] = -1
	}
	s[keepadomain.CSVTypeAmazon] = amazon
	s[keepadomain.CSVTypeNew] = newPrice
	s[keepadomain.CSVTypeSales] = sales
	s[keepadomain.CSVTypeRating] = rating
	s[keepadomain.CSVTypeCountReviews] = reviews
	return s
}

func TestParseEnrichment_EsquemaCompleto(t *testing.T) {
	p := &keepadomain.Product{
		ASIN: "B0TESTE01",
		Stats: &keepadomain.Stats{
			Current: series(9500, 9800, 120, 46, 1834),
			Avg90:   series(-1, 12000, -1, -1, -1),
			Min:     series(-1, 8900, -1, -1, -1),
			Max:     series(-1, 14900, -1, -1, -1),

			BuyBoxIsAmazon:        true,
			BuyBoxIsPrimeEligible: true,
		},
		CategoryTree: []keepadomain.CategoryNode{
			{CatID: 100, Name: "Elettronica"},
			{CatID: 200, Name: "SSD interni"},
		},
	}

	e := ParseEnrichment(p)

	assert.NotNil(t, e)
	// Preços em centavos convertidos para euros
	assert.Equal(t, 120.0, *e.AvgPrice90d)
	assert.Equal(t, 89.0, *e.MinPrice)
	assert.Equal(t, 149.0, *e.MaxPrice)
	// Avaliação na escala Keepa x10
	assert.Equal(t, 4.6, *e.Rating)
	assert.Equal(t, 1834, *e.ReviewCount)
	assert.Equal(t, 120, *e.SalesRank)
	assert.True(t, e.IsPrime)
	assert.True(t, e.BuyboxIsPlatform)
	// Última folha da árvore de categorias
	assert.Equal(t, "SSD interni", e.CategoryName)
}

func TestParseEnrichment_FallbackParaMediaGeral(t *testing.T) {
	// Esquema legado: avg90 ausente, a média geral responde
	p := &keepadomain.Product{
		Stats: &keepadomain.Stats{
			Avg: series(-1, 10000, -1, -1, -1),
		},
	}

	e := ParseEnrichment(p)

	assert.NotNil(t, e)
	assert.Equal(t, 100.0, *e.AvgPrice90d)
}

func TestParseEnrichment_PrecoNewComFallbackAmazon(t *testing.T) {
	// Sem série NEW, o preço AMAZON responde
	p := &keepadomain.Product{
		Stats: &keepadomain.Stats{
			Avg90: series(8800, -1, -1, -1, -1),
		},
	}

	e := ParseEnrichment(p)

	assert.NotNil(t, e)
	assert.Equal(t, 88.0, *e.AvgPrice90d)
}

func TestParseEnrichment_SemDadosAproveitaveis(t *testing.T) {
	assert.Nil(t, ParseEnrichment(nil))
	assert.Nil(t, ParseEnrichment(&keepadomain.Product{}))

	// Stats presente mas todas as séries vazias ou ausentes
	assert.Nil(t, ParseEnrichment(&keepadomain.Product{
		Stats: &keepadomain.Stats{},
	}))
	assert.Nil(t, ParseEnrichment(&keepadomain.Product{
		Stats: &keepadomain.Stats{
			Avg90: series(-1, -1, -1, -1, -1),
		},
	}))
}

func TestParseEnrichment_SeriesCurtasNaoEstouram(t *testing.T) {
	// Séries mais curtas que os índices esperados são toleradas
	p := &keepadomain.Product{
		Stats: &keepadomain.Stats{
			Current: []float64{-1, 4200},
			Avg90:   []float64{-1, 4200},
		},
	}

	e := ParseEnrichment(p)

	assert.NotNil(t, e)
	assert.Equal(t, 42.0, *e.AvgPrice90d)
	assert.Nil(t, e.Rating)
	assert.Nil(t, e.ReviewCount)
	assert.Nil(t, e.SalesRank)
}
