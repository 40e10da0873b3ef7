// Package domain contém as estruturas brutas da resposta da API Keepa.
// O esquema upstream é instável; toda a interpretação fica isolada no
// parser do keepaclient, nunca espalhada pelo pipeline
package domain

type ProductResponse struct {
	Products         []Product `json:"products"`
	TokensLeft       int       `json:"tokensLeft"`
	RefillIn         int       `json:"refillIn"`
	TokensConsumed   int       `json:"tokensConsumed"`
	ProcessingTimeMS int       `json:"processingTimeInMs"`
}

type Product struct {
	ASIN         string           `json:"asin"`
	Title        string           `json:"title"`
	Stats        *Stats           `json:"stats,omitempty"`
	CategoryTree []CategoryNode   `json:"categoryTree,omitempty"`
	SalesRanks   map[string][]int `json:"salesRanks,omitempty"`
}

// Stats carrega os agregados de preço por tipo de série (índices CSVType).
// Valores monetários vêm em centavos; -1 indica ausência
type Stats struct {
	Current []float64 `json:"current"`
	Avg     []float64 `json:"avg"`
	Avg90   []float64 `json:"avg90"`
	Min     []float64 `json:"min"`
	Max     []float64 `json:"max"`

	BuyBoxIsAmazon         bool `json:"buyBoxIsAmazon"`
	BuyBoxIsPrimeEligible  bool `json:"buyBoxIsPrimeEligible"`
	BuyBoxIsPrimeExclusive bool `json:"buyBoxIsPrimeExclusive"`
}

type CategoryNode struct {
	CatID int64  `json:"catId"`
	Name  string `json:"name"`
}

// Índices das séries de preço da Keepa usados pelo parser
const (
	CSVTypeAmazon       = 0
	CSVTypeNew          = 1
	CSVTypeSales        = 3
	CSVTypeListPrice    = 4
	CSVTypeRating       = 16
	CSVTypeCountReviews = 17
)
