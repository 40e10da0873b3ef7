// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "math"

// Source identifica o provedor de catálogo que originou o candidato
type Source string

const (
	SourceAmazon     Source = "amazon"
	SourceAliExpress Source = "aliexpress"
)

// DefaultStars é a avaliação neutra usada quando o provedor não informa estrelas
const DefaultStars = 4.0

// Candidate representa uma oferta candidata à publicação, construída
// incrementalmente ao longo do pipeline (coleta -> enriquecimento -> score)
type Candidate struct {
	Source      Source      `json:"source"`
	ID          string      `json:"id"` // ASIN/SKU único dentro do provedor
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Image       string      `json:"image,omitempty"`
	PriceNow    float64     `json:"price_now"`
	PriceOld    *float64    `json:"price_old,omitempty"`
	DiscountPct int         `json:"discount_pct"`
	Stars       *float64    `json:"stars,omitempty"`
	Reviews     int         `json:"reviews"`
	Rank        *int        `json:"rank,omitempty"`
	Category    string      `json:"category,omitempty"`
	Brand       string      `json:"brand,omitempty"`
	Features    []string    `json:"features,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Enrichment  *Enrichment `json:"enrichment,omitempty"`
	Score       *float64    `json:"score,omitempty"`
}

// Enrichment agrega as métricas de histórico de preço retornadas pelo
// provedor de enriquecimento (somente candidatos Amazon)
type Enrichment struct {
	AvgPrice90d      *float64 `json:"avg_price_90d,omitempty"`
	MinPrice         *float64 `json:"min_price,omitempty"`
	MaxPrice         *float64 `json:"max_price,omitempty"`
	IsPrime          bool     `json:"is_prime"`
	BuyboxIsPlatform bool     `json:"buybox_is_platform"`
	Rating           *float64 `json:"rating,omitempty"`
	ReviewCount      *int     `json:"review_count,omitempty"`
	CategoryName     string   `json:"category_name,omitempty"`
	SalesRank        *int     `json:"sales_rank,omitempty"`
	CategorySize     *int     `json:"category_size,omitempty"`
}

// DiscountPercent calcula o desconto inteiro a partir dos dois preços.
// Retorna 0 quando o preço antigo não define um desconto válido
func DiscountPercent(priceOld, priceNow float64) int {
	if priceOld <= 0 || priceOld <= priceNow {
		return 0
	}
	return int(math.Round((priceOld - priceNow) / priceOld * 100))
}

// StarsOrDefault retorna as estrelas do candidato ou a avaliação neutra
func (c *Candidate) StarsOrDefault() float64 {
	if c.Stars != nil {
		return *c.Stars
	}
	return DefaultStars
}

// Valid indica se o candidato possui os campos obrigatórios para publicação
func (c *Candidate) Valid() bool {
	return c.ID != "" && c.URL != "" && c.PriceNow > 0
}
