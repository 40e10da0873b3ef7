// Package domain contém as estruturas brutas da resposta da PA-API.
// Os acessores extraem campos em modo melhor-esforço: qualquer elo ausente
// na cadeia de ponteiros resulta em valor ausente, nunca em pânico
package domain

type SearchItemsResponse struct {
	SearchResult *SearchResult `json:"SearchResult,omitempty"`
	Errors       []APIError    `json:"Errors,omitempty"`
}

type APIError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

type SearchResult struct {
	TotalResultCount int    `json:"TotalResultCount"`
	Items            []Item `json:"Items"`
}

type Item struct {
	ASIN            string          `json:"ASIN"`
	DetailPageURL   string          `json:"DetailPageURL"`
	Images          *Images         `json:"Images,omitempty"`
	ItemInfo        *ItemInfo       `json:"ItemInfo,omitempty"`
	Offers          *Offers         `json:"Offers,omitempty"`
	CustomerReviews *Reviews        `json:"CustomerReviews,omitempty"`
	BrowseNodeInfo  *BrowseNodeInfo `json:"BrowseNodeInfo,omitempty"`
}

type Images struct {
	Primary *ImageSet `json:"Primary,omitempty"`
}

type ImageSet struct {
	Large *Image `json:"Large,omitempty"`
}

type Image struct {
	URL string `json:"URL"`
}

type ItemInfo struct {
	Title      *DisplayValue     `json:"Title,omitempty"`
	Features   *DisplayValueList `json:"Features,omitempty"`
	ByLineInfo *ByLineInfo       `json:"ByLineInfo,omitempty"`
}

type DisplayValue struct {
	Value string `json:"DisplayValue"`
}

type DisplayValueList struct {
	Values []string `json:"DisplayValues"`
}

type ByLineInfo struct {
	Brand *DisplayValue `json:"Brand,omitempty"`
}

type Offers struct {
	Listings []Listing `json:"Listings,omitempty"`
}

type Listing struct {
	Price       *Price `json:"Price,omitempty"`
	SavingBasis *Price `json:"SavingBasis,omitempty"`
}

type Price struct {
	Amount   float64 `json:"Amount"`
	Currency string  `json:"Currency"`
}

type Reviews struct {
	StarRating *float64 `json:"StarRating,omitempty"`
	Count      int      `json:"Count"`
}

type BrowseNodeInfo struct {
	WebsiteSalesRank *WebsiteSalesRank `json:"WebsiteSalesRank,omitempty"`
}

type WebsiteSalesRank struct {
	SalesRank *SalesRank `json:"SalesRank,omitempty"`
}

type SalesRank struct {
	Rank              int    `json:"Rank"`
	ProductCategoryID string `json:"ProductCategoryId"`
}

// Title retorna o título do item, se presente
func (i *Item) Title() string {
	if i.ItemInfo == nil || i.ItemInfo.Title == nil {
		return ""
	}
	return i.ItemInfo.Title.Value
}

// ImageURL retorna a URL da imagem principal, se presente
func (i *Item) ImageURL() string {
	if i.Images == nil || i.Images.Primary == nil || i.Images.Primary.Large == nil {
		return ""
	}
	return i.Images.Primary.Large.URL
}

func (i *Item) listing() *Listing {
	if i.Offers == nil || len(i.Offers.Listings) == 0 {
		return nil
	}
	return &i.Offers.Listings[0]
}

// PriceNow retorna o preço atual da primeira oferta, se presente
func (i *Item) PriceNow() *float64 {
	l := i.listing()
	if l == nil || l.Price == nil || l.Price.Amount <= 0 {
		return nil
	}
	amount := l.Price.Amount
	return &amount
}

// PriceOld retorna o preço de referência (saving basis), se presente
func (i *Item) PriceOld() *float64 {
	l := i.listing()
	if l == nil || l.SavingBasis == nil || l.SavingBasis.Amount <= 0 {
		return nil
	}
	amount := l.SavingBasis.Amount
	return &amount
}

// Stars retorna a avaliação em estrelas, se presente
func (i *Item) Stars() *float64 {
	if i.CustomerReviews == nil {
		return nil
	}
	return i.CustomerReviews.StarRating
}

// ReviewCount retorna a quantidade de avaliações (0 quando ausente)
func (i *Item) ReviewCount() int {
	if i.CustomerReviews == nil {
		return 0
	}
	return i.CustomerReviews.Count
}

// Rank retorna o ranking de vendas no site, se presente
func (i *Item) Rank() *int {
	if i.BrowseNodeInfo == nil || i.BrowseNodeInfo.WebsiteSalesRank == nil ||
		i.BrowseNodeInfo.WebsiteSalesRank.SalesRank == nil {
		return nil
	}
	rank := i.BrowseNodeInfo.WebsiteSalesRank.SalesRank.Rank
	if rank <= 0 {
		return nil
	}
	return &rank
}

// CategoryID retorna o identificador da categoria do ranking, se presente
func (i *Item) CategoryID() string {
	if i.BrowseNodeInfo == nil || i.BrowseNodeInfo.WebsiteSalesRank == nil ||
		i.BrowseNodeInfo.WebsiteSalesRank.SalesRank == nil {
		return ""
	}
	return i.BrowseNodeInfo.WebsiteSalesRank.SalesRank.ProductCategoryID
}

// Brand retorna a marca do item, se presente
func (i *Item) Brand() string {
	if i.ItemInfo == nil || i.ItemInfo.ByLineInfo == nil || i.ItemInfo.ByLineInfo.Brand == nil {
		return ""
	}
	return i.ItemInfo.ByLineInfo.Brand.Value
}

// Features retorna a lista de características do item
func (i *Item) Features() []string {
	if i.ItemInfo == nil || i.ItemInfo.Features == nil {
		return nil
	}
	return i.ItemInfo.Features.Values
}
