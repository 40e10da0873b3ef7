// Package formatting monta os payloads HTML de publicação. Montagem
// puramente mecânica a partir dos campos do candidato
package formatting

import (
	"fmt"
	"strings"

	"github.com/brislydeals/deals-pipeline/internal/domain"
)

// BuildPayload monta a legenda HTML e o payload autocontido de um candidato
// ranqueado. O tag de afiliado é acrescentado a links Amazon que não o têm
func BuildPayload(c *domain.Candidate, partnerTag string) domain.Payload {
	link := affiliateLink(c, partnerTag)

	var parts []string

	parts = append(parts, fmt.Sprintf("<b>%s %s</b>", sourceHeader(c.Source), c.Title))
	parts = append(parts, "")
	parts = append(parts, priceLine(c))
	parts = append(parts, discountLine(c))

	if line := starsLine(c); line != "" {
		parts = append(parts, line)
	}
	if line := categoryLine(c); line != "" {
		parts = append(parts, line)
	}
	if line := shippingLine(c); line != "" {
		parts = append(parts, line)
	}
	if line := historyLine(c); line != "" {
		parts = append(parts, "", line)
	}

	cta := "🔗 Apri su Amazon (App)"
	if c.Source == domain.SourceAliExpress {
		cta = "🔗 ➡️ Guarda su AliExpress, conviene!"
	}
	parts = append(parts, "", fmt.Sprintf(`<a href="%s">%s</a>`, link, cta))

	if tags := hashtags(c.Tags); tags != "" {
		parts = append(parts, "", tags)
	}

	return domain.Payload{
		Caption:  strings.TrimSpace(strings.Join(parts, "\n")),
		ImageURL: c.Image,
		LinkURL:  link,
	}
}

func sourceHeader(source domain.Source) string {
	if source == domain.SourceAliExpress {
		return "🧧 [ALIEXPRESS]"
	}
	return "🟢 [AMAZON]"
}

func priceLine(c *domain.Candidate) string {
	if c.PriceOld != nil {
		return fmt.Sprintf("💰 Prezzo: <b>%.2f€</b> <s>%.2f€</s>", c.PriceNow, *c.PriceOld)
	}
	return fmt.Sprintf("💰 Prezzo: <b>%.2f€</b>", c.PriceNow)
}

func discountLine(c *domain.Candidate) string {
	score := 0.0
	if c.Score != nil {
		score = *c.Score
	}
	return fmt.Sprintf("🎯 Sconto/Risparmio: <b>%d%%</b> • <b>Punteggio BrislyDeals: %.1f/5</b>", c.DiscountPct, score)
}

func starsLine(c *domain.Candidate) string {
	if c.Stars == nil {
		return ""
	}
	return fmt.Sprintf("⭐ Valutazione: %.1f ★ (%d+)", *c.Stars, c.Reviews)
}

func categoryLine(c *domain.Candidate) string {
	name := c.Category
	rank := c.Rank
	if c.Enrichment != nil {
		if c.Enrichment.CategoryName != "" {
			name = c.Enrichment.CategoryName
		}
		if rank == nil {
			rank = c.Enrichment.SalesRank
		}
	}

	if rank == nil || name == "" {
		return ""
	}
	return fmt.Sprintf("🏷️ Categoria: <b>#%d in %s</b>", *rank, name)
}

func shippingLine(c *domain.Candidate) string {
	if c.Source != domain.SourceAmazon || c.Enrichment == nil {
		return ""
	}

	buybox := "Marketplace"
	if c.Enrichment.BuyboxIsPlatform {
		buybox = "Amazon"
	}

	prime := ""
	if c.Enrichment.IsPrime {
		prime = "🚚 <b>Prime</b> • "
	}

	return fmt.Sprintf("%s🏆 Buy Box: %s", prime, buybox)
}

func historyLine(c *domain.Candidate) string {
	if c.Source != domain.SourceAmazon || c.Enrichment == nil {
		return ""
	}

	var bits []string
	if c.Enrichment.MinPrice != nil {
		bits = append(bits, fmt.Sprintf("📉 Min: %.0f€", *c.Enrichment.MinPrice))
	}
	if c.Enrichment.MaxPrice != nil {
		bits = append(bits, fmt.Sprintf("📈 Max: %.0f€", *c.Enrichment.MaxPrice))
	}
	if c.Enrichment.AvgPrice90d != nil {
		bits = append(bits, fmt.Sprintf("📊 Media 90g: %.0f€", *c.Enrichment.AvgPrice90d))
	}

	if len(bits) == 0 {
		return ""
	}
	return "📈 Storico prezzi (Keepa):\n" + strings.Join(bits, " — ")
}

func affiliateLink(c *domain.Candidate, partnerTag string) string {
	link := c.URL
	if c.Source != domain.SourceAmazon || strings.Contains(link, "tag=") {
		return link
	}

	sep := "?"
	if strings.Contains(link, "?") {
		sep = "&"
	}
	return link + sep + "tag=" + partnerTag
}

func hashtags(tags []string) string {
	var out []string
	for _, t := range tags {
		if t != "" {
			out = append(out, "#"+t)
		}
	}
	return strings.Join(out, " ")
}
