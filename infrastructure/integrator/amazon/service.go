// Package amazon adapta a PA-API ao modelo de candidatos do pipeline
package amazon

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/amazon/amazonclient"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
)

type AmazonIntegrator interface {
	Source() domain.Source
	Search(ctx context.Context, keyword string, limit int) ([]domain.Candidate, error)
}

type Service struct {
	cfg    *config.Config
	client amazonclient.Client
}

func New(cfg *config.Config, client amazonclient.Client) AmazonIntegrator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) Source() domain.Source {
	return domain.SourceAmazon
}

// Search busca candidatos para a palavra-chave e aplica a validação de
// fronteira: itens sem id/url/preço são descartados aqui e nunca seguem
// adiante. O pré-filtro de estrelas/desconto rejeita apenas valores
// conhecidos abaixo do limiar; valores desconhecidos passam e a decisão
// fica para o estágio de score/ranking
func (s *Service) Search(ctx context.Context, keyword string, limit int) ([]domain.Candidate, error) {
	response, err := s.client.SearchItems(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}

	if response.SearchResult == nil {
		return nil, nil
	}

	candidates := make([]domain.Candidate, 0, len(response.SearchResult.Items))

	for i := range response.SearchResult.Items {
		item := &response.SearchResult.Items[i]

		priceNow := item.PriceNow()
		if item.ASIN == "" || item.DetailPageURL == "" || priceNow == nil {
			logrus.WithFields(logrus.Fields{
				"keyword": keyword,
				"asin":    item.ASIN,
			}).Debug("Item descartado na fronteira: faltam campos obrigatórios")
			continue
		}

		stars := item.Stars()
		if stars != nil && *stars < s.cfg.Selection.MinStars {
			logrus.WithFields(logrus.Fields{
				"asin":  item.ASIN,
				"stars": *stars,
			}).Debug("Item descartado no pré-filtro de estrelas")
			continue
		}

		candidate := domain.Candidate{
			Source:   domain.SourceAmazon,
			ID:       item.ASIN,
			Title:    item.Title(),
			URL:      item.DetailPageURL,
			Image:    item.ImageURL(),
			PriceNow: *priceNow,
			PriceOld: item.PriceOld(),
			Stars:    stars,
			Reviews:  item.ReviewCount(),
			Rank:     item.Rank(),
			Category: item.CategoryID(),
			Brand:    item.Brand(),
			Features: item.Features(),
		}

		// Desconto conhecido e abaixo do mínimo rejeita; sem preço antigo o
		// candidato passa (inclusão conservadora, decisão adiada)
		if candidate.PriceOld != nil {
			candidate.DiscountPct = domain.DiscountPercent(*candidate.PriceOld, candidate.PriceNow)
			if candidate.DiscountPct < s.cfg.Selection.MinDiscount {
				logrus.WithFields(logrus.Fields{
					"asin":     item.ASIN,
					"discount": candidate.DiscountPct,
				}).Debug("Item descartado no pré-filtro de desconto")
				continue
			}
		}

		candidates = append(candidates, candidate)
	}

	logrus.WithFields(logrus.Fields{
		"keyword": keyword,
		"total":   len(candidates),
	}).Info("Busca Amazon concluída")

	return candidates, nil
}
