// Package aliexpress adapta o feed de afiliados ao modelo de candidatos.
// Desabilitado por configuração, a busca retorna vazio sem tocar a rede
package aliexpress

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/aliexpress/aliexpressclient"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
)

type AliExpressIntegrator interface {
	Source() domain.Source
	Search(ctx context.Context, keyword string, limit int) ([]domain.Candidate, error)
}

type Service struct {
	cfg    *config.Config
	client aliexpressclient.Client
}

func New(cfg *config.Config, client aliexpressclient.Client) AliExpressIntegrator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) Source() domain.Source {
	return domain.SourceAliExpress
}

func (s *Service) Search(ctx context.Context, keyword string, limit int) ([]domain.Candidate, error) {
	if !s.cfg.AliExpress.Enabled {
		return nil, nil
	}

	products, err := s.client.QueryProducts(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(products))

	for _, p := range products {
		priceNow, err := aliexpressclient.ParsePrice(p.TargetSalePrice)
		if err != nil || priceNow <= 0 || p.ProductID == 0 || p.ProductDetailURL == "" {
			logrus.WithField("product_id", p.ProductID).
				Debug("Produto AliExpress descartado na fronteira: faltam campos obrigatórios")
			continue
		}

		candidate := domain.Candidate{
			Source:   domain.SourceAliExpress,
			ID:       strconv.FormatInt(p.ProductID, 10),
			Title:    p.ProductTitle,
			URL:      p.ProductDetailURL,
			Image:    p.ProductMainImageURL,
			PriceNow: priceNow,
			Reviews:  p.LastestVolume, // volume recente faz as vezes de reviews
			Category: p.FirstLevelCategory,
		}

		if priceOld, err := aliexpressclient.ParsePrice(p.TargetOriginalPrice); err == nil && priceOld > priceNow {
			candidate.PriceOld = &priceOld
			candidate.DiscountPct = domain.DiscountPercent(priceOld, priceNow)
			if candidate.DiscountPct < s.cfg.Selection.MinDiscount {
				continue
			}
		}

		candidates = append(candidates, candidate)
	}

	logrus.WithFields(logrus.Fields{
		"keyword": keyword,
		"total":   len(candidates),
	}).Info("Busca AliExpress concluída")

	return candidates, nil
}
