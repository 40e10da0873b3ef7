// Package keepa adapta a API Keepa ao contrato de enriquecimento do pipeline
package keepa

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/infrastructure/integrator/keepa/keepaclient"
	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
)

type KeepaIntegrator interface {
	// Lookup busca as métricas de histórico de preço de um ASIN.
	// Resultado nil sem erro significa ausência de dados (equivalente a
	// falha para o chamador: o candidato segue sem enriquecimento)
	Lookup(ctx context.Context, asin string) (*domain.Enrichment, error)
}

type Service struct {
	cfg    *config.Config
	client keepaclient.Client
}

func New(cfg *config.Config, client keepaclient.Client) KeepaIntegrator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) Lookup(ctx context.Context, asin string) (*domain.Enrichment, error) {
	if !s.cfg.Keepa.Enabled {
		return nil, nil
	}

	product, err := s.client.Product(ctx, asin)
	if err != nil {
		return nil, err
	}

	enrichment := keepaclient.ParseEnrichment(product)
	if enrichment == nil {
		logrus.WithField("asin", asin).Debug("Keepa sem dados aproveitáveis para o ASIN")
		return nil, nil
	}

	return enrichment, nil
}
