package collecting

import (
	"context"

	"github.com/brislydeals/deals-pipeline/internal/domain"
)

// CatalogIntegrator é o contrato comum dos provedores de catálogo.
// Erros do provedor são tratados como zero resultados pelo coletor
type CatalogIntegrator interface {
	Source() domain.Source
	Search(ctx context.Context, keyword string, limit int) ([]domain.Candidate, error)
}
