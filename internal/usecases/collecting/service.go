// Package collecting busca candidatos nos catálogos por palavra-chave e
// atribui as tags de roteamento
package collecting

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brislydeals/deals-pipeline/internal/config"
	"github.com/brislydeals/deals-pipeline/internal/domain"
)

// Mapeamento estático palavra-chave -> tags, casado pelo primeiro token.
// Palavras-chave sem mapeamento não recebem tags
var keywordTags = map[string]string{
	"tv":      "Hisense SmartTV OLED 144Hz",
	"cuffie":  "Cuffie Audio",
	"robot":   "RobotAspirapolvere",
	"monitor": "MonitorGaming",
	"ssd":     "SSDnvme",
}

type CollectorService interface {
	// Gather consulta os provedores para cada palavra-chave configurada, na
	// ordem dada. Erro em uma palavra-chave contribui zero candidatos e não
	// interrompe as demais. Lista vazia de palavras-chave retorna vazio
	Gather(ctx context.Context) []domain.Candidate
}

type Service struct {
	keywords     []string
	limit        int
	maxParallel  int
	requestDelay time.Duration
	integrators  []CatalogIntegrator
}

func NewService(cfg *config.Config, integrators ...CatalogIntegrator) CollectorService {
	maxParallel := cfg.Collector.MaxConcurrentJobs
	if maxParallel < 1 {
		maxParallel = 1
	}

	return &Service{
		keywords:     cfg.Collector.KeywordList(),
		limit:        cfg.Collector.MaxItemsPerKeyword,
		maxParallel:  maxParallel,
		requestDelay: time.Duration(cfg.Collector.RequestDelaySeconds) * time.Second,
		integrators:  integrators,
	}
}

func (s *Service) Gather(ctx context.Context) []domain.Candidate {
	if len(s.keywords) == 0 {
		return nil
	}

	// Resultados indexados pela posição da palavra-chave para preservar a
	// ordem de entrada mesmo com buscas concorrentes
	results := make([][]domain.Candidate, len(s.keywords))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, s.maxParallel)

	for i, keyword := range s.keywords {
		wg.Add(1)

		go func(slot int, kw string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[slot] = s.gatherKeyword(ctx, kw)
		}(i, keyword)
	}

	wg.Wait()

	var all []domain.Candidate
	for _, batch := range results {
		all = append(all, batch...)
	}

	logrus.WithFields(logrus.Fields{
		"keywords":   len(s.keywords),
		"candidates": len(all),
	}).Info("Coleta concluída")

	return all
}

func (s *Service) gatherKeyword(ctx context.Context, keyword string) []domain.Candidate {
	tags := tagsForKeyword(keyword)

	var out []domain.Candidate
	for idx, integrator := range s.integrators {
		if idx > 0 && s.requestDelay > 0 {
			// Intervalo fixo entre chamadas para não estourar o rate limit
			// dos provedores
			time.Sleep(s.requestDelay)
		}

		candidates, err := integrator.Search(ctx, keyword, s.limit)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"keyword": keyword,
				"source":  integrator.Source(),
			}).Warn("Falha na busca; palavra-chave contribui zero candidatos para a fonte")
			continue
		}

		for i := range candidates {
			candidates[i].Tags = tags
		}
		out = append(out, candidates...)
	}

	return out
}

// tagsForKeyword resolve as tags pelo primeiro token da palavra-chave
func tagsForKeyword(keyword string) []string {
	fields := strings.Fields(keyword)
	if len(fields) == 0 {
		return nil
	}

	mapped, ok := keywordTags[strings.ToLower(fields[0])]
	if !ok {
		return nil
	}

	return strings.Fields(mapped)
}
