// Package keepaclient implementa o cliente HTTP da API Keepa
package keepaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	keepadomain "github.com/brislydeals/deals-pipeline/infrastructure/integrator/keepa/domain"
	"github.com/brislydeals/deals-pipeline/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	baseURL       = "https://api.keepa.com"
	clientTimeout = 20 * time.Second
)

// Códigos numéricos de marketplace da Keepa
var domainCodes = map[string]string{
	"US": "1",
	"UK": "2",
	"DE": "3",
	"FR": "4",
	"CA": "6",
	"IT": "8",
	"ES": "9",
}

type Client interface {
	Product(ctx context.Context, asin string) (*keepadomain.Product, error)
}

type KeepaClient struct {
	httpClient *http.Client
	cfg        config.Keepa
}

func NewClient(cfg *config.Config) Client {
	return &KeepaClient{
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
		cfg: cfg.Keepa,
	}
}

// Product consulta os agregados de 90 dias de um ASIN. Resposta sem
// produtos não é erro: o chamador trata ausência e falha da mesma forma
func (c *KeepaClient) Product(ctx context.Context, asin string) (*keepadomain.Product, error) {
	params := url.Values{}
	params.Set("key", c.cfg.APIKey)
	params.Set("domain", c.domainCode())
	params.Set("asin", asin)
	params.Set("stats", "90")
	params.Set("history", "0")
	params.Set("rating", "1")
	params.Set("buybox", "1")

	endpoint := fmt.Sprintf("%s/product?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("Keepa retornou status %d: %s", resp.StatusCode, string(body))
	}

	var response keepadomain.ProductResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON da Keepa")
	}

	if len(response.Products) == 0 {
		return nil, nil
	}

	return &response.Products[0], nil
}

func (c *KeepaClient) domainCode() string {
	if code, ok := domainCodes[c.cfg.Domain]; ok {
		return code
	}
	return domainCodes["IT"]
}
