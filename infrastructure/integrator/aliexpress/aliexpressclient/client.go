// Package aliexpressclient implementa o cliente do feed de afiliados da
// AliExpress (método aliexpress.affiliate.product.query)
package aliexpressclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/brislydeals/deals-pipeline/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const clientTimeout = 15 * time.Second

type Client interface {
	QueryProducts(ctx context.Context, keyword string, limit int) ([]Product, error)
}

type AliExpressClient struct {
	httpClient *http.Client
	cfg        config.AliExpress
	now        func() time.Time
}

func NewClient(cfg *config.Config) Client {
	return &AliExpressClient{
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
		cfg: cfg.AliExpress,
		now: time.Now,
	}
}

// Product é o registro bruto do feed de afiliados
type Product struct {
	ProductID           int64  `json:"product_id"`
	ProductTitle        string `json:"product_title"`
	ProductDetailURL    string `json:"product_detail_url"`
	ProductMainImageURL string `json:"product_main_image_url"`
	TargetSalePrice     string `json:"target_sale_price"`
	TargetOriginalPrice string `json:"target_original_price"`
	EvaluateRate        string `json:"evaluate_rate"` // ex: "96.5%"
	LastestVolume       int    `json:"lastest_volume"`
	FirstLevelCategory  string `json:"first_level_category_name"`
}

type queryResponse struct {
	Response struct {
		RespResult struct {
			Result struct {
				Products struct {
					Product []Product `json:"product"`
				} `json:"products"`
			} `json:"result"`
		} `json:"resp_result"`
	} `json:"aliexpress_affiliate_product_query_response"`
}

func (c *AliExpressClient) QueryProducts(ctx context.Context, keyword string, limit int) ([]Product, error) {
	params := url.Values{}
	params.Set("method", "aliexpress.affiliate.product.query")
	params.Set("app_key", c.cfg.AppKey)
	params.Set("sign_method", "sha256")
	params.Set("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	params.Set("keywords", keyword)
	params.Set("page_size", strconv.Itoa(limit))
	params.Set("target_currency", "EUR")
	params.Set("target_language", "IT")
	params.Set("sign", c.sign(params))

	endpoint := c.cfg.FeedURL + "?" + params.Encode()

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
		return nil, errors.Errorf("feed AliExpress retornou status %d: %s", resp.StatusCode, string(body))
	}

	var response queryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON do feed")
	}

	return response.Response.RespResult.Result.Products.Product, nil
}

// sign assina os parâmetros com HMAC-SHA256 conforme o protocolo TOP:
// chaves ordenadas, pares concatenados, dígito hexadecimal maiúsculo
func (c *AliExpressClient) sign(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(params.Get(k))
	}

	mac := hmac.New(sha256.New, []byte(c.cfg.AppSecret))
	mac.Write([]byte(sb.String()))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// ParsePrice converte o preço textual do feed ("12.34") para float
func ParsePrice(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("preço vazio")
	}
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}
