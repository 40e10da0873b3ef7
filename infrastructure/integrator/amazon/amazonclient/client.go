// Package amazonclient implementa o cliente HTTP da Product Advertising API
// (PA-API v5), incluindo a assinatura AWS SigV4 exigida pelo serviço
package amazonclient

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	amazondomain "github.com/brislydeals/deals-pipeline/infrastructure/integrator/amazon/domain"
	"github.com/brislydeals/deals-pipeline/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	serviceName   = "ProductAdvertisingAPI"
	searchPath    = "/paapi5/searchitems"
	searchTarget  = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.SearchItems"
	clientTimeout = 15 * time.Second
)

type Client interface {
	SearchItems(ctx context.Context, keyword string, limit int) (*amazondomain.SearchItemsResponse, error)
}

type AmazonClient struct {
	httpClient *http.Client
	cfg        config.Amazon
	now        func() time.Time
}

func NewClient(cfg *config.Config) Client {
	return &AmazonClient{
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
		cfg: cfg.Amazon,
		now: time.Now,
	}
}

func (c *AmazonClient) endpoint() string {
	return fmt.Sprintf("https://%s%s", c.cfg.Host, searchPath)
}

func (c *AmazonClient) do(ctx context.Context, target string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	now := c.now().UTC()

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Content-Encoding", "amz-1.0")
	req.Header.Set("X-Amz-Target", target)
	req.Header.Set("X-Amz-Date", now.Format("20060102T150405Z"))
	req.Header.Set("Host", c.cfg.Host)

	c.sign(req, payload, now)

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
		return nil, errors.Errorf("PA-API retornou status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// sign aplica a assinatura AWS SigV4 à requisição
func (c *AmazonClient) sign(req *http.Request, payload []byte, now time.Time) {
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")

	signedHeaders := "content-encoding;host;x-amz-date;x-amz-target"
	canonicalHeaders := strings.Join([]string{
		"content-encoding:" + req.Header.Get("Content-Encoding"),
		"host:" + c.cfg.Host,
		"x-amz-date:" + amzDate,
		"x-amz-target:" + req.Header.Get("X-Amz-Target"),
	}, "\n") + "\n"

	payloadHash := hexSHA256(payload)

	canonicalRequest := strings.Join([]string{
		http.MethodPost,
		searchPath,
		"", // query string vazia
		canonicalHeaders,
		signedHeaders,
		payloadHash,
	}, "\n")

	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, c.cfg.Region, serviceName)

	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256",
		amzDate,
		credentialScope,
		hexSHA256([]byte(canonicalRequest)),
	}, "\n")

	kDate := hmacSHA256([]byte("AWS4"+c.cfg.SecretKey), dateStamp)
	kRegion := hmacSHA256(kDate, c.cfg.Region)
	kService := hmacSHA256(kRegion, serviceName)
	kSigning := hmacSHA256(kService, "aws4_request")
	signature := hex.EncodeToString(hmacSHA256(kSigning, stringToSign))

	authorization := fmt.Sprintf(
		"AWS4-HMAC-SHA256 Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		c.cfg.AccessKey, credentialScope, signedHeaders, signature,
	)
	req.Header.Set("Authorization", authorization)
}

func hexSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}
