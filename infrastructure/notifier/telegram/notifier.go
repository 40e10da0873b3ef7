// Package telegram entrega payloads aos canais via Bot API
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/brislydeals/deals-pipeline/internal/config"
)

const clientTimeout = 10 * time.Second

type Notifier interface {
	// SendMessage envia um texto HTML ao canal
	SendMessage(ctx context.Context, channel, html string) error
	// SendPhoto envia uma imagem com legenda HTML ao canal
	SendPhoto(ctx context.Context, channel, photoURL, caption string) error
}

type BotNotifier struct {
	httpClient *http.Client
	botToken   string
}

func NewNotifier(cfg *config.Config) Notifier {
	return &BotNotifier{
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
		botToken: cfg.Telegram.BotToken,
	}
}

func (n *BotNotifier) SendMessage(ctx context.Context, channel, html string) error {
	form := url.Values{}
	form.Set("chat_id", channel)
	form.Set("text", html)
	form.Set("parse_mode", "HTML")
	form.Set("disable_web_page_preview", "false")

	return n.post(ctx, "sendMessage", form)
}

func (n *BotNotifier) SendPhoto(ctx context.Context, channel, photoURL, caption string) error {
	form := url.Values{}
	form.Set("chat_id", channel)
	form.Set("photo", photoURL)
	form.Set("caption", caption)
	form.Set("parse_mode", "HTML")

	return n.post(ctx, "sendPhoto", form)
}

func (n *BotNotifier) post(ctx context.Context, method string, form url.Values) error {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/%s", n.botToken, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.Errorf("Telegram retornou status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
