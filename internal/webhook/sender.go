// Package webhook пересылает созданные тревоги во внешнюю систему одним подписанным POST.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Webhook-Signature"

// Sender отправляет тело события на URL вебхука
type Sender struct {
	client *resty.Client
	url    string
	secret string
}

// NewSender создает Sender без повторных попыток
func NewSender(url, secret string, timeout time.Duration) *Sender {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &Sender{client: client, url: url, secret: secret}
}

// Send выполняет одну попытку доставки. Ответ вне 2xx считается ошибкой.
func (s *Sender) Send(ctx context.Context, payload []byte) error {
	req := s.client.R().
		SetContext(ctx).
		SetBody(payload)

	// Добавляем HMAC подпись, если секрет задан
	if s.secret != "" {
		req.SetHeader(SignatureHeader, Sign(payload, s.secret))
	}

	resp, err := req.Post(s.url)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode())
	}
	return nil
}

// Sign возвращает hex HMAC-SHA256 подпись данных
func Sign(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
