// Package line envía respuestas a través de la Messaging API de LINE.
package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ReplyClient define el contrato para responder un evento con su reply token.
type ReplyClient interface {
	Reply(ctx context.Context, replyToken, text string) error
}

// HTTPClient implementa ReplyClient contra api.line.me.
type HTTPClient struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

// NewHTTPClient construye el cliente de la Messaging API.
func NewHTTPClient(baseURL, accessToken string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://api.line.me"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		client:      &http.Client{Timeout: timeout},
	}
}

// Reply envía un único mensaje de texto usando el reply token del evento.
// El token es de un solo uso: reintentar con el mismo token no tiene sentido.
func (c *HTTPClient) Reply(ctx context.Context, replyToken, text string) error {
	bodyBytes, err := json.Marshal(replyRequest{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/bot/message/reply", bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("reply http error: status=%d body=%s", resp.StatusCode, string(respBody))
	}
	return nil
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
