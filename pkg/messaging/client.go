package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Sender delivers assistant replies to a patient.
type Sender interface {
	SendText(ctx context.Context, instance, phone, text string) error
}

// Client talks to the WhatsApp gateway's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a gateway client. apiKey may be empty when the
// gateway runs without authentication.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
}

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// SendText posts one text message through the given instance. The
// gateway answers 200 or 201 on success depending on its version.
func (c *Client) SendText(ctx context.Context, instance, phone, text string) error {
	payload, err := json.Marshal(sendTextRequest{Number: phone, Text: text})
	if err != nil {
		return fmt.Errorf("encode send request: %w", err)
	}

	url := fmt.Sprintf("%s/message/sendText/%s", c.baseURL, instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send message via %s: %w", instance, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("gateway returned HTTP %d for %s: %s", resp.StatusCode, instance, string(body))
	}

	c.logger.Debug("message sent",
		slog.String("instance", instance),
		slog.Int("status", resp.StatusCode))
	return nil
}
