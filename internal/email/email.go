// Package email talks to the external template-mail service.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"gameborrow/internal/config"
)

// Template names understood by the mail service.
const (
	TemplateEmailVerification = "email-verification"
	TemplatePasswordReset     = "password-reset"
	TemplateGameAdded         = "game-added"
	TemplateGameUpdated       = "game-updated"
	TemplateGameDeleted       = "game-deleted"
	TemplatePublisherUpdated  = "publisher-updated"
	TemplatePublisherUserAdd  = "publisher-user-added"
)

type Sender interface {
	SendHTMLTemplateEmail(ctx context.Context, recipients []string, subject, template string, data map[string]any) error
}

type templateRequest struct {
	Recipients []string       `json:"recipients"`
	Subject    string         `json:"subject"`
	Template   string         `json:"template"`
	Data       map[string]any `json:"data"`
}

// Client posts template requests to http://host:port/send/.
type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient(cfg config.Email) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		endpoint: "http://" + cfg.Host + ":" + strconv.Itoa(cfg.Port) + "/send/",
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) SendHTMLTemplateEmail(ctx context.Context, recipients []string, subject, template string, data map[string]any) error {
	if len(recipients) == 0 {
		return fmt.Errorf("send %s email: no recipients", template)
	}

	body, err := json.Marshal(templateRequest{
		Recipients: recipients,
		Subject:    subject,
		Template:   template,
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("marshal %s email: %w", template, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s email request: %w", template, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send %s email: %w", template, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("send %s email: mail service responded with HTTP %d", template, resp.StatusCode)
	}

	return nil
}
