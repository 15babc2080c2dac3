// Package email delivers transactional mail through the Postmark HTTP API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/kitchentory-backend/internal/config"
)

// Client sends mail through Postmark.
type Client struct {
	serverToken string
	from        string
	baseURL     string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// NewClient creates a Postmark client from the email config.
func NewClient(cfg config.EmailConfig, opts ...Option) *Client {
	c := &Client{
		serverToken: cfg.PostmarkToken,
		from:        cfg.From,
		baseURL:     strings.TrimRight(cfg.PostmarkURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type postmarkEmail struct {
	From          string `json:"From"`
	To            string `json:"To"`
	Subject       string `json:"Subject"`
	HtmlBody      string `json:"HtmlBody"`
	TextBody      string `json:"TextBody"`
	MessageStream string `json:"MessageStream"`
}

type postmarkError struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}

// SendInvitation mails an invitation link for a household.
func (c *Client) SendInvitation(ctx context.Context, to, householdName, acceptURL string, expiresAt time.Time) error {
	return c.send(ctx, invitationEmail(c.from, to, householdName, acceptURL, expiresAt))
}

func (c *Client) send(ctx context.Context, msg postmarkEmail) error {
	if c.serverToken == "" {
		return fmt.Errorf("email client not configured: missing server token")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.serverToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var pe postmarkError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &pe) == nil && pe.Message != "" {
			return fmt.Errorf("postmark API error: status %d: code %d: %s", resp.StatusCode, pe.ErrorCode, pe.Message)
		}
		return fmt.Errorf("postmark API error: status %d", resp.StatusCode)
	}
	return nil
}

func invitationEmail(from, to, householdName, acceptURL string, expiresAt time.Time) postmarkEmail {
	subject := fmt.Sprintf("You've been invited to %s on Kitchentory", householdName)
	expires := expiresAt.UTC().Format("Jan 2, 2006 15:04 MST")

	text := fmt.Sprintf("You've been invited to join %s on Kitchentory.\n\n", householdName)
	htmlBody := fmt.Sprintf("<p>You've been invited to join <strong>%s</strong> on Kitchentory.</p>", html.EscapeString(householdName))
	if acceptURL != "" {
		text += fmt.Sprintf("Accept the invitation:\n\n%s\n\n", acceptURL)
		htmlBody += fmt.Sprintf(`<p><a href="%s">Accept the invitation</a></p>`, html.EscapeString(acceptURL))
	}
	text += fmt.Sprintf("This invitation expires %s.", expires)
	htmlBody += fmt.Sprintf("<p>This invitation expires %s.</p>", expires)

	return postmarkEmail{
		From:          from,
		To:            to,
		Subject:       subject,
		HtmlBody:      htmlBody,
		TextBody:      text,
		MessageStream: "outbound",
	}
}

// LogMailer stands in for Client when no provider is configured. It logs
// the message instead of sending it.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log.With("adapter", "email")}
}

// SendInvitation logs the invitation.
func (m *LogMailer) SendInvitation(ctx context.Context, to, householdName, acceptURL string, expiresAt time.Time) error {
	m.log.InfoContext(ctx, "email delivery disabled, invitation not sent",
		slog.String("to", to),
		slog.String("household", householdName),
		slog.Bool("has_link", acceptURL != ""),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}
