// Package contact posts contact form submissions to a webhook.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("contact webhook is not configured")
	ErrIncomplete    = errors.New("name, email and message are required")
)

// Submission is one filled-in contact form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

// Normalize trims every field and checks that none is empty.
func (s Submission) Normalize() (Submission, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return Submission{}, ErrIncomplete
	}
	return s, nil
}

// Client sends submissions to a single webhook URL.
type Client struct {
	url     string
	timeout time.Duration
	client  *http.Client
	now     func() time.Time
}

// NewClient creates a client that POSTs JSON to url.
func NewClient(url string, timeout time.Duration, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		url:     url,
		timeout: timeout,
		client:  client,
		now:     time.Now,
	}
}

// Enabled reports whether a webhook URL is set.
func (c *Client) Enabled() bool { return c.url != "" }

// Submit posts s. Any non-2xx status is reported as an error.
func (c *Client) Submit(ctx context.Context, s Submission) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}
	s, err := s.Normalize()
	if err != nil {
		return err
	}
	s.SentAt = c.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
