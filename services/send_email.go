package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog/log"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// EmailSender delivers mail through the Resend API.
type EmailSender struct {
	apiKey     string
	from       string
	recipients []string
	baseURL    string
	client     *http.Client
}

type EmailOption func(*EmailSender)

// WithResendBaseURL points the sender at a different API host.
func WithResendBaseURL(baseURL string) EmailOption {
	return func(s *EmailSender) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(client *http.Client) EmailOption {
	return func(s *EmailSender) {
		s.client = client
	}
}

func NewEmailSender(settings config.EmailSettings, opts ...EmailOption) (*EmailSender, error) {
	if settings.APIKey == "" {
		return nil, errs.NewEnvironmentVariableError("RESEND_API_KEY")
	}
	if settings.From == "" {
		return nil, errs.NewEnvironmentVariableError("RESEND_FROM_EMAIL")
	}
	if len(settings.Recipients) == 0 {
		return nil, errs.NewEnvironmentVariableError("CONTACT_NOTIFY_EMAILS")
	}

	sender := &EmailSender{
		apiKey:     settings.APIKey,
		from:       settings.From,
		recipients: settings.Recipients,
		baseURL:    defaultResendBaseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(sender)
	}
	return sender, nil
}

func (s *EmailSender) Name() string {
	return "email"
}

// NotifyContact mails the site owner a copy of the submitted message.
// Replies go straight to the visitor.
func (s *EmailSender) NotifyContact(ctx context.Context, message models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message: %s", message.Subject)
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(message.Subject),
		strings.ReplaceAll(html.EscapeString(message.Message), "\n", "<br>"),
	)

	return s.SendEmail(ctx, ResendEmailRequest{
		From:    s.from,
		To:      s.recipients,
		Subject: subject,
		Html:    body,
		ReplyTo: message.Email,
	})
}

// SendEmail sends an email using the Resend API
func (s *EmailSender) SendEmail(ctx context.Context, payload ResendEmailRequest) error {
	if len(payload.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.NewServiceUnreachableError("resend", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewUpstreamError("resend", resp.StatusCode, errorResp.Message)
		}
		return errs.NewUpstreamError("resend", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
