package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nexus-sb/club-site-backend/config"
	"github.com/nexus-sb/club-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// ApplicationNotifier mails a summary of each new membership application to
// the club inbox through the Resend API. Delivery is best-effort: callers
// log failures and never let them affect the submission response.
type ApplicationNotifier struct {
	apiKey string
	from   string
	inbox  string
	client *http.Client
	logger zerolog.Logger
}

// NewApplicationNotifier returns nil when RESEND_API_KEY or
// APPLICATIONS_INBOX is not configured; notifications are then disabled.
func NewApplicationNotifier(cfg map[string]string) *ApplicationNotifier {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	inbox := config.GetString(cfg, "APPLICATIONS_INBOX", "")
	if apiKey == "" || inbox == "" {
		return nil
	}

	return &ApplicationNotifier{
		apiKey: apiKey,
		from:   config.GetString(cfg, "RESEND_FROM_EMAIL", "Club Site <onboarding@resend.dev>"),
		inbox:  inbox,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: log.With().Str("serviceName", "applicationNotifier").Logger(),
	}
}

func (n *ApplicationNotifier) Notify(application models.Application) error {
	body := fmt.Sprintf(
		"New membership application received.\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s\nPRN: %s\nBranch: %s\nYear: %s\n\n"+
			"Motivation:\n%s\n\nExperience:\n%s\n",
		application.Name, application.Email, application.Phone,
		application.PRN, application.Branch, application.Year,
		application.Motivation, application.Experience,
	)

	payload := resendEmailRequest{
		From:    n.from,
		To:      []string{n.inbox},
		Subject: fmt.Sprintf("New membership application: %s", application.Name),
		Text:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling notification payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("building notification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notification service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	n.logger.Debug().Str("applicant", application.Email).Msg("Application notification sent")
	return nil
}
