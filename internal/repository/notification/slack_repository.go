package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brandBOS/business/rotation"
	"brandBOS/domain"
	"brandBOS/pkg/logger"
)

type SlackConfig struct {
	WebhookURL string
	Channel    string
}

// SlackRepository posts rotation alerts to an incoming-webhook channel so
// the approval workflow sees them without polling the API.
type SlackRepository struct {
	slackConfig SlackConfig
}

var _ rotation.Notifier = (*SlackRepository)(nil)

func NewSlackRepository(cfg SlackConfig) *SlackRepository {
	return &SlackRepository{
		cfg,
	}
}

type payloadSlackMessage struct {
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
}

func (r SlackRepository) NotifyRotation(ctx context.Context, rec domain.RotationRecommendation) error {
	if r.slackConfig.WebhookURL == "" {
		logger.Warn("Slack webhook not configured, skipping rotation notification")
		return nil
	}

	text := fmt.Sprintf(
		":rotating_light: Rotation recommended for account %s\n%s\nApprove or dismiss recommendation #%d in the dashboard.",
		rec.AccountID, rec.Reasoning, rec.ID,
	)

	payload := payloadSlackMessage{
		Channel: r.slackConfig.Channel,
		Text:    text,
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.slackConfig.WebhookURL, strings.NewReader(string(payloadByte)))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}
	bodyBytes, _ := io.ReadAll(res.Body)
	logger.Warn("Slack negative response", "status", res.StatusCode, "body", string(bodyBytes))

	return fmt.Errorf("slack webhook return negative response %v", res.StatusCode)
}
