package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rubytogether/time-card/internal/model"
	"github.com/rubytogether/time-card/internal/report"
)

// Notifier announces newly created entries to an external channel.
// Failures are for the caller to log, never to surface to the client.
type Notifier interface {
	EntryCreated(ctx context.Context, worker *model.Worker, entry *model.Entry) error
}

// Slack posts entry notifications to a Slack incoming webhook.
type Slack struct {
	webhookURL string
	username   string
	httpClient *http.Client
}

func NewSlack(webhookURL string) *Slack {
	return &Slack{
		webhookURL: webhookURL,
		username:   "time_card",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type slackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type slackAttachment struct {
	Text   string       `json:"text"`
	Color  string       `json:"color"`
	Fields []slackField `json:"fields"`
}

type slackPayload struct {
	Username    string            `json:"username"`
	Attachments []slackAttachment `json:"attachments"`
}

// EntryCreated sends one attachment summarizing the worker, date, and
// formatted duration of the new entry.
func (s *Slack) EntryCreated(ctx context.Context, worker *model.Worker, entry *model.Entry) error {
	payload := slackPayload{
		Username: s.username,
		Attachments: []slackAttachment{{
			Text:  escape(entry.Message),
			Color: "good",
			Fields: []slackField{
				{Title: "worker", Value: worker.UserName, Short: true},
				{Title: "date", Value: entry.Date.Format(time.DateOnly), Short: true},
				{Title: "time", Value: report.FormatMinutes(entry.Minutes), Short: true},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned %d", resp.StatusCode)
	}

	return nil
}

// escape applies Slack's required entity escaping to message text.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(text string) string {
	return escaper.Replace(text)
}
