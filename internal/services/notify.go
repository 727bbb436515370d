package services

import (
	"net/http"
	"strings"
	"time"
)

// Result reports the outcome of one notification attempt. OK is true only if
// every recipient was delivered to.
type Result struct {
	OK      bool         `json:"ok"`
	Reason  string       `json:"reason,omitempty"`
	Error   string       `json:"error,omitempty"`
	Results []SendResult `json:"results,omitempty"`
}

// Why explains a failed Result for logging.
func (r Result) Why() string {
	if r.Reason != "" {
		return r.Reason
	}
	return r.Error
}

// SendResult is the outcome for a single recipient.
type SendResult struct {
	OK        bool   `json:"ok"`
	Recipient string `json:"recipient"`
	Status    int    `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
}

// notifyClient is shared by the chat adapters.
var notifyClient = &http.Client{Timeout: 15 * time.Second}

// splitRecipients parses a comma-separated recipient list, dropping blanks.
func splitRecipients(value string) []string {
	parts := strings.Split(value, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}
