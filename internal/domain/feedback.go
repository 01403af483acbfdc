package domain

import "time"

const (
	// MaxFeedbackLength caps a stored feedback message.
	MaxFeedbackLength = 2000
	// DefaultFeedbackPage is used when the client does not name a page.
	DefaultFeedbackPage = "summary"
)

// Feedback is one free-text feedback record. IP is stored for abuse
// follow-up but never exposed through the listing interface.
type Feedback struct {
	ID       string     `json:"id"`
	Token    string     `json:"token,omitempty"`
	Page     string     `json:"page"`
	Message  string     `json:"message"`
	AtClient *time.Time `json:"at_client,omitempty"`
	AtServer time.Time  `json:"at_server"`
	IP       string     `json:"ip,omitempty"`
}
