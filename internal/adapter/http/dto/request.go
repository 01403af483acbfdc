package dto

import (
	"time"

	"github.com/auntiebot/auntiecount/internal/usecase"
)

// ClearRequest asks for one token's ledger to be wiped.
type ClearRequest struct {
	U string `json:"u"`
}

// FeedbackRequest represents one feedback submission from the summary page.
type FeedbackRequest struct {
	U       string     `json:"u,omitempty"`
	Message string     `json:"message"`
	Page    string     `json:"page,omitempty"`
	At      *time.Time `json:"at,omitempty"`
}

// ToUseCaseInput converts to use case input. The client IP is attached by
// the handler, not the client.
func (r *FeedbackRequest) ToUseCaseInput(ip string) usecase.SubmitFeedbackInput {
	return usecase.SubmitFeedbackInput{
		Token:    r.U,
		Message:  r.Message,
		Page:     r.Page,
		AtClient: r.At,
		IP:       ip,
	}
}
