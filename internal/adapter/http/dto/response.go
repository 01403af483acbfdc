package dto

import (
	"time"

	"github.com/auntiebot/auntiecount/internal/domain"
	"github.com/auntiebot/auntiecount/internal/usecase"
)

// SummaryResponse is the API view of one token's full ledger.
type SummaryResponse struct {
	Entries     []domain.Entry `json:"entries"`
	Timezone    string         `json:"tz"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// SummaryFromUseCase converts a token summary to a response.
func SummaryFromUseCase(s *usecase.TokenSummary) *SummaryResponse {
	return &SummaryResponse{
		Entries:     s.Entries,
		Timezone:    s.Timezone,
		GeneratedAt: s.GeneratedAt,
	}
}

// ClearResponse confirms a ledger wipe.
type ClearResponse struct {
	OK          bool `json:"ok"`
	Cleared     bool `json:"cleared"`
	CountBefore int  `json:"countBefore"`
}

// SubmitFeedbackResponse confirms a stored feedback record.
type SubmitFeedbackResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// FeedbackItem is one feedback record in a listing. The stored client IP is
// deliberately absent.
type FeedbackItem struct {
	ID       string     `json:"id"`
	Token    string     `json:"token,omitempty"`
	Page     string     `json:"page"`
	Message  string     `json:"message"`
	AtClient *time.Time `json:"atClient,omitempty"`
	AtServer time.Time  `json:"atServer"`
}

// FeedbackListResponse is one page of feedback records.
type FeedbackListResponse struct {
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
	Items  []*FeedbackItem `json:"items"`
}

// FeedbackItemsFromDomain converts domain feedback records to list items.
func FeedbackItemsFromDomain(records []*domain.Feedback) []*FeedbackItem {
	result := make([]*FeedbackItem, len(records))
	for i, fb := range records {
		result[i] = &FeedbackItem{
			ID:       fb.ID,
			Token:    fb.Token,
			Page:     fb.Page,
			Message:  fb.Message,
			AtClient: fb.AtClient,
			AtServer: fb.AtServer,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
