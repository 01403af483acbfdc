package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/auntiebot/auntiecount/internal/domain"
)

// Feedback pagination bounds.
const (
	feedbackDefaultLimit = 10
	feedbackMaxLimit     = 50
)

// FeedbackUseCase handles free-text feedback submission and listing.
type FeedbackUseCase struct {
	repo FeedbackRepository
	ids  IDGenerator
	now  func() time.Time
}

// NewFeedbackUseCase creates a new FeedbackUseCase.
func NewFeedbackUseCase(repo FeedbackRepository, ids IDGenerator, now func() time.Time) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo, ids: ids, now: now}
}

// SubmitFeedbackInput carries one feedback submission.
type SubmitFeedbackInput struct {
	Token    string
	Message  string
	Page     string
	AtClient *time.Time
	IP       string
}

// Submit validates and stores a feedback record, returning its generated id.
func (uc *FeedbackUseCase) Submit(ctx context.Context, input SubmitFeedbackInput) (string, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return "", domain.ErrEmptyFeedback
	}
	if runes := []rune(message); len(runes) > domain.MaxFeedbackLength {
		message = string(runes[:domain.MaxFeedbackLength])
	}

	page := input.Page
	if page == "" {
		page = domain.DefaultFeedbackPage
	}

	fb := &domain.Feedback{
		ID:       uc.ids.Generate(),
		Token:    input.Token,
		Page:     page,
		Message:  message,
		AtClient: input.AtClient,
		AtServer: uc.now().UTC(),
		IP:       input.IP,
	}
	if err := uc.repo.Create(ctx, fb); err != nil {
		return "", err
	}
	return fb.ID, nil
}

// List returns feedback records newest first. Offset is floored at zero and
// limit is clamped to [1, 50] with a default of 10.
func (uc *FeedbackUseCase) List(ctx context.Context, limit, offset int) ([]*domain.Feedback, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = feedbackDefaultLimit
	}
	if limit > feedbackMaxLimit {
		limit = feedbackMaxLimit
	}
	return uc.repo.List(ctx, limit, offset)
}
