package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/auntiebot/auntiecount/internal/domain"
	"github.com/auntiebot/auntiecount/internal/usecase"
	"github.com/auntiebot/auntiecount/internal/usecase/mocks"
)

func newFeedbackUseCase(repo usecase.FeedbackRepository, ids usecase.IDGenerator) *usecase.FeedbackUseCase {
	return usecase.NewFeedbackUseCase(repo, ids, func() time.Time { return fixedNow })
}

func TestFeedbackUseCase_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFeedbackRepository(ctrl)
	ids := mocks.NewMockIDGenerator(ctrl)
	ids.EXPECT().Generate().Return("01JABCDEF")

	var saved *domain.Feedback
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fb *domain.Feedback) error {
		saved = fb
		return nil
	})

	uc := newFeedbackUseCase(repo, ids)

	id, err := uc.Submit(context.Background(), usecase.SubmitFeedbackInput{
		Token:   "tok24",
		Message: "  love the auntie voice  ",
		IP:      "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "01JABCDEF" {
		t.Errorf("id = %q", id)
	}
	if saved.Message != "love the auntie voice" {
		t.Errorf("message not trimmed: %q", saved.Message)
	}
	if saved.Page != domain.DefaultFeedbackPage {
		t.Errorf("page default missing: %q", saved.Page)
	}
	if saved.AtServer.IsZero() {
		t.Errorf("server instant not set")
	}
}

func TestFeedbackUseCase_SubmitEmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newFeedbackUseCase(mocks.NewMockFeedbackRepository(ctrl), mocks.NewMockIDGenerator(ctrl))

	if _, err := uc.Submit(context.Background(), usecase.SubmitFeedbackInput{Message: "   "}); !errors.Is(err, domain.ErrEmptyFeedback) {
		t.Fatalf("got %v, want ErrEmptyFeedback", err)
	}
}

func TestFeedbackUseCase_SubmitCapsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFeedbackRepository(ctrl)
	ids := mocks.NewMockIDGenerator(ctrl)
	ids.EXPECT().Generate().Return("id")

	var saved *domain.Feedback
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fb *domain.Feedback) error {
		saved = fb
		return nil
	})

	uc := newFeedbackUseCase(repo, ids)

	if _, err := uc.Submit(context.Background(), usecase.SubmitFeedbackInput{Message: strings.Repeat("a", 5000)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(saved.Message) != domain.MaxFeedbackLength {
		t.Fatalf("message length = %d, want %d", len(saved.Message), domain.MaxFeedbackLength)
	}
}

func TestFeedbackUseCase_ListClampsBounds(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: 10, wantOffset: 0},
		{name: "negative offset floored", limit: 5, offset: -3, wantLimit: 5, wantOffset: 0},
		{name: "limit capped at 50", limit: 500, offset: 2, wantLimit: 50, wantOffset: 2},
		{name: "negative limit defaulted", limit: -1, offset: 0, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockFeedbackRepository(ctrl)
			repo.EXPECT().List(gomock.Any(), tt.wantLimit, tt.wantOffset).Return(nil, 0, nil)

			uc := newFeedbackUseCase(repo, mocks.NewMockIDGenerator(ctrl))

			if _, _, err := uc.List(context.Background(), tt.limit, tt.offset); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
