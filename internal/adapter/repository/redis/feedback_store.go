package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/auntiebot/auntiecount/internal/domain"
)

const feedbackKey = "feedback"

// FeedbackStore implements usecase.FeedbackRepository using a redis list.
// LPUSH keeps the newest record at the head, so listing is a plain range.
type FeedbackStore struct {
	client  *redis.Client
	retrier *Retrier
}

// NewFeedbackStore creates a new FeedbackStore.
func NewFeedbackStore(client *redis.Client, retrier *Retrier) *FeedbackStore {
	return &FeedbackStore{client: client, retrier: retrier}
}

// Create stores one feedback record.
func (s *FeedbackStore) Create(ctx context.Context, fb *domain.Feedback) error {
	data, err := json.Marshal(fb)
	if err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}

	return s.retrier.Retry(ctx, func() error {
		return s.client.LPush(ctx, feedbackKey, data).Err()
	})
}

// List returns feedback records newest first plus the total count.
func (s *FeedbackStore) List(ctx context.Context, limit, offset int) ([]*domain.Feedback, int, error) {
	total, err := s.client.LLen(ctx, feedbackKey).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("redis llen feedback: %w", err)
	}

	vals, err := s.client.LRange(ctx, feedbackKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("redis lrange feedback: %w", err)
	}

	records := make([]*domain.Feedback, 0, len(vals))
	for _, v := range vals {
		var fb domain.Feedback
		if err := json.Unmarshal([]byte(v), &fb); err != nil {
			return nil, 0, fmt.Errorf("decode feedback: %w", err)
		}
		records = append(records, &fb)
	}
	return records, int(total), nil
}
