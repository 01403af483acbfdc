// Package memory provides store implementations backed by in-process maps.
// They are used when STORE_BACKEND=memory and in integration tests; data is
// lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/auntiebot/auntiecount/internal/domain"
)

// UserStore keeps user records in a mutex-guarded map keyed by address,
// with a secondary token index. Values are deep-copied on the way in and
// out so callers can never mutate stored state through a shared pointer.
type UserStore struct {
	mu      sync.RWMutex
	users   map[string]*domain.User
	byToken map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[string]*domain.User),
		byToken: make(map[string]string),
	}
}

func (s *UserStore) Get(_ context.Context, address string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[address]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *UserStore) Put(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.Address] = copyUser(user)
	if user.Token != "" {
		s.byToken[user.Token] = user.Address
	}
	return nil
}

func (s *UserStore) FindByToken(_ context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	address, ok := s.byToken[token]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user, ok := s.users[address]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *UserStore) All(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, copyUser(user))
	}
	return users, nil
}

func copyUser(user *domain.User) *domain.User {
	clone := *user
	clone.Entries = make([]domain.Entry, len(user.Entries))
	copy(clone.Entries, user.Entries)
	return &clone
}

// FeedbackStore keeps feedback records in memory, newest first.
type FeedbackStore struct {
	mu      sync.RWMutex
	records []*domain.Feedback
}

func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{}
}

func (s *FeedbackStore) Create(_ context.Context, fb *domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *fb
	s.records = append([]*domain.Feedback{&clone}, s.records...)
	return nil
}

func (s *FeedbackStore) List(_ context.Context, limit, offset int) ([]*domain.Feedback, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.records)
	if offset >= total {
		return []*domain.Feedback{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]*domain.Feedback, 0, end-offset)
	for _, fb := range s.records[offset:end] {
		clone := *fb
		page = append(page, &clone)
	}
	return page, total, nil
}
