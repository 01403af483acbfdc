// Package redis implements the repositories over a redis key-value store.
// One value per user keeps writes atomic per key: concurrent requests for
// different users can never clobber each other's ledgers.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/auntiebot/auntiecount/internal/domain"
)

const (
	userKeyPrefix  = "user:"
	tokenKeyPrefix = "token:"
)

// UserStore implements usecase.UserRepository using redis.
type UserStore struct {
	client  *redis.Client
	retrier *Retrier
}

// NewUserStore creates a new UserStore.
func NewUserStore(client *redis.Client, retrier *Retrier) *UserStore {
	return &UserStore{client: client, retrier: retrier}
}

// Get returns the user stored under an address.
func (s *UserStore) Get(ctx context.Context, address string) (*domain.User, error) {
	data, err := s.client.Get(ctx, userKeyPrefix+address).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// Put stores the whole user record and its token index in one transaction.
func (s *UserStore) Put(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return s.retrier.Retry(ctx, func() error {
		pipe := s.client.TxPipeline()
		pipe.Set(ctx, userKeyPrefix+user.Address, data, 0)
		pipe.Set(ctx, tokenKeyPrefix+user.Token, user.Address, 0)
		_, err := pipe.Exec(ctx)
		return err
	})
}

// FindByToken resolves a token to its user through the token index.
func (s *UserStore) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	address, err := s.client.Get(ctx, tokenKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get token index: %w", err)
	}
	return s.Get(ctx, address)
}

// All returns every stored user.
func (s *UserStore) All(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User

	iter := s.client.Scan(ctx, 0, userKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue // deleted between scan and get
		}
		if err != nil {
			return nil, fmt.Errorf("redis get user: %w", err)
		}

		var user domain.User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, &user)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan users: %w", err)
	}
	return users, nil
}
