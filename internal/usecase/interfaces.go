package usecase

import (
	"context"

	"github.com/auntiebot/auntiecount/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// UserRepository persists one user's ledger per key. Implementations keep
// one value per address so concurrent requests for different users never
// clobber each other.
type UserRepository interface {
	// Get returns the user for an address, or domain.ErrUserNotFound.
	Get(ctx context.Context, address string) (*domain.User, error)
	// Put stores the whole user record under its address.
	Put(ctx context.Context, user *domain.User) error
	// FindByToken resolves a pseudonymous token back to its user, or
	// domain.ErrUserNotFound.
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	// All returns every stored user. Used by the admin dump only.
	All(ctx context.Context) ([]*domain.User, error)
}

// FeedbackRepository persists free-text feedback records.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	// List returns records newest first by server instant, plus the total
	// count across all pages.
	List(ctx context.Context, limit, offset int) ([]*domain.Feedback, int, error)
}

// Tokenizer derives the stable pseudonymous token for an address.
type Tokenizer interface {
	Tokenize(address string) string
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
