package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/auntiebot/auntiecount/internal/domain"
)

// LedgerUseCase serves the token-keyed read and clear interfaces. Callers
// never see addresses, only tokens.
type LedgerUseCase struct {
	users UserRepository
	loc   *time.Location
	now   func() time.Time
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(users UserRepository, loc *time.Location, now func() time.Time) *LedgerUseCase {
	return &LedgerUseCase{users: users, loc: loc, now: now}
}

// TokenSummary is the full entry sequence for one token.
type TokenSummary struct {
	Entries     []domain.Entry
	Timezone    string
	GeneratedAt time.Time
}

// SummaryByToken returns a user's full entry sequence plus the reference
// timezone and the generation instant.
func (uc *LedgerUseCase) SummaryByToken(ctx context.Context, token string) (*TokenSummary, error) {
	user, err := uc.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return &TokenSummary{
		Entries:     user.Entries,
		Timezone:    uc.loc.String(),
		GeneratedAt: uc.now().UTC(),
	}, nil
}

// ClearByToken empties a user's entry sequence and returns the prior count.
func (uc *LedgerUseCase) ClearByToken(ctx context.Context, token string) (int, error) {
	user, err := uc.findByToken(ctx, token)
	if err != nil {
		return 0, err
	}

	before := len(user.Entries)
	user.Entries = nil
	if err := uc.users.Put(ctx, user); err != nil {
		return 0, err
	}
	return before, nil
}

// Dump returns every stored user keyed by token. Addresses stay internal.
func (uc *LedgerUseCase) Dump(ctx context.Context) (map[string][]domain.Entry, error) {
	users, err := uc.users.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]domain.Entry, len(users))
	for _, u := range users {
		out[u.Token] = u.Entries
	}
	return out, nil
}

func (uc *LedgerUseCase) findByToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	user, err := uc.users.FindByToken(ctx, token)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrUnknownToken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
