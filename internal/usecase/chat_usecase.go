package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/auntiebot/auntiecount/internal/domain"
	"github.com/auntiebot/auntiecount/internal/reply"
)

// MessageKind classifies how an inbound message was routed. Exposed so the
// transport layer can label metrics without re-parsing the reply.
type MessageKind string

const (
	KindMenu      MessageKind = "menu"
	KindList      MessageKind = "list"
	KindUndo      MessageKind = "undo"
	KindSummary   MessageKind = "summary"
	KindTip       MessageKind = "tip"
	KindEntry     MessageKind = "entry"
	KindUnparsed  MessageKind = "unparsed"
	KindNoAddress MessageKind = "no_address"
)

// ChatReply is the outcome of handling one inbound message.
type ChatReply struct {
	Body string
	Kind MessageKind
}

// ChatUseCase is the dispatcher: it classifies an inbound message as a
// command or free-form expense text and sequences parsing, the ledger and
// the responder. Handling is fully synchronous; the only errors that escape
// are store failures.
type ChatUseCase struct {
	users     UserRepository
	tokenizer Tokenizer
	responder *reply.Responder
	loc       *time.Location
	now       func() time.Time
}

// NewChatUseCase creates a new ChatUseCase. now is injected for
// deterministic window tests; pass time.Now in production.
func NewChatUseCase(users UserRepository, tokenizer Tokenizer, responder *reply.Responder, loc *time.Location, now func() time.Time) *ChatUseCase {
	return &ChatUseCase{
		users:     users,
		tokenizer: tokenizer,
		responder: responder,
		loc:       loc,
		now:       now,
	}
}

// HandleMessage processes one inbound message and returns the reply text.
//
// Classification priority: exact "menu"/"help", exact "list", exact "undo",
// contains "summary" (month when it also contains "month"), contains "tip",
// otherwise an expense-parse attempt on the original-cased body. Exact
// matches outrank substring matches so a category literally named "list"
// cannot be shadowed by accident; commands always outrank expense parsing.
func (uc *ChatUseCase) HandleMessage(ctx context.Context, address, body string) (ChatReply, error) {
	if address == "" {
		return ChatReply{Body: reply.NoIdentity, Kind: KindNoAddress}, nil
	}

	body = strings.TrimSpace(body)
	// The spaced-decimal fix runs before command matching too, so
	// "summary" typed around a mangled number still routes correctly.
	text := strings.ToLower(domain.FixSpacedDecimals(body))

	user, err := uc.loadOrCreateUser(ctx, address)
	if err != nil {
		return ChatReply{}, err
	}

	switch {
	case text == "menu" || text == "help":
		return ChatReply{Body: reply.Menu(), Kind: KindMenu}, nil
	case text == "list":
		return uc.handleList(user)
	case text == "undo":
		return uc.handleUndo(ctx, user)
	case strings.Contains(text, "summary"):
		return uc.handleSummary(user, strings.Contains(text, "month"))
	case strings.Contains(text, "tip"):
		return ChatReply{Body: uc.responder.Tip(), Kind: KindTip}, nil
	default:
		return uc.handleExpense(ctx, user, body)
	}
}

// loadOrCreateUser fetches the user record, lazily creating it (token
// included) on first contact from a new address.
func (uc *ChatUseCase) loadOrCreateUser(ctx context.Context, address string) (*domain.User, error) {
	user, err := uc.users.Get(ctx, address)
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{Address: address, Token: uc.tokenizer.Tokenize(address)}
		if err := uc.users.Put(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *ChatUseCase) handleList(user *domain.User) (ChatReply, error) {
	if len(user.Entries) == 0 {
		return ChatReply{Body: reply.EmptyList, Kind: KindList}, nil
	}
	return ChatReply{Body: uc.responder.List(user.LastN(5), uc.loc), Kind: KindList}, nil
}

func (uc *ChatUseCase) handleUndo(ctx context.Context, user *domain.User) (ChatReply, error) {
	removed, ok := user.PopLast()
	if !ok {
		return ChatReply{Body: reply.EmptyUndo, Kind: KindUndo}, nil
	}
	if err := uc.users.Put(ctx, user); err != nil {
		return ChatReply{}, err
	}
	return ChatReply{Body: uc.responder.Undo(removed), Kind: KindUndo}, nil
}

func (uc *ChatUseCase) handleSummary(user *domain.User, isMonth bool) (ChatReply, error) {
	now := uc.now()
	start := domain.StartOfWeek(now, uc.loc)
	if isMonth {
		start = domain.StartOfMonth(now, uc.loc)
	}

	s := domain.Summarize(user.Entries, start, now)
	if len(s.Rows) == 0 {
		return ChatReply{Body: reply.NoSpending(isMonth), Kind: KindSummary}, nil
	}
	return ChatReply{Body: uc.responder.Summary(isMonth, s, user.Token), Kind: KindSummary}, nil
}

func (uc *ChatUseCase) handleExpense(ctx context.Context, user *domain.User, body string) (ChatReply, error) {
	parsed, err := domain.ParseExpense(body)
	if err != nil {
		return ChatReply{Body: reply.Fallback(), Kind: KindUnparsed}, nil
	}

	entry := domain.Entry{
		Category: strings.ToLower(parsed.Category),
		Amount:   parsed.Amount,
		Date:     uc.now().UTC(),
	}
	user.Append(entry)
	if err := uc.users.Put(ctx, user); err != nil {
		return ChatReply{}, err
	}

	dayStart, dayEnd := domain.DayBounds(uc.now(), uc.loc)
	todayCount := domain.CountBetween(user.Entries, dayStart, dayEnd)

	return ChatReply{
		Body: uc.responder.Acknowledge(entry.Amount, entry.Category, todayCount),
		Kind: KindEntry,
	}, nil
}
