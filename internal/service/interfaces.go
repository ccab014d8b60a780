package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Laincy/reconnected-se/internal/domain"
)

// Repository-level errors. Implementations must not return anything outside
// this set: storage-specific failures are folded into ErrUnspecified so no
// backend detail crosses the port.
var (
	// ErrAlreadyLinked means a registration hit the store's uniqueness
	// constraint on an external identity.
	ErrAlreadyLinked = errors.New("an account is already linked to this identity")

	// ErrUnspecified is any other backing-store failure.
	ErrUnspecified = errors.New("unspecified repository error")
)

// StockRepository is the persistence port the service consumes. "Not found"
// is never an error here: lookups report absence with a false ok or a nil
// page, reserving errors for operational failures. Implementations must be
// safe for unbounded concurrent use.
type StockRepository interface {
	// UserExists reports whether an account with the given ID exists.
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)

	// StockExists reports whether a stock with the given ticker is listed.
	StockExists(ctx context.Context, ticker domain.Ticker) (bool, error)

	// ResolveDiscord returns the account linked to a Discord snowflake.
	ResolveDiscord(ctx context.Context, id int64) (uuid.UUID, bool, error)

	// ResolveMinecraft returns the account linked to a Minecraft UUID.
	ResolveMinecraft(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error)

	// AccountInfo returns the account snapshot, or nil if the account is
	// unknown.
	AccountInfo(ctx context.Context, id uuid.UUID) (*domain.UserInfo, error)

	// RegisterAccount inserts a new account linked to the given external
	// identity and returns its ID. Exactly one of discordID and minecraftID
	// must be non-nil; the service enforces this before calling. Uniqueness
	// is the store's single atomic insert, not a pre-check, so concurrent
	// registration of the same identity yields one new ID and
	// ErrAlreadyLinked for everyone else.
	RegisterAccount(ctx context.Context, discordID *int64, minecraftID *uuid.UUID) (uuid.UUID, error)

	// GetHoldings returns one page of the account's holdings ordered
	// ascending by ticker, or nil if the account is unknown. The remaining
	// count is recomputed against the live table and is best-effort under
	// concurrent writes.
	GetHoldings(ctx context.Context, id uuid.UUID, page domain.Pager) (*domain.HoldingsPage, error)

	// ListStocks returns one page of market listings ordered ascending by
	// ticker, same pagination contract as GetHoldings. A nil page means no
	// stocks are listed.
	ListStocks(ctx context.Context, page domain.Pager) (*domain.StockPage, error)
}
