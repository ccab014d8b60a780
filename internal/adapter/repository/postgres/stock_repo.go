// Package postgres implements the service.StockRepository port on a pgx
// connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Laincy/reconnected-se/internal/domain"
	"github.com/Laincy/reconnected-se/internal/service"
)

// pgErrUniqueViolation is the Postgres error code raised when an insert hits
// a unique index. Registration relies on it: the unique indexes on disc_id
// and mc_id are the only arbiter of identity uniqueness, so there is no
// check-then-act window.
const pgErrUniqueViolation = "23505"

// StockRepository implements service.StockRepository backed by Postgres.
// pgxpool synchronizes its own connections, so one value is shared across
// any number of callers.
type StockRepository struct {
	pool *pgxpool.Pool
}

// NewStockRepository creates a StockRepository on pool.
func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

// UserExists reports whether an account with the given ID exists.
func (r *StockRepository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, unspecified(err)
	}

	return exists, nil
}

// StockExists reports whether a stock with the given ticker is listed.
func (r *StockRepository) StockExists(ctx context.Context, ticker domain.Ticker) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stocks WHERE ticker = $1)`, ticker.String(),
	).Scan(&exists)
	if err != nil {
		return false, unspecified(err)
	}

	return exists, nil
}

// ResolveDiscord returns the account linked to a Discord snowflake.
func (r *StockRepository) ResolveDiscord(ctx context.Context, id int64) (uuid.UUID, bool, error) {
	var accountID uuid.UUID

	err := r.pool.QueryRow(ctx,
		`SELECT user_id FROM users WHERE disc_id = $1`, id,
	).Scan(&accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, unspecified(err)
	}

	return accountID, true, nil
}

// ResolveMinecraft returns the account linked to a Minecraft UUID.
func (r *StockRepository) ResolveMinecraft(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	var accountID uuid.UUID

	err := r.pool.QueryRow(ctx,
		`SELECT user_id FROM users WHERE mc_id = $1`, id,
	).Scan(&accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, unspecified(err)
	}

	return accountID, true, nil
}

// AccountInfo returns the account snapshot, or nil if the ID is unknown.
func (r *StockRepository) AccountInfo(ctx context.Context, id uuid.UUID) (*domain.UserInfo, error) {
	var (
		info    domain.UserInfo
		balance pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx,
		`SELECT user_id, balance, created_at, disc_id, mc_id FROM users WHERE user_id = $1`, id,
	).Scan(&info.ID, &balance, &info.CreatedAt, &info.DiscordID, &info.MinecraftID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, unspecified(err)
	}

	info.Balance = numericToDecimal(balance)

	return &info, nil
}

// RegisterAccount inserts a new account row linked to the given identity.
// The exactly-one precondition on the identity columns is also expressed as
// a CHECK constraint in the schema.
func (r *StockRepository) RegisterAccount(ctx context.Context, discordID *int64, minecraftID *uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (disc_id, mc_id) VALUES ($1, $2) RETURNING user_id`,
		discordID, minecraftID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return uuid.Nil, service.ErrAlreadyLinked
		}

		return uuid.Nil, unspecified(err)
	}

	return id, nil
}

// GetHoldings returns one page of the account's holdings ordered ascending
// by ticker, or nil if the account is unknown. The remaining count comes
// from a second COUNT query against the live table, so a write landing
// between the two queries can skew it; callers treat it as best-effort.
func (r *StockRepository) GetHoldings(ctx context.Context, id uuid.UUID, page domain.Pager) (*domain.HoldingsPage, error) {
	exists, err := r.UserExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ticker, shares FROM holdings WHERE user_id = $1 ORDER BY ticker LIMIT $2 OFFSET $3`,
		id, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, unspecified(err)
	}
	defer rows.Close()

	var holdings []domain.Holding
	for rows.Next() {
		var (
			raw    string
			shares int32
		)

		if err := rows.Scan(&raw, &shares); err != nil {
			return nil, unspecified(err)
		}

		ticker, err := domain.ParseTicker(raw)
		if err != nil {
			// A row that fails ticker validation is unreadable garbage;
			// skip it rather than failing the whole page.
			continue
		}

		holdings = append(holdings, domain.Holding{Ticker: ticker, Shares: uint32(shares)})
	}
	if err := rows.Err(); err != nil {
		return nil, unspecified(err)
	}

	var total int64
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM holdings WHERE user_id = $1`, id,
	).Scan(&total)
	if err != nil {
		return nil, unspecified(err)
	}

	return &domain.HoldingsPage{
		Holdings:  holdings,
		Remaining: remainingAfter(total, page.Offset(), len(holdings)),
	}, nil
}

// ListStocks returns one page of market listings ordered ascending by
// ticker, or nil when nothing is listed. Same best-effort remaining count as
// GetHoldings.
func (r *StockRepository) ListStocks(ctx context.Context, page domain.Pager) (*domain.StockPage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ticker, shares, price, last_trade FROM stocks ORDER BY ticker LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, unspecified(err)
	}
	defer rows.Close()

	var stocks []domain.StockListing
	for rows.Next() {
		var (
			raw     string
			shares  int32
			price   pgtype.Numeric
			listing domain.StockListing
		)

		if err := rows.Scan(&raw, &shares, &price, &listing.LastTrade); err != nil {
			return nil, unspecified(err)
		}

		ticker, err := domain.ParseTicker(raw)
		if err != nil {
			continue
		}

		listing.Ticker = ticker
		listing.Shares = uint32(shares)
		listing.Price = numericToDecimal(price)

		stocks = append(stocks, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, unspecified(err)
	}

	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stocks`).Scan(&total)
	if err != nil {
		return nil, unspecified(err)
	}

	if total == 0 {
		return nil, nil
	}

	return &domain.StockPage{
		Stocks:    stocks,
		Remaining: remainingAfter(total, page.Offset(), len(stocks)),
	}, nil
}

// remainingAfter computes the entries past the returned page, clamped to
// zero: a concurrent delete between the page query and the count can
// otherwise push it negative.
func remainingAfter(total, offset int64, returned int) int64 {
	consumed := offset + int64(returned)
	if consumed < 0 {
		consumed = 0
	}

	remaining := total - consumed
	if remaining < 0 {
		remaining = 0
	}

	return remaining
}

// unspecified folds a backend failure into the port's closed error set. The
// original message rides along for logs; callers only ever branch on
// service.ErrUnspecified.
func unspecified(err error) error {
	return fmt.Errorf("%w: %v", service.ErrUnspecified, err)
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
