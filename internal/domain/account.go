package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserInfo is a read-only snapshot of a ledger account. Exactly one of
// DiscordID and MinecraftID is set; accounts are created with a single
// external identity and are never re-linked.
type UserInfo struct {
	ID          uuid.UUID
	Balance     decimal.Decimal
	CreatedAt   time.Time
	DiscordID   *int64
	MinecraftID *uuid.UUID
}

// Holding is the number of shares of one ticker owned by one account. The
// trading engine owns holdings; this service only reads them.
type Holding struct {
	Ticker Ticker
	Shares uint32
}

// StockListing describes one listed stock on the market.
type StockListing struct {
	Ticker    Ticker
	Shares    uint32
	Price     decimal.Decimal
	LastTrade time.Time
}

// HoldingsPage is one page of an account's holdings ordered ascending by
// ticker. Remaining counts the entries beyond this page at query time; it is
// recomputed on every call, so a change between calls means the underlying
// holdings moved and the caller should restart pagination.
type HoldingsPage struct {
	Holdings  []Holding
	Remaining int64
}

// StockPage is one page of market listings, same pagination contract as
// HoldingsPage.
type StockPage struct {
	Stocks    []StockListing
	Remaining int64
}
