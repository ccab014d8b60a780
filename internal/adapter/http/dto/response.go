package dto

import (
	"strconv"
	"time"

	"github.com/Laincy/reconnected-se/internal/domain"
)

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID          string  `json:"id"`
	Balance     string  `json:"balance"`
	CreatedAt   string  `json:"created_at"`
	DiscordID   *string `json:"discord_id,omitempty"`
	MinecraftID *string `json:"minecraft_id,omitempty"`
}

func NewAccountResponse(info *domain.UserInfo) AccountResponse {
	resp := AccountResponse{
		ID:        info.ID.String(),
		Balance:   info.Balance.String(),
		CreatedAt: info.CreatedAt.UTC().Format(time.RFC3339),
	}
	if info.DiscordID != nil {
		s := strconv.FormatInt(*info.DiscordID, 10)
		resp.DiscordID = &s
	}
	if info.MinecraftID != nil {
		s := info.MinecraftID.String()
		resp.MinecraftID = &s
	}
	return resp
}

// RegisterAccountResponse carries the id assigned to a freshly registered account.
type RegisterAccountResponse struct {
	ID string `json:"id"`
}

// ResolveResponse maps an external identity to its account id.
type ResolveResponse struct {
	ID string `json:"id"`
}

type HoldingResponse struct {
	Ticker string `json:"ticker"`
	Shares uint32 `json:"shares"`
}

// HoldingsResponse is one page of an account's portfolio. Remaining counts
// the entries past this page at the time the page was read.
type HoldingsResponse struct {
	Holdings  []HoldingResponse `json:"holdings"`
	Remaining int64             `json:"remaining"`
}

func NewHoldingsResponse(page *domain.HoldingsPage) HoldingsResponse {
	resp := HoldingsResponse{
		Holdings:  make([]HoldingResponse, 0, len(page.Holdings)),
		Remaining: page.Remaining,
	}
	for _, h := range page.Holdings {
		resp.Holdings = append(resp.Holdings, HoldingResponse{
			Ticker: h.Ticker.String(),
			Shares: h.Shares,
		})
	}
	return resp
}

type StockResponse struct {
	Ticker    string `json:"ticker"`
	Shares    uint32 `json:"shares"`
	Price     string `json:"price"`
	LastTrade string `json:"last_trade"`
}

// StocksResponse is one page of the market listing.
type StocksResponse struct {
	Stocks    []StockResponse `json:"stocks"`
	Remaining int64           `json:"remaining"`
}

func NewStocksResponse(page *domain.StockPage) StocksResponse {
	resp := StocksResponse{
		Stocks:    make([]StockResponse, 0, len(page.Stocks)),
		Remaining: page.Remaining,
	}
	for _, s := range page.Stocks {
		resp.Stocks = append(resp.Stocks, StockResponse{
			Ticker:    s.Ticker.String(),
			Shares:    s.Shares,
			Price:     s.Price.String(),
			LastTrade: s.LastTrade.UTC().Format(time.RFC3339),
		})
	}
	return resp
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
