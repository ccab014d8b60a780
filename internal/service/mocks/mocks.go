package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Laincy/reconnected-se/internal/domain"
	"github.com/Laincy/reconnected-se/internal/service"
)

// MemStockRepository is an in-memory implementation of
// service.StockRepository. It enforces the same identity-uniqueness contract
// as the Postgres backend under a single mutex, which makes it usable for
// concurrency tests. Any Func field, when set, overrides the in-memory
// behavior of the corresponding method.
type MemStockRepository struct {
	mu        sync.Mutex
	accounts  map[uuid.UUID]*domain.UserInfo
	discord   map[int64]uuid.UUID
	minecraft map[uuid.UUID]uuid.UUID
	holdings  map[uuid.UUID][]domain.Holding
	stocks    []domain.StockListing

	UserExistsFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
	StockExistsFunc      func(ctx context.Context, ticker domain.Ticker) (bool, error)
	ResolveDiscordFunc   func(ctx context.Context, id int64) (uuid.UUID, bool, error)
	ResolveMinecraftFunc func(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error)
	AccountInfoFunc      func(ctx context.Context, id uuid.UUID) (*domain.UserInfo, error)
	RegisterAccountFunc  func(ctx context.Context, discordID *int64, minecraftID *uuid.UUID) (uuid.UUID, error)
	GetHoldingsFunc      func(ctx context.Context, id uuid.UUID, page domain.Pager) (*domain.HoldingsPage, error)
	ListStocksFunc       func(ctx context.Context, page domain.Pager) (*domain.StockPage, error)
}

// NewMemStockRepository creates an empty MemStockRepository.
func NewMemStockRepository() *MemStockRepository {
	return &MemStockRepository{
		accounts:  make(map[uuid.UUID]*domain.UserInfo),
		discord:   make(map[int64]uuid.UUID),
		minecraft: make(map[uuid.UUID]uuid.UUID),
		holdings:  make(map[uuid.UUID][]domain.Holding),
	}
}

// SeedHoldings replaces the stored holdings of an account.
func (m *MemStockRepository) SeedHoldings(id uuid.UUID, holdings []domain.Holding) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sorted := make([]domain.Holding, len(holdings))
	copy(sorted, holdings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Ticker.String() < sorted[j].Ticker.String()
	})

	m.holdings[id] = sorted
}

// SeedStocks replaces the listed stocks.
func (m *MemStockRepository) SeedStocks(stocks []domain.StockListing) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sorted := make([]domain.StockListing, len(stocks))
	copy(sorted, stocks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Ticker.String() < sorted[j].Ticker.String()
	})

	m.stocks = sorted
}

func (m *MemStockRepository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.UserExistsFunc != nil {
		return m.UserExistsFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.accounts[id]
	return ok, nil
}

func (m *MemStockRepository) StockExists(ctx context.Context, ticker domain.Ticker) (bool, error) {
	if m.StockExistsFunc != nil {
		return m.StockExistsFunc(ctx, ticker)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.stocks {
		if s.Ticker == ticker {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemStockRepository) ResolveDiscord(ctx context.Context, id int64) (uuid.UUID, bool, error) {
	if m.ResolveDiscordFunc != nil {
		return m.ResolveDiscordFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	accountID, ok := m.discord[id]
	return accountID, ok, nil
}

func (m *MemStockRepository) ResolveMinecraft(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	if m.ResolveMinecraftFunc != nil {
		return m.ResolveMinecraftFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	accountID, ok := m.minecraft[id]
	return accountID, ok, nil
}

func (m *MemStockRepository) AccountInfo(ctx context.Context, id uuid.UUID) (*domain.UserInfo, error) {
	if m.AccountInfoFunc != nil {
		return m.AccountInfoFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	info, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}

	snapshot := *info
	return &snapshot, nil
}

func (m *MemStockRepository) RegisterAccount(ctx context.Context, discordID *int64, minecraftID *uuid.UUID) (uuid.UUID, error) {
	if m.RegisterAccountFunc != nil {
		return m.RegisterAccountFunc(ctx, discordID, minecraftID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if discordID != nil {
		if _, taken := m.discord[*discordID]; taken {
			return uuid.Nil, service.ErrAlreadyLinked
		}
	}
	if minecraftID != nil {
		if _, taken := m.minecraft[*minecraftID]; taken {
			return uuid.Nil, service.ErrAlreadyLinked
		}
	}

	id := uuid.New()
	m.accounts[id] = &domain.UserInfo{
		ID:          id,
		Balance:     decimal.Zero,
		CreatedAt:   time.Now().UTC(),
		DiscordID:   discordID,
		MinecraftID: minecraftID,
	}

	if discordID != nil {
		m.discord[*discordID] = id
	}
	if minecraftID != nil {
		m.minecraft[*minecraftID] = id
	}

	return id, nil
}

func (m *MemStockRepository) GetHoldings(ctx context.Context, id uuid.UUID, page domain.Pager) (*domain.HoldingsPage, error) {
	if m.GetHoldingsFunc != nil {
		return m.GetHoldingsFunc(ctx, id, page)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[id]; !ok {
		return nil, nil
	}

	all := m.holdings[id]
	slice, remaining := paginate(all, page)

	return &domain.HoldingsPage{Holdings: slice, Remaining: remaining}, nil
}

func (m *MemStockRepository) ListStocks(ctx context.Context, page domain.Pager) (*domain.StockPage, error) {
	if m.ListStocksFunc != nil {
		return m.ListStocksFunc(ctx, page)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.stocks) == 0 {
		return nil, nil
	}

	slice, remaining := paginate(m.stocks, page)

	return &domain.StockPage{Stocks: slice, Remaining: remaining}, nil
}

func paginate[T any](all []T, page domain.Pager) ([]T, int64) {
	total := int64(len(all))

	start := page.Offset()
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}

	end := start + page.Limit()
	if end > total {
		end = total
	}

	slice := make([]T, end-start)
	copy(slice, all[start:end])

	remaining := total - end
	if remaining < 0 {
		remaining = 0
	}

	return slice, remaining
}
