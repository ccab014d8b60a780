// Package service holds the orchestration core of the exchange: it wraps one
// StockRepository and turns raw storage results into domain-level guarantees.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Laincy/reconnected-se/internal/domain"
)

// StockService exposes the account and market read/write operations. It holds
// no mutable state, so one instance is shared freely across concurrent
// callers; all mutation is delegated to the repository.
type StockService struct {
	repo StockRepository
}

// New creates a StockService backed by repo.
func New(repo StockRepository) *StockService {
	return &StockService{repo: repo}
}

// ResolveExternalID returns the account linked to an external identity. This
// is where absence becomes an error: a caller resolving an identity expects
// the account to exist, so a missing link is domain.ErrUserNotFound.
func (s *StockService) ResolveExternalID(ctx context.Context, ext domain.ExternalID) (uuid.UUID, error) {
	var (
		id    uuid.UUID
		found bool
		err   error
	)

	switch ext.Kind() {
	case domain.IdentityDiscord:
		snowflake, _ := ext.Discord()
		id, found, err = s.repo.ResolveDiscord(ctx, snowflake)
	case domain.IdentityMinecraft:
		mcID, _ := ext.Minecraft()
		id, found, err = s.repo.ResolveMinecraft(ctx, mcID)
	default:
		return uuid.Nil, fmt.Errorf("%w: empty identity", domain.ErrInvalidIdentity)
	}

	if err != nil {
		return uuid.Nil, mapRepoError(err)
	}

	if !found {
		return uuid.Nil, domain.ErrUserNotFound
	}

	return id, nil
}

// RegisterAccount creates a new account linked to ext and returns its ID. An
// identity that is already linked yields domain.ErrAccountExists; under
// concurrent registration of the same identity exactly one caller wins.
func (s *StockService) RegisterAccount(ctx context.Context, ext domain.ExternalID) (uuid.UUID, error) {
	var (
		discordID   *int64
		minecraftID *uuid.UUID
	)

	switch ext.Kind() {
	case domain.IdentityDiscord:
		snowflake, _ := ext.Discord()
		discordID = &snowflake
	case domain.IdentityMinecraft:
		mcID, _ := ext.Minecraft()
		minecraftID = &mcID
	default:
		return uuid.Nil, fmt.Errorf("%w: empty identity", domain.ErrInvalidIdentity)
	}

	id, err := s.repo.RegisterAccount(ctx, discordID, minecraftID)
	if err != nil {
		return uuid.Nil, mapRepoError(err)
	}

	return id, nil
}

// AccountInfo returns the snapshot of an account, or domain.ErrUserNotFound
// if the ID is unknown.
func (s *StockService) AccountInfo(ctx context.Context, id uuid.UUID) (*domain.UserInfo, error) {
	info, err := s.repo.AccountInfo(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if info == nil {
		return nil, domain.ErrUserNotFound
	}

	return info, nil
}

// GetHoldings returns one page of an account's holdings, or
// domain.ErrUserNotFound if the ID is unknown. The pagination result passes
// through unchanged; callers paging interactively should compare Remaining
// across calls and restart when it moves.
func (s *StockService) GetHoldings(ctx context.Context, id uuid.UUID, page domain.Pager) (*domain.HoldingsPage, error) {
	holdings, err := s.repo.GetHoldings(ctx, id, page)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if holdings == nil {
		return nil, domain.ErrUserNotFound
	}

	return holdings, nil
}

// ListStocks returns one page of market listings. An empty market is a
// legitimate outcome, not an error, so a nil repository result becomes an
// empty page.
func (s *StockService) ListStocks(ctx context.Context, page domain.Pager) (*domain.StockPage, error) {
	stocks, err := s.repo.ListStocks(ctx, page)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if stocks == nil {
		return &domain.StockPage{}, nil
	}

	return stocks, nil
}

// UserExists reports whether an account with the given ID exists. Absence is
// the answer here, not an error.
func (s *StockService) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.repo.UserExists(ctx, id)
	if err != nil {
		return false, mapRepoError(err)
	}

	return exists, nil
}

// StockExists reports whether a stock with the given ticker is listed.
func (s *StockService) StockExists(ctx context.Context, ticker domain.Ticker) (bool, error) {
	exists, err := s.repo.StockExists(ctx, ticker)
	if err != nil {
		return false, mapRepoError(err)
	}

	return exists, nil
}

// mapRepoError is the single translation point from repository errors to
// domain errors: ErrAlreadyLinked becomes ErrAccountExists, everything else
// is wrapped opaquely with the cause kept for logging.
func mapRepoError(err error) error {
	if errors.Is(err, ErrAlreadyLinked) {
		return domain.ErrAccountExists
	}

	return domain.NewDatabaseError(err)
}
