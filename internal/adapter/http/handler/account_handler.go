package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Laincy/reconnected-se/internal/adapter/http/dto"
	"github.com/Laincy/reconnected-se/internal/domain"
)

// ExchangeService defines the behavior needed by AccountHandler and StockHandler.
type ExchangeService interface {
	ResolveExternalID(ctx context.Context, id domain.ExternalID) (uuid.UUID, error)
	RegisterAccount(ctx context.Context, id domain.ExternalID) (uuid.UUID, error)
	AccountInfo(ctx context.Context, id uuid.UUID) (*domain.UserInfo, error)
	GetHoldings(ctx context.Context, id uuid.UUID, page domain.Pager) (*domain.HoldingsPage, error)
	ListStocks(ctx context.Context, page domain.Pager) (*domain.StockPage, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	svc ExchangeService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc ExchangeService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Register creates a new account bound to one external identity.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	extID, err := req.ToExternalID()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid identity", err.Error())
		return
	}

	id, err := h.svc.RegisterAccount(r.Context(), extID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RegisterAccountResponse{ID: id.String()})
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	info, err := h.svc.AccountInfo(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewAccountResponse(info))
}

// GetHoldings retrieves one page of an account's portfolio.
func (h *AccountHandler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	page, err := h.svc.GetHoldings(r.Context(), id, parsePager(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get holdings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewHoldingsResponse(page))
}

// ResolveDiscord maps a Discord snowflake to its account ID.
func (h *AccountHandler) ResolveDiscord(w http.ResponseWriter, r *http.Request) {
	snowflake, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid Discord ID", err.Error())
		return
	}

	extID, err := domain.DiscordID(snowflake)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid Discord ID", err.Error())
		return
	}

	h.resolve(w, r, extID)
}

// ResolveMinecraft maps a Minecraft UUID to its account ID.
func (h *AccountHandler) ResolveMinecraft(w http.ResponseWriter, r *http.Request) {
	mcID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid Minecraft UUID", err.Error())
		return
	}

	extID, err := domain.MinecraftID(mcID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid Minecraft UUID", err.Error())
		return
	}

	h.resolve(w, r, extID)
}

func (h *AccountHandler) resolve(w http.ResponseWriter, r *http.Request, extID domain.ExternalID) {
	id, err := h.svc.ResolveExternalID(r.Context(), extID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to resolve identity", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ResolveResponse{ID: id.String()})
}
