package handler

import (
	"net/http"

	"github.com/Laincy/reconnected-se/internal/adapter/http/dto"
)

// StockHandler handles market listing HTTP requests.
type StockHandler struct {
	svc ExchangeService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(svc ExchangeService) *StockHandler {
	return &StockHandler{svc: svc}
}

// List retrieves one page of the market listing.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListStocks(r.Context(), parsePager(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list stocks", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewStocksResponse(page))
}
