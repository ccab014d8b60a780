package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Laincy/reconnected-se/tests/testutil"

	"github.com/Laincy/reconnected-se/internal/adapter/http/dto"
)

func TestHoldingsPagination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	body, _ := json.Marshal(dto.RegisterAccountRequest{DiscordID: "42"})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register account: %d %s", w.Code, w.Body.String())
	}

	var account dto.RegisterAccountResponse
	if err := json.Unmarshal(w.Body.Bytes(), &account); err != nil {
		t.Fatalf("failed to decode account: %v", err)
	}
	accountID := uuid.MustParse(account.ID)

	for _, ticker := range []string{"AAPL", "TSLA", "ZZZ"} {
		testDB.CreateStock(ctx, ticker, 1000, decimal.RequireFromString("10"))
		testDB.CreateHolding(ctx, accountID, ticker, 5)
	}

	fetch := func(query string) dto.HoldingsResponse {
		t.Helper()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+account.ID+"/holdings"+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp dto.HoldingsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode holdings: %v", err)
		}
		return resp
	}

	t.Run("first page", func(t *testing.T) {
		resp := fetch("?offset=0&limit=2")
		if len(resp.Holdings) != 2 || resp.Remaining != 1 {
			t.Fatalf("unexpected page: %+v", resp)
		}
		if resp.Holdings[0].Ticker != "AAPL" || resp.Holdings[1].Ticker != "TSLA" {
			t.Fatalf("expected ticker order AAPL, TSLA; got %+v", resp.Holdings)
		}
	})

	t.Run("last page", func(t *testing.T) {
		resp := fetch("?offset=2&limit=2")
		if len(resp.Holdings) != 1 || resp.Remaining != 0 {
			t.Fatalf("unexpected page: %+v", resp)
		}
		if resp.Holdings[0].Ticker != "ZZZ" {
			t.Fatalf("expected ZZZ, got %s", resp.Holdings[0].Ticker)
		}
	})

	t.Run("offset past the end", func(t *testing.T) {
		resp := fetch("?offset=10&limit=2")
		if len(resp.Holdings) != 0 || resp.Remaining != 0 {
			t.Fatalf("unexpected page: %+v", resp)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+uuid.NewString()+"/holdings", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("stock listing pages", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/stocks?offset=1&limit=1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.StocksResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode stocks: %v", err)
		}
		if len(resp.Stocks) != 1 || resp.Remaining != 1 {
			t.Fatalf("unexpected page: %+v", resp)
		}
		if resp.Stocks[0].Ticker != "TSLA" {
			t.Fatalf("expected TSLA, got %s", resp.Stocks[0].Ticker)
		}
	})
}
