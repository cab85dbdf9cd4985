package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/api/request"
	"finance-tracker/internal/marketdata"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/internal/testutil"
	"finance-tracker/internal/yahoo"
)

func setupInvestmentHandler(t *testing.T) (*InvestmentHandler, *sql.DB, *testutil.MockEquityClient) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	equity := testutil.NewMockEquityClient()
	gateway := marketdata.NewGateway(
		equity,
		testutil.NewMockCryptoClient(),
		marketdata.NewQuoteCache(marketdata.DefaultCacheTTL, nil),
		marketdata.NewThrottle(0),
		nil,
	)

	svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), gateway)
	return NewInvestmentHandler(svc), db, equity
}

func TestInvestmentHandler_CreateInvestment(t *testing.T) {
	t.Run("creates investment successfully", func(t *testing.T) {
		handler, _, _ := setupInvestmentHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/investment", request.CreateInvestmentRequest{
			Symbol:     "AAPL",
			Name:       "Apple Inc.",
			AssetClass: model.AssetClassEquity,
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateInvestment(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Investment
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Symbol != "AAPL" {
			t.Errorf("Expected symbol AAPL, got %s", response.Symbol)
		}
		if response.Quantity != 0 || response.AverageCost != 0 {
			t.Errorf("Expected empty position, got qty=%v avg=%v", response.Quantity, response.AverageCost)
		}
	})

	t.Run("returns 409 for duplicate symbol", func(t *testing.T) {
		handler, db, _ := setupInvestmentHandler(t)
		testutil.NewInvestment().WithSymbol("AAPL").Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/investment", request.CreateInvestmentRequest{
			Symbol:     "AAPL",
			Name:       "Apple again",
			AssetClass: model.AssetClassEquity,
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateInvestment(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for unknown asset class", func(t *testing.T) {
		handler, _, _ := setupInvestmentHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/investment", request.CreateInvestmentRequest{
			Symbol:     "AAPL",
			Name:       "Apple Inc.",
			AssetClass: "bond",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateInvestment(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestInvestmentHandler_RecordLot(t *testing.T) {
	t.Run("records lot and returns updated position", func(t *testing.T) {
		handler, db, _ := setupInvestmentHandler(t)
		investment := testutil.NewInvestment().WithSymbol("AAPL").Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost,
			"/api/investment/"+investment.ID+"/lots",
			request.RecordLotRequest{Type: model.LotTypeBuy, Quantity: 10, PricePerUnit: 100, Fees: 5},
			map[string]string{"uuid": investment.ID},
		)
		w := httptest.NewRecorder()

		handler.RecordLot(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Investment
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Quantity != 10 {
			t.Errorf("Expected quantity 10, got %v", response.Quantity)
		}
		if response.AverageCost != 100.5 {
			t.Errorf("Expected average cost 100.5, got %v", response.AverageCost)
		}
	})

	t.Run("returns 400 for non-positive quantity", func(t *testing.T) {
		handler, db, _ := setupInvestmentHandler(t)
		investment := testutil.NewInvestment().Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost,
			"/api/investment/"+investment.ID+"/lots",
			request.RecordLotRequest{Type: model.LotTypeBuy, Quantity: 0, PricePerUnit: 100},
			map[string]string{"uuid": investment.ID},
		)
		w := httptest.NewRecorder()

		handler.RecordLot(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for unknown investment", func(t *testing.T) {
		handler, _, _ := setupInvestmentHandler(t)
		id := testutil.MakeID()

		req := testutil.NewJSONRequest(t, http.MethodPost,
			"/api/investment/"+id+"/lots",
			request.RecordLotRequest{Type: model.LotTypeBuy, Quantity: 1, PricePerUnit: 1},
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.RecordLot(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestInvestmentHandler_History(t *testing.T) {
	t.Run("returns 400 for unknown timeframe", func(t *testing.T) {
		handler, db, _ := setupInvestmentHandler(t)
		investment := testutil.NewInvestment().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/investment/"+investment.ID+"/history?timeframe=5y",
			map[string]string{"uuid": investment.ID},
		)
		w := httptest.NewRecorder()

		handler.History(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("falls back to synthetic series when upstream fails", func(t *testing.T) {
		handler, db, _ := setupInvestmentHandler(t)
		investment := testutil.NewInvestment().WithSymbol("AAPL").Build(t, db)

		// The mock has no chart configured, so the fetch yields nothing
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/investment/"+investment.ID+"/history",
			map[string]string{"uuid": investment.ID},
		)
		w := httptest.NewRecorder()

		handler.History(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []marketdata.PricePoint
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) == 0 {
			t.Error("Expected non-empty price series")
		}
	})
}

func TestInvestmentHandler_PortfolioSummary(t *testing.T) {
	t.Run("returns summary with degraded positions", func(t *testing.T) {
		handler, db, equity := setupInvestmentHandler(t)
		testutil.NewInvestment().WithSymbol("A").WithPosition(2, 100).Build(t, db)
		testutil.NewInvestment().WithSymbol("B").WithPosition(1, 50).Build(t, db)

		equity.Summaries["A"] = yahoo.Summary{Symbol: "A", RegularMarketPrice: 150, PreviousClose: 148}

		req := httptest.NewRequest(http.MethodGet, "/api/investment/portfolio/summary", nil)
		w := httptest.NewRecorder()

		handler.PortfolioSummary(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.PortfolioSummary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.TotalValue != 300 {
			t.Errorf("Expected total value 300, got %v", response.TotalValue)
		}
		if len(response.Positions) != 2 {
			t.Errorf("Expected 2 positions, got %d", len(response.Positions))
		}
	})
}
