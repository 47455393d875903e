package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"climate-scenarios/internal/api/models"
	"climate-scenarios/internal/model"

	"github.com/gin-gonic/gin"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewScenarioHandler(nil)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/scenarios", h.GenerateScenarios)
		v1.POST("/scenarios/market", h.RepriceMarket)
		v1.POST("/scenarios/compare", h.CompareScenarios)
		v1.GET("/strategies", NewStrategyHandler().ListStrategies)
		v1.GET("/datasets", ListDatasets)
	}
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error body: %v (%s)", err, rec.Body.String())
	}
	return resp.Error
}

func TestGenerateScenariosDefaults(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{})

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp models.ScenarioResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "completed" {
		t.Fatalf("status=%q", resp.Status)
	}
	if resp.Summary.Strategy != "curve" {
		t.Fatalf("strategy=%q, want curve default", resp.Summary.Strategy)
	}
	if resp.Summary.Points != model.SeriesLength {
		t.Fatalf("points=%d", resp.Summary.Points)
	}
	terms := resp.Summary.TerminalTemps
	if !(terms.BusinessAsUsual > terms.CutEmissionsAggressively &&
		terms.CutEmissionsAggressively > terms.EmissionsRemoval &&
		terms.EmissionsRemoval > terms.ClimateInterventions) {
		t.Fatalf("terminal temps not descending: %+v", terms)
	}
	if resp.Summary.Markets.EmissionsRemovalUSD < 0 {
		t.Fatalf("negative market: %+v", resp.Summary.Markets)
	}
	if resp.Series != nil {
		t.Fatal("series should be omitted unless requested")
	}
}

func TestGenerateScenariosIncludeSeries(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{
		Options: models.ScenarioOptions{IncludeSeries: true},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp models.ScenarioResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Series == nil {
		t.Fatal("series missing")
	}
	if len(resp.Series.Years) != model.SeriesLength || len(resp.Series.BusinessAsUsual) != model.SeriesLength {
		t.Fatalf("series lengths: years=%d bau=%d", len(resp.Series.Years), len(resp.Series.BusinessAsUsual))
	}
}

func TestGenerateScenariosExplicitZeroDuration(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{
		Parameters: models.ParametersPayload{InterventionDuration: iptr(0)},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp models.ScenarioResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	got := resp.Summary.Parameters.InterventionDuration
	if got == nil || *got != 0 {
		t.Fatalf("intervention_duration=%v, want explicit 0 honored", got)
	}
}

func TestGenerateScenariosExplicitZeroPrice(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{
		Parameters: models.ParametersPayload{CO2Price: f64(0)},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp models.ScenarioResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	price := resp.Summary.Parameters.CO2Price
	if price == nil || *price != 0 {
		t.Fatalf("co2_price=%v, want explicit 0 honored", price)
	}
	if resp.Summary.Markets.EmissionsRemovalUSD != 0 || resp.Summary.Markets.ClimateInterventionsUSD != 0 {
		t.Fatalf("zero price should yield zero-dollar markets: %+v", resp.Summary.Markets)
	}
}

func TestGenerateScenariosInvalidStrategy(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{
		Strategy: models.StrategyConfig{Name: "quantum"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	if detail := decodeError(t, rec); detail.Code != "INVALID_STRATEGY" {
		t.Fatalf("code=%q", detail.Code)
	}
}

func TestGenerateScenariosInvalidParameters(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{
		Parameters: models.ParametersPayload{CO2Price: f64(-5)},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	if detail := decodeError(t, rec); detail.Code != "INVALID_PARAMETERS" {
		t.Fatalf("code=%q", detail.Code)
	}
}

func TestGenerateScenariosModelRequiresKey(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{
		Strategy: models.StrategyConfig{Name: "model"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	if detail := decodeError(t, rec); detail.Code != "INVALID_API_KEY" {
		t.Fatalf("code=%q", detail.Code)
	}
}

func TestGenerateScenariosUnknownDataset(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{
		Strategy: models.StrategyConfig{
			Name:   "reference",
			Params: map[string]any{"dataset": "nonexistent"},
		},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if detail := decodeError(t, rec); detail.Code != "UNKNOWN_DATASET" {
		t.Fatalf("code=%q", detail.Code)
	}
}

func TestRepriceMarket(t *testing.T) {
	router := newTestRouter()

	// Generate a set first, then send it back at a new price.
	rec := postJSON(t, router, "/api/v1/scenarios", models.ScenarioRequest{
		Options: models.ScenarioOptions{IncludeSeries: true},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status=%d", rec.Code)
	}
	var genResp models.ScenarioResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &genResp); err != nil {
		t.Fatal(err)
	}

	rec = postJSON(t, router, "/api/v1/scenarios/market", models.MarketRequest{
		CO2Price:  100,
		Scenarios: *genResp.Series,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("reprice status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp models.MarketResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.CO2Price != 100 {
		t.Fatalf("co2_price=%f", resp.CO2Price)
	}
	// Defaults price at 50; doubling the price roughly doubles the figure.
	if resp.Markets.EmissionsRemovalUSD <= genResp.Summary.Markets.EmissionsRemovalUSD {
		t.Fatalf("repriced market should grow with price: %f vs %f",
			resp.Markets.EmissionsRemovalUSD, genResp.Summary.Markets.EmissionsRemovalUSD)
	}
}

func TestRepriceMarketZeroPrice(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios/market", models.MarketRequest{
		CO2Price: 0,
		Scenarios: models.SeriesPayload{
			BusinessAsUsual:          make([]float64, 100),
			CutEmissionsAggressively: make([]float64, 100),
			EmissionsRemoval:         make([]float64, 100),
			ClimateInterventions:     make([]float64, 100),
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("zero price should be accepted: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp models.MarketResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Markets.EmissionsRemovalUSD != 0 || resp.Markets.ClimateInterventionsUSD != 0 {
		t.Fatalf("markets at zero price: %+v", resp.Markets)
	}
}

func TestRepriceMarketRejectsBadPrice(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios/market", models.MarketRequest{
		CO2Price: 5000,
		Scenarios: models.SeriesPayload{
			BusinessAsUsual:          make([]float64, 100),
			CutEmissionsAggressively: make([]float64, 100),
			EmissionsRemoval:         make([]float64, 100),
			ClimateInterventions:     make([]float64, 100),
		},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	if detail := decodeError(t, rec); detail.Code != "INVALID_PARAMETERS" {
		t.Fatalf("code=%q", detail.Code)
	}
}

func TestRepriceMarketRejectsMismatchedSeries(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios/market", models.MarketRequest{
		CO2Price: 100,
		Scenarios: models.SeriesPayload{
			BusinessAsUsual:          make([]float64, 100),
			CutEmissionsAggressively: make([]float64, 100),
			EmissionsRemoval:         make([]float64, 50),
			ClimateInterventions:     make([]float64, 100),
		},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	if detail := decodeError(t, rec); detail.Code != "INVALID_SERIES" {
		t.Fatalf("code=%q", detail.Code)
	}
}

func TestCompareScenarios(t *testing.T) {
	router := newTestRouter()
	rec := postJSON(t, router, "/api/v1/scenarios/compare", models.CompareRequest{
		Variations: []models.ScenarioVariation{
			{Name: "curves", Strategy: models.StrategyConfig{Name: "curve"}},
			{Name: "pathways", Strategy: models.StrategyConfig{Name: "reference"}},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp models.CompareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Comparison) != 2 {
		t.Fatalf("comparison count=%d", len(resp.Comparison))
	}
	if resp.Comparison[0].Name != "curves" || resp.Comparison[1].Name != "pathways" {
		t.Fatalf("names: %q, %q", resp.Comparison[0].Name, resp.Comparison[1].Name)
	}
	if resp.Comparison[0].Summary.Strategy != "curve" || resp.Comparison[1].Summary.Strategy != "reference" {
		t.Fatalf("strategies: %q, %q", resp.Comparison[0].Summary.Strategy, resp.Comparison[1].Summary.Strategy)
	}
}

func TestListStrategies(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var resp struct {
		Strategies []models.StrategyInfo `json:"strategies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Strategies) != 3 {
		t.Fatalf("strategies=%d, want 3", len(resp.Strategies))
	}
}

func TestListDatasets(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var resp struct {
		Datasets []models.DatasetInfo `json:"datasets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Datasets) < 2 {
		t.Fatalf("datasets=%d", len(resp.Datasets))
	}
	for _, d := range resp.Datasets {
		if d.ID == "" || len(d.Columns) == 0 {
			t.Fatalf("incomplete dataset info: %+v", d)
		}
	}
}
