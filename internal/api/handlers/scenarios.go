package handlers

import (
	"errors"
	"net/http"

	"climate-scenarios/internal/api/models"
	"climate-scenarios/internal/config"
	"climate-scenarios/internal/llm"
	"climate-scenarios/internal/market"
	"climate-scenarios/internal/model"
	"climate-scenarios/internal/refdata"
	"climate-scenarios/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario generation requests.
type ScenarioHandler struct {
	defaults   config.ParametersConfig
	strictness scenario.Strictness
}

// NewScenarioHandler creates a handler. cfg may be nil, in which case the
// built-in defaults apply.
func NewScenarioHandler(cfg *config.Config) *ScenarioHandler {
	h := &ScenarioHandler{
		defaults:   config.FromModelParams(model.DefaultControlParameters()),
		strictness: scenario.Lenient,
	}
	if cfg != nil {
		h.defaults = cfg.Parameters
		if s, err := scenario.ParseStrictness(cfg.Normalizer.Strictness); err == nil {
			h.strictness = s
		}
	}
	return h
}

// GenerateScenarios handles POST /api/v1/scenarios.
func (h *ScenarioHandler) GenerateScenarios(c *gin.Context) {
	var req models.ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	result, ok := h.runPass(c, req.Strategy, req.Parameters, req.APIKey)
	if !ok {
		return
	}

	resp := models.ScenarioResponse{
		Status:  "completed",
		Summary: buildSummary(result),
	}
	if req.Options.IncludeSeries {
		resp.Series = buildSeriesPayload(result.Set)
	}
	c.JSON(http.StatusOK, resp)
}

// RepriceMarket handles POST /api/v1/scenarios/market: recompute the market
// sizes for a client-cached set at a new CO2 price.
func (h *ScenarioHandler) RepriceMarket(c *gin.Context) {
	var req models.MarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}
	if req.CO2Price < 0 || req.CO2Price > 1000 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_PARAMETERS", Message: "co2_price must be in [0, 1000]"},
		})
		return
	}

	set := setFromPayload(req.Scenarios)
	markets, err := market.Compute(set, req.CO2Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_SERIES", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, models.MarketResponse{
		CO2Price: req.CO2Price,
		Markets:  buildMarketSizes(markets),
	})
}

// CompareScenarios handles POST /api/v1/scenarios/compare: run several
// strategy variations against the same parameters.
func (h *ScenarioHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		result, ok := h.runPass(c, variation.Strategy, req.Parameters, req.APIKey)
		if !ok {
			return
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(result),
		})
	}
	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// runPass builds the strategy and runs one generation pass, writing the error
// response itself on failure.
func (h *ScenarioHandler) runPass(c *gin.Context, strat models.StrategyConfig, payload models.ParametersPayload, apiKey string) (*scenario.Result, bool) {
	params := overrideParameters(h.defaults.ToModelParams(), payload)
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_PARAMETERS", Message: err.Error()},
		})
		return nil, false
	}

	var caller llm.Caller
	if strat.Name == "model" {
		ac, err := llm.NewAnthropicCaller(apiKey)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "INVALID_API_KEY", Message: err.Error()},
			})
			return nil, false
		}
		caller = ac
	}

	built, err := scenario.BuildStrategy(strat.Name, scenario.Params(strat.Params), h.strictness, caller)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_STRATEGY", Message: err.Error()},
		})
		return nil, false
	}

	result, err := scenario.Run(c.Request.Context(), built, params)
	if err != nil {
		writeRunError(c, err)
		return nil, false
	}
	return result, true
}

// writeRunError maps generation-pass failures to status codes.
func writeRunError(c *gin.Context, err error) {
	var malformed *llm.MalformedPayloadError
	if errors.As(err, &malformed) {
		raw := malformed.Raw
		if len(raw) > 2000 {
			raw = raw[:2000]
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MALFORMED_MODEL_OUTPUT",
				Message: malformed.Error(),
				Details: map[string]any{"raw": raw},
			},
		})
		return
	}
	var missing *scenario.MissingScenarioError
	if errors.As(err, &missing) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_SCENARIO",
				Message: missing.Error(),
				Details: map[string]any{"scenario": missing.Scenario.Label()},
			},
		})
		return
	}
	var cfgErr *refdata.ConfigurationError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_DATASET",
				Message: cfgErr.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "GENERATION_ERROR", Message: err.Error()},
	})
}

// Conversion helpers.

func buildSummary(r *scenario.Result) models.ScenarioSummary {
	terms := r.Set.TerminalValues()
	return models.ScenarioSummary{
		Strategy:   r.Strategy,
		Points:     model.SeriesLength,
		Parameters: toParametersPayload(r.Params),
		TerminalTemps: models.TerminalTemps{
			BusinessAsUsual:          terms[model.BusinessAsUsual.Rank()],
			CutEmissionsAggressively: terms[model.CutEmissionsAggressively.Rank()],
			EmissionsRemoval:         terms[model.EmissionsRemoval.Rank()],
			ClimateInterventions:     terms[model.ClimateInterventions.Rank()],
		},
		Markets:  buildMarketSizes(r.Markets),
		Warnings: r.Warnings,
	}
}

func buildMarketSizes(m model.MarketSizeResult) models.MarketSizes {
	return models.MarketSizes{
		EmissionsRemovalUSD:          m.EmissionsRemovalUSD,
		ClimateInterventionsUSD:      m.ClimateInterventionsUSD,
		EmissionsRemovalBillions:     m.EmissionsRemovalUSD / 1e9,
		ClimateInterventionsBillions: m.ClimateInterventionsUSD / 1e9,
	}
}

func buildSeriesPayload(set *model.ScenarioSet) *models.SeriesPayload {
	years := make([]int, model.SeriesLength)
	for i := range years {
		years[i] = i
	}
	return &models.SeriesPayload{
		Years:                    years,
		BusinessAsUsual:          set.BusinessAsUsual,
		CutEmissionsAggressively: set.CutEmissionsAggressively,
		EmissionsRemoval:         set.EmissionsRemoval,
		ClimateInterventions:     set.ClimateInterventions,
	}
}

// overrideParameters applies the fields the request actually sent onto the
// configured defaults. Absence is nil, so an explicit zero survives: a
// request with intervention_duration 0 runs with no intervention window.
func overrideParameters(base model.ControlParameters, p models.ParametersPayload) model.ControlParameters {
	if p.CO2Price != nil {
		base.CO2Price = *p.CO2Price
	}
	if p.YearsToReduce != nil {
		base.YearsToReduce = *p.YearsToReduce
	}
	if p.InterventionTemp != nil {
		base.InterventionTemp = *p.InterventionTemp
	}
	if p.InterventionDuration != nil {
		base.InterventionDuration = *p.InterventionDuration
	}
	return base
}

func toParametersPayload(p model.ControlParameters) models.ParametersPayload {
	return models.ParametersPayload{
		CO2Price:             &p.CO2Price,
		YearsToReduce:        &p.YearsToReduce,
		InterventionTemp:     &p.InterventionTemp,
		InterventionDuration: &p.InterventionDuration,
	}
}

func setFromPayload(p models.SeriesPayload) *model.ScenarioSet {
	return &model.ScenarioSet{
		BusinessAsUsual:          p.BusinessAsUsual,
		CutEmissionsAggressively: p.CutEmissionsAggressively,
		EmissionsRemoval:         p.EmissionsRemoval,
		ClimateInterventions:     p.ClimateInterventions,
	}
}
