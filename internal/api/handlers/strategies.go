package handlers

import (
	"net/http"

	"climate-scenarios/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler serves strategy metadata.
type StrategyHandler struct{}

func NewStrategyHandler() *StrategyHandler { return &StrategyHandler{} }

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "curve",
			Description: "Synthesize the four trajectories from closed-form curve families (power, exponential, logarithmic, two-phase)",
			Parameters: []models.ParameterInfo{
				{Name: "start_temp", Type: "float", Description: "Warming at year 0, °C above pre-industrial", Default: 1.2},
				{Name: "bau_end", Type: "float", Description: "Business-as-usual warming at the terminal year", Default: 4.8},
				{Name: "bau_shape", Type: "string", Description: "Curve family for the baseline: power, linear, exponential, logarithmic", Default: "power"},
				{Name: "bau_exponent", Type: "float", Description: "Exponent when bau_shape is power", Default: 1.3},
				{Name: "intervention_target", Type: "float", Description: "Warming level the intervention window blends toward", Default: 1.0},
			},
		},
		{
			Name:        "reference",
			Description: "Interpolate published reference pathways and rescale them by a price-derived factor",
			Parameters: []models.ParameterInfo{
				{Name: "dataset", Type: "string", Description: "Reference dataset key (see /api/v1/datasets)", Default: "ssp_pathways"},
				{Name: "intervention_target", Type: "float", Description: "Warming level the intervention window blends toward", Default: 1.0},
			},
		},
		{
			Name:        "model",
			Description: "Ask a language model to fabricate the series from the control parameters (requires api_key)",
			Parameters:  []models.ParameterInfo{},
		},
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
