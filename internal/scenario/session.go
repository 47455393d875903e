package scenario

import (
	"fmt"

	"climate-scenarios/internal/market"
	"climate-scenarios/internal/model"
)

// Session is request-scoped state owned by the caller (the presentation
// layer), holding the last completed pass so a price-only change can reprice
// the cached set without regenerating it. It is not safe for concurrent use;
// the interaction model is one pass at a time.
type Session struct {
	last *Result
}

// Store records a completed pass.
func (s *Session) Store(r *Result) { s.last = r }

// Last returns the most recent pass, or nil.
func (s *Session) Last() *Result { return s.last }

// Reprice recomputes the market sizes for the cached set at a new CO2 price.
// Only the derived dollar figures change; the curves are reused as-is.
func (s *Session) Reprice(co2Price float64) (model.MarketSizeResult, error) {
	if s.last == nil || s.last.Set == nil {
		return model.MarketSizeResult{}, fmt.Errorf("no cached scenario set to reprice")
	}
	return market.Compute(s.last.Set, co2Price)
}
