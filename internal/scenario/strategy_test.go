package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"climate-scenarios/internal/llm"
	"climate-scenarios/internal/model"
)

func defaultRun(t *testing.T, strat Strategy) *Result {
	t.Helper()
	res, err := Run(context.Background(), strat, model.DefaultControlParameters())
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func assertWellFormedSet(t *testing.T, set *model.ScenarioSet) {
	t.Helper()
	for _, s := range model.Scenarios() {
		series := set.Series(s)
		if len(series) != model.SeriesLength {
			t.Fatalf("%s has %d samples, want %d", s.Label(), len(series), model.SeriesLength)
		}
		for i, v := range series {
			if v < ClampLow || v > ClampHigh {
				t.Fatalf("%s[%d]=%f outside [%f, %f]", s.Label(), i, v, ClampLow, ClampHigh)
			}
		}
	}
	assertDescendingTerminals(t, set)
}

func TestCurveStrategyDefaults(t *testing.T) {
	res := defaultRun(t, &CurveStrategy{})

	assertWellFormedSet(t, res.Set)
	if len(res.Warnings) != 0 {
		t.Fatalf("defaults should not need correction, got warnings: %v", res.Warnings)
	}
	if res.Markets.EmissionsRemovalUSD < 0 || res.Markets.ClimateInterventionsUSD < 0 {
		t.Fatalf("negative market size: %+v", res.Markets)
	}
	if res.Markets.ClimateInterventionsUSD == 0 {
		t.Fatal("interventions market should be nonzero under defaults")
	}
}

func TestCurveStrategyPriceSuppressesRemovalTerminal(t *testing.T) {
	low := model.DefaultControlParameters()
	low.CO2Price = 10
	high := model.DefaultControlParameters()
	high.CO2Price = 500

	strat := &CurveStrategy{}
	lowRes, err := Run(context.Background(), strat, low)
	if err != nil {
		t.Fatal(err)
	}
	highRes, err := Run(context.Background(), strat, high)
	if err != nil {
		t.Fatal(err)
	}
	if highRes.Set.EmissionsRemoval.Last() >= lowRes.Set.EmissionsRemoval.Last() {
		t.Fatalf("higher price should lower the removal terminal: %f vs %f",
			highRes.Set.EmissionsRemoval.Last(), lowRes.Set.EmissionsRemoval.Last())
	}
}

func TestCurveStrategyBadShapeParam(t *testing.T) {
	strat := &CurveStrategy{Params: Params{"bau_shape": "sinusoidal"}}
	_, err := Run(context.Background(), strat, model.DefaultControlParameters())
	if err == nil {
		t.Fatal("expected error for unknown curve family")
	}
}

func TestReferenceStrategyDefaults(t *testing.T) {
	res := defaultRun(t, &ReferenceStrategy{})
	assertWellFormedSet(t, res.Set)
	if res.Strategy != "reference" {
		t.Fatalf("strategy name=%q", res.Strategy)
	}
}

func TestReferenceStrategyUnknownDataset(t *testing.T) {
	strat := &ReferenceStrategy{Params: Params{"dataset": "nonexistent"}}
	_, err := Run(context.Background(), strat, model.DefaultControlParameters())
	if err == nil {
		t.Fatal("expected error for unknown dataset")
	}
}

// fakeCaller satisfies llm.Caller without touching the network.
type fakeCaller struct {
	reply string
	err   error
}

func (f *fakeCaller) GenerateScenarios(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

func fakePayload() string {
	nums := func(start, end float64) string {
		parts := make([]string, model.SeriesLength)
		for i := range parts {
			t := float64(i) / float64(model.SeriesLength-1)
			parts[i] = fmt.Sprintf("%.3f", start+t*(end-start))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf(`{
  "business_as_usual": [%s],
  "cut_emissions_aggressively": [%s],
  "emissions_removal": [%s],
  "climate_interventions": [%s]
}`, nums(1.2, 4.5), nums(1.2, 1.8), nums(1.2, 1.4), nums(1.2, 1.0))
}

func TestModelStrategyParsesReply(t *testing.T) {
	strat := &ModelStrategy{
		Caller:     &fakeCaller{reply: "```json\n" + fakePayload() + "\n```"},
		Strictness: Strict,
	}
	res := defaultRun(t, strat)
	assertWellFormedSet(t, res.Set)
}

func TestModelStrategyMalformedReply(t *testing.T) {
	strat := &ModelStrategy{
		Caller: &fakeCaller{reply: "I'm sorry, I can't produce that table."},
	}
	_, err := Run(context.Background(), strat, model.DefaultControlParameters())
	var malformed *llm.MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %v", err)
	}
}

func TestModelStrategyCallerFailure(t *testing.T) {
	strat := &ModelStrategy{
		Caller: &fakeCaller{err: errors.New("connection refused")},
	}
	_, err := Run(context.Background(), strat, model.DefaultControlParameters())
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected wrapped caller error, got %v", err)
	}
}

func TestRunRejectsInvalidParameters(t *testing.T) {
	params := model.DefaultControlParameters()
	params.CO2Price = -5
	if _, err := Run(context.Background(), &CurveStrategy{}, params); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestBuildStrategy(t *testing.T) {
	if s, err := BuildStrategy("", nil, Lenient, nil); err != nil || s.Name() != "curve" {
		t.Fatalf("empty name should default to curve, got %v %v", s, err)
	}
	if _, err := BuildStrategy("model", nil, Lenient, nil); err == nil {
		t.Fatal("model strategy without caller should fail")
	}
	if s, err := BuildStrategy("model", nil, Lenient, &fakeCaller{}); err != nil || s.Name() != "model" {
		t.Fatalf("model strategy with caller: %v %v", s, err)
	}
	if _, err := BuildStrategy("quantum", nil, Lenient, nil); err == nil {
		t.Fatal("expected error for unsupported strategy")
	}
}

func TestSessionReprice(t *testing.T) {
	var session Session
	if _, err := session.Reprice(75); err == nil {
		t.Fatal("reprice before any run should fail")
	}

	res := defaultRun(t, &CurveStrategy{})
	session.Store(res)

	markets, err := session.Reprice(res.Params.CO2Price * 2)
	if err != nil {
		t.Fatal(err)
	}
	if markets.ClimateInterventionsUSD <= res.Markets.ClimateInterventionsUSD {
		t.Fatalf("doubling the price should grow the market: %f vs %f",
			markets.ClimateInterventionsUSD, res.Markets.ClimateInterventionsUSD)
	}
}
