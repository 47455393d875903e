package scenario

import (
	"context"
	"fmt"

	"climate-scenarios/internal/llm"
	"climate-scenarios/internal/model"
)

// ModelStrategy asks a language model to fabricate the four series from a
// natural-language prompt, then parses the reply defensively. Model output is
// the least trustworthy source, so normalization defaults to lenient: missing
// scenarios are synthesized rather than failing the pass.
type ModelStrategy struct {
	Caller     llm.Caller
	Strictness Strictness
}

func (s *ModelStrategy) Name() string { return "model" }

func (s *ModelStrategy) Generate(ctx context.Context, p model.ControlParameters) (*model.ScenarioSet, []string, error) {
	if s.Caller == nil {
		return nil, nil, fmt.Errorf("model strategy requires a configured caller")
	}
	raw, err := s.Caller.GenerateScenarios(ctx, llm.BuildPrompt(p))
	if err != nil {
		return nil, nil, fmt.Errorf("scenario generation request: %w", err)
	}
	candidate, err := llm.ParseScenarioPayload(raw)
	if err != nil {
		return nil, nil, err
	}
	return NormalizeSet(candidate, s.Strictness)
}
