package llm

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"climate-scenarios/internal/model"
)

// MalformedPayloadError reports model output that could not be decoded into
// four numeric lists even after the repair pass. The raw text is attached for
// diagnosis; the generation pass aborts and no partial set is returned.
type MalformedPayloadError struct {
	Raw string
	Err error
}

func (e *MalformedPayloadError) Error() string {
	excerpt := e.Raw
	if len(excerpt) > 120 {
		excerpt = excerpt[:120] + "..."
	}
	return fmt.Sprintf("malformed scenario payload: %v (raw: %q)", e.Err, excerpt)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// ParseScenarioPayload decodes a block of model-generated text into a
// name-to-series mapping. The payload is untrusted: it is decoded into
// numeric containers only, never evaluated. Decoding is attempted as-is
// first, then once more after a permissive quote-normalization repair pass;
// anything still unparsable, or structurally wrong (key count other than
// four, non-list values, non-numeric elements), fails with
// MalformedPayloadError.
func ParseScenarioPayload(raw string) (map[string][]float64, error) {
	text := stripCodeFences(raw)
	if strings.TrimSpace(text) == "" {
		return nil, &MalformedPayloadError{Raw: raw, Err: fmt.Errorf("empty response")}
	}

	out, err := decodeScenarioObject(text)
	if err != nil {
		repaired := normalizeQuotes(text)
		out, err = decodeScenarioObject(repaired)
		if err != nil {
			return nil, &MalformedPayloadError{Raw: raw, Err: err}
		}
	}

	if len(out) != model.ScenarioCount {
		return nil, &MalformedPayloadError{Raw: raw, Err: fmt.Errorf("expected %d scenarios, got %d", model.ScenarioCount, len(out))}
	}
	return out, nil
}

func decodeScenarioObject(text string) (map[string][]float64, error) {
	var out map[string][]float64
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("payload is not a JSON object")
	}
	// The reply must be exactly one object. Anything after it means the
	// decode grabbed a prefix of prose or a second value, not the payload.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after scenario object")
	}
	return out, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.SplitN(s, "\n", 2)
		if len(parts) == 2 {
			s = parts[1]
		}
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

// normalizeQuotes rewrites single-quoted strings to double-quoted and drops
// trailing commas before closing brackets. It only touches text outside
// double-quoted regions, so legitimate apostrophes inside values survive.
func normalizeQuotes(s string) string {
	var b strings.Builder
	inDouble := false
	inSingle := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"' && !inSingle:
			inDouble = !inDouble
			b.WriteRune(r)
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			b.WriteRune('"')
		case r == ',' && !inDouble && !inSingle:
			// Drop the comma if the next non-space rune closes a container.
			j := i + 1
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\n' || runes[j] == '\t' || runes[j] == '\r') {
				j++
			}
			if j < len(runes) && (runes[j] == ']' || runes[j] == '}') {
				continue
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
