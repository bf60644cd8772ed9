package generation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/study-summarizer/internal/llm"
	"github.com/jonathan/study-summarizer/internal/types"
)

//go:embed concept_graph.schema.json
var conceptGraphSchema string

// GraphParseError explains why a graph response could not be turned into a
// typed graph. It is a degradation signal, never a job failure: the caller
// logs it and records a nil concept map.
type GraphParseError struct {
	Reason string
	Cause  error
}

func (e *GraphParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("concept graph unusable: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("concept graph unusable: %s", e.Reason)
}

func (e *GraphParseError) Unwrap() error {
	return e.Cause
}

// ParseConceptGraph turns a free-form graph-call response into a typed graph.
// The contract is deliberately lenient: everything between the first '{' and
// the last '}' is treated as the candidate object, then parsed and checked
// against the structural schema (shape only; edge references are not
// validated here). Any failure along the way returns a GraphParseError.
func ParseConceptGraph(raw string) (*types.ConceptGraph, error) {
	candidate, ok := llm.ExtractJSONObject(raw)
	if !ok {
		return nil, &GraphParseError{Reason: "no JSON object boundary in response"}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(conceptGraphSchema),
		gojsonschema.NewStringLoader(candidate),
	)
	if err != nil {
		return nil, &GraphParseError{Reason: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, &GraphParseError{Reason: "response does not match the graph shape: " + strings.Join(details, "; ")}
	}

	var graph types.ConceptGraph
	if err := json.Unmarshal([]byte(candidate), &graph); err != nil {
		return nil, &GraphParseError{Reason: "failed to decode graph object", Cause: err}
	}
	return &graph, nil
}
