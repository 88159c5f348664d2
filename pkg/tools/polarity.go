package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "analyze_polarity_axis",
		Description: "Discover or analyze an axis of opposing concepts (e.g. centralization vs. decentralization) and rank candidates along it.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"axis":           map[string]interface{}{"type": "string"},
				"auto_discover":  map[string]interface{}{"type": "boolean"},
				"max_candidates": map[string]interface{}{"type": "integer"},
				"max_hops":       map[string]interface{}{"type": "integer"},
			},
		},
		Actions: map[string]ActionBinding{
			"analyze_polarity_axis": polarityAnalyze,
		},
	})
}

func polarityAnalyze(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	params := map[string]interface{}{
		"axis":           stringOr(args, "axis", ""),
		"auto_discover":  boolOr(args, "auto_discover", true),
		"max_candidates": intOr(args, "max_candidates", 20),
		"max_hops":       intOr(args, "max_hops", 1),
	}
	r, err := deps.Backend.AnalyzePolarityAxis(ctx, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.PolarityAxis(r)}, nil
}
