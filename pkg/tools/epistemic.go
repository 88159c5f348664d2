package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "epistemic_status",
		Description: "List, inspect, or measure the epistemic status (confidence/contestedness) of concepts.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action":      map[string]interface{}{"type": "string", "enum": []interface{}{"list", "show", "measure"}},
				"concept_id":  map[string]interface{}{"type": "string"},
				"sample_size": map[string]interface{}{"type": "integer"},
				"store":       map[string]interface{}{"type": "boolean"},
				"verbose":     map[string]interface{}{"type": "boolean"},
			},
			"required": []interface{}{"action"},
		},
		Actions: map[string]ActionBinding{
			"list":    epistemicList,
			"show":    epistemicShow,
			"measure": epistemicMeasure,
		},
	})
}

func epistemicList(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	l, err := deps.Backend.ListEpistemicStatus(ctx)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.EpistemicStatusList(l)}, nil
}

func epistemicShow(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "concept_id")
	if !ok {
		return Response{}, newError("epistemic_status.show requires concept_id")
	}
	e, err := deps.Backend.GetEpistemicStatus(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.EpistemicStatusEntry(e)}, nil
}

func epistemicMeasure(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "concept_id")
	if !ok {
		return Response{}, newError("epistemic_status.measure requires concept_id")
	}
	params := map[string]interface{}{
		"sample_size": intOr(args, "sample_size", 100),
		"store":       boolOr(args, "store", true),
		"verbose":     boolOr(args, "verbose", false),
	}
	m, err := deps.Backend.MeasureEpistemicStatus(ctx, id, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.EpistemicMeasurement(m)}, nil
}
