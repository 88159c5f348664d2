package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "concept",
		Description: "Inspect a concept's details, find related concepts, or find a connecting path between two concepts.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action":             map[string]interface{}{"type": "string", "enum": []interface{}{"details", "related", "connect"}},
				"concept_id":         map[string]interface{}{"type": "string"},
				"from_id":            map[string]interface{}{"type": "string"},
				"to_id":              map[string]interface{}{"type": "string"},
				"from_query":         map[string]interface{}{"type": "string"},
				"to_query":           map[string]interface{}{"type": "string"},
				"connection_mode":    map[string]interface{}{"type": "string", "enum": []interface{}{"exact", "semantic"}},
				"max_hops":           map[string]interface{}{"type": "integer"},
				"threshold":          map[string]interface{}{"type": "number"},
				"max_depth":          map[string]interface{}{"type": "integer"},
				"include_grounding":  map[string]interface{}{"type": "boolean"},
				"include_diversity":  map[string]interface{}{"type": "boolean"},
				"include_evidence":   map[string]interface{}{"type": "boolean"},
				"diversity_max_hops": map[string]interface{}{"type": "integer"},
				"truncate_evidence":  map[string]interface{}{"type": "boolean"},
			},
			"required": []interface{}{"action"},
		},
		Actions: map[string]ActionBinding{
			"details": conceptDetails,
			"related": conceptRelated,
			"connect": conceptConnect,
		},
	})
}

func conceptDetails(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "concept_id")
	if !ok {
		return Response{}, newError("concept.details requires concept_id")
	}
	truncateEvidence := boolOr(args, "truncate_evidence", true)
	params := map[string]interface{}{
		"include_grounding":  boolOr(args, "include_grounding", true),
		"include_diversity":  boolOr(args, "include_diversity", false),
		"diversity_max_hops": intOr(args, "diversity_max_hops", 2),
	}
	r, err := deps.Backend.GetConceptDetails(ctx, id, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.ConceptDetails(r, truncateEvidence)}, nil
}

func conceptRelated(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "concept_id")
	if !ok {
		return Response{}, newError("concept.related requires concept_id")
	}
	params := map[string]interface{}{
		"max_depth": intOr(args, "max_depth", 2),
	}
	r, err := deps.Backend.FindRelatedConcepts(ctx, id, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.RelatedConcepts(r)}, nil
}

func conceptConnect(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	mode := stringOr(args, "connection_mode", "semantic")
	params := map[string]interface{}{
		"max_hops":          intOr(args, "max_hops", 3),
		"threshold":         floatOr(args, "threshold", 0.75),
		"include_grounding": boolOr(args, "include_grounding", true),
		"include_evidence":  boolOr(args, "include_evidence", true),
	}

	var r *backend.ConnectionResult
	var err error
	if mode == "exact" {
		fromID, okFrom := getString(args, "from_id")
		toID, okTo := getString(args, "to_id")
		if !okFrom || !okTo {
			return Response{}, newError("concept.connect in exact mode requires from_id and to_id")
		}
		r, err = deps.Backend.FindConnection(ctx, fromID, toID, params)
	} else {
		fromQuery, okFrom := getString(args, "from_query")
		toQuery, okTo := getString(args, "to_query")
		if !okFrom || !okTo {
			return Response{}, newError("concept.connect in semantic mode requires from_query and to_query")
		}
		r, err = deps.Backend.FindConnectionBySearch(ctx, fromQuery, toQuery, params)
	}
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Connection(r, mode == "exact")}, nil
}
