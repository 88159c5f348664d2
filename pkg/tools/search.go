package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:             "search",
		Description:      "Search the knowledge graph for concepts, sources, or documents by semantic similarity.",
		DiscriminatorKey: "type",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query":              map[string]interface{}{"type": "string"},
				"type":               map[string]interface{}{"type": "string", "enum": []interface{}{"concepts", "sources", "documents"}, "default": "concepts"},
				"limit":              map[string]interface{}{"type": "integer"},
				"min_similarity":     map[string]interface{}{"type": "number"},
				"offset":             map[string]interface{}{"type": "integer"},
				"include_grounding":  map[string]interface{}{"type": "boolean"},
				"include_evidence":   map[string]interface{}{"type": "boolean"},
				"include_diversity":  map[string]interface{}{"type": "boolean"},
				"diversity_max_hops": map[string]interface{}{"type": "integer"},
			},
			"required": []interface{}{"query"},
		},
		Actions: map[string]ActionBinding{
			"search": searchDispatch,
		},
	})
}

// searchDispatch is the single implicit action for the search tool; the
// sub-operation is chosen by the "type" discriminator rather than "action".
func searchDispatch(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	query, _ := getString(args, "query")
	searchType := stringOr(args, "type", "concepts")

	params := map[string]interface{}{
		"limit":              intOr(args, "limit", 10),
		"min_similarity":     floatOr(args, "min_similarity", 0.7),
		"offset":             intOr(args, "offset", 0),
		"include_grounding":  boolOr(args, "include_grounding", true),
		"include_evidence":   boolOr(args, "include_evidence", true),
		"include_diversity":  boolOr(args, "include_diversity", true),
		"diversity_max_hops": intOr(args, "diversity_max_hops", 2),
	}

	switch searchType {
	case "sources":
		r, err := deps.Backend.SearchSources(ctx, query, params)
		if err != nil {
			return Response{}, err
		}
		return Response{Text: format.SearchResults(r)}, nil
	case "documents":
		r, err := deps.Backend.SearchDocuments(ctx, query, params)
		if err != nil {
			return Response{}, err
		}
		return Response{Text: format.SearchResults(r)}, nil
	default:
		r, err := deps.Backend.SearchConcepts(ctx, query, params)
		if err != nil {
			return Response{}, err
		}
		return Response{Text: format.SearchResults(r)}, nil
	}
}
