package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

const maxQueueOperations = 20

func init() {
	register(&Descriptor{
		Name:        "graph",
		Description: "Create, edit, delete, or list concepts and edges directly, or submit a batch of such operations as a queue.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action":     map[string]interface{}{"type": "string", "enum": []interface{}{"create", "edit", "delete", "list", "queue"}},
				"entity":     map[string]interface{}{"type": "string", "enum": []interface{}{"concept", "edge"}},
				"id":         map[string]interface{}{"type": "string"},
				"category":   map[string]interface{}{"type": "string"},
				"confidence": map[string]interface{}{"type": "number"},
				"from_id":    map[string]interface{}{"type": "string"},
				"to_id":      map[string]interface{}{"type": "string"},
				"from_label": map[string]interface{}{"type": "string"},
				"to_label":   map[string]interface{}{"type": "string"},
				"label":      map[string]interface{}{"type": "string"},
				"fields": map[string]interface{}{
					"type": "object",
				},
				"operations": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "object"},
				},
				"continue_on_error": map[string]interface{}{"type": "boolean"},
			},
			"required": []interface{}{"action"},
		},
		Actions: map[string]ActionBinding{
			"create": graphCreate,
			"edit":   graphEdit,
			"delete": graphDelete,
			"list":   graphList,
			"queue":  graphQueue,
		},
	})
}

func graphFields(args map[string]interface{}) map[string]interface{} {
	if f, ok := args["fields"].(map[string]interface{}); ok {
		return f
	}
	return mapOfNonCoreParams(args, "action", "entity", "id", "operations", "continue_on_error")
}

func graphCreate(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	entity, ok := getString(args, "entity")
	if !ok {
		return Response{}, newError("graph.create requires entity")
	}
	fields := graphFields(args)
	if entity == "edge" {
		if _, ok := fields["category"]; !ok {
			fields["category"] = "structural"
		}
		if _, ok := fields["confidence"]; !ok {
			fields["confidence"] = 1.0
		}
	}
	e, err := deps.Backend.GraphCreate(ctx, entity, fields)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.GraphEntity(e)}, nil
}

func graphEdit(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	entity, ok := getString(args, "entity")
	if !ok {
		return Response{}, newError("graph.edit requires entity")
	}
	id, ok := getString(args, "id")
	if !ok {
		return Response{}, newError("graph.edit requires id")
	}
	e, err := deps.Backend.GraphEdit(ctx, entity, id, graphFields(args))
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.GraphEntity(e)}, nil
}

func graphDelete(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	entity, ok := getString(args, "entity")
	if !ok {
		return Response{}, newError("graph.delete requires entity")
	}
	id, ok := getString(args, "id")
	if !ok {
		return Response{}, newError("graph.delete requires id")
	}
	if err := deps.Backend.GraphDelete(ctx, entity, id); err != nil {
		return Response{}, err
	}
	return Response{Text: "Deleted " + entity + " " + id + "."}, nil
}

func graphList(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	entity, ok := getString(args, "entity")
	if !ok {
		return Response{}, newError("graph.list requires entity")
	}
	l, err := deps.Backend.GraphList(ctx, entity)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.GraphList(l)}, nil
}

// graphQueue runs a batch of create/edit/delete operations in strict
// array order (§5's ordering guarantee), indexing results by input
// position. On the first failure, remaining operations are marked
// "skipped" unless continue_on_error is true.
func graphQueue(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	raw, ok := args["operations"].([]interface{})
	if !ok || len(raw) == 0 {
		return Response{}, newError("operations array cannot be empty")
	}
	if len(raw) > maxQueueOperations {
		return Response{}, newError("Queue too large: %d operations (max %d)", len(raw), maxQueueOperations)
	}

	continueOnError := boolOr(args, "continue_on_error", false)

	result := &backend.GraphQueueResult{}
	failed := false
	for i, item := range raw {
		op, ok := item.(map[string]interface{})
		if !ok {
			return Response{}, newError("operations[%d] must be an object", i)
		}
		opName, hasOp := getString(op, "op")
		entity, hasEntity := getString(op, "entity")
		if !hasOp || !hasEntity {
			return Response{}, newError("operations[%d] must have op and entity", i)
		}

		if failed && !continueOnError {
			result.Results = append(result.Results, backend.GraphQueueOpResult{Index: i, Status: "skipped"})
			continue
		}

		status, detail := runQueueOp(ctx, deps, opName, entity, op)
		result.Results = append(result.Results, backend.GraphQueueOpResult{Index: i, Status: status, Detail: detail})
		if status == "error" {
			failed = true
		}
	}

	return Response{Text: format.GraphQueue(result)}, nil
}

func runQueueOp(ctx context.Context, deps *Deps, opName, entity string, op map[string]interface{}) (status, detail string) {
	fields := mapOfNonCoreParams(op, "op", "entity", "id")
	switch opName {
	case "create":
		e, err := deps.Backend.GraphCreate(ctx, entity, fields)
		if err != nil {
			return "error", err.Error()
		}
		return "success", e.ID
	case "edit":
		id, ok := getString(op, "id")
		if !ok {
			return "error", "missing id for edit"
		}
		e, err := deps.Backend.GraphEdit(ctx, entity, id, fields)
		if err != nil {
			return "error", err.Error()
		}
		return "success", e.ID
	case "delete":
		id, ok := getString(op, "id")
		if !ok {
			return "error", "missing id for delete"
		}
		if err := deps.Backend.GraphDelete(ctx, entity, id); err != nil {
			return "error", err.Error()
		}
		return "success", id
	default:
		return "error", "unknown op: " + opName
	}
}
