package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "document",
		Description: "List ingested documents, show a document's content, or list the concepts extracted from it.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action":      map[string]interface{}{"type": "string", "enum": []interface{}{"list", "show", "concepts"}},
				"document_id": map[string]interface{}{"type": "string"},
			},
			"required": []interface{}{"action"},
		},
		Actions: map[string]ActionBinding{
			"list":     documentList,
			"show":     documentShow,
			"concepts": documentConcepts,
		},
	})
}

func documentList(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	l, err := deps.Backend.ListDocuments(ctx)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.DocumentList(l)}, nil
}

func documentShow(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "document_id")
	if !ok {
		return Response{}, newError("document.show requires document_id")
	}
	d, err := deps.Backend.GetDocumentContent(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.DocumentContent(d)}, nil
}

func documentConcepts(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "document_id")
	if !ok {
		return Response{}, newError("document.concepts requires document_id")
	}
	c, err := deps.Backend.GetDocumentConcepts(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.DocumentConcepts(c)}, nil
}
