package tools

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "artifact",
		Description: "List generated artifacts, inspect one, or fetch its full payload.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action":      map[string]interface{}{"type": "string", "enum": []interface{}{"list", "show", "payload"}},
				"artifact_id": map[string]interface{}{"type": "string"},
			},
			"required": []interface{}{"action"},
		},
		Actions: map[string]ActionBinding{
			"list":    artifactList,
			"show":    artifactShow,
			"payload": artifactPayload,
		},
	})
}

func artifactList(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	l, err := deps.Backend.ListArtifacts(ctx)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.ArtifactList(l)}, nil
}

func artifactShow(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "artifact_id")
	if !ok {
		return Response{}, newError("artifact.show requires artifact_id")
	}
	a, err := deps.Backend.GetArtifact(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Artifact(a)}, nil
}

func artifactPayload(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "artifact_id")
	if !ok {
		return Response{}, newError("artifact.payload requires artifact_id")
	}
	p, err := deps.Backend.GetArtifactPayload(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.Artifact(&p.Artifact) + "\n" + p.Payload}, nil
}
