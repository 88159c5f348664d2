package tools

import (
	"context"
	"path/filepath"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "ingest",
		Description: "Ingest text, a single file, or a batch of files into the knowledge graph, or check a file path against the allowlist. The directory action validates a directory but does not ingest it; it reports a not_implemented status.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"action": map[string]interface{}{"type": "string", "enum": []interface{}{"text", "inspect-file", "file", "directory"}},
				"text":   map[string]interface{}{"type": "string"},
				"ontology": map[string]interface{}{
					"type": "string",
				},
				"path":            map[string]interface{}{"type": "string"},
				"paths":           map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
				"directory":       map[string]interface{}{"type": "string"},
				"auto_approve":    map[string]interface{}{"type": "boolean"},
				"force":           map[string]interface{}{"type": "boolean"},
				"processing_mode": map[string]interface{}{"type": "string"},
				"target_words":    map[string]interface{}{"type": "integer"},
				"overlap_words":   map[string]interface{}{"type": "integer"},
				"recursive":       map[string]interface{}{"type": "boolean"},
				"limit":           map[string]interface{}{"type": "integer"},
				"offset":          map[string]interface{}{"type": "integer"},
			},
			"required": []interface{}{"action"},
		},
		Actions: map[string]ActionBinding{
			"text":         ingestText,
			"inspect-file": ingestInspectFile,
			"file":         ingestFile,
			"directory":    ingestDirectory,
		},
	})
}

func ingestText(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	text, ok := getString(args, "text")
	if !ok {
		return Response{}, newError("ingest.text requires text")
	}
	params := map[string]interface{}{
		"ontology":        stringOr(args, "ontology", ""),
		"auto_approve":    boolOr(args, "auto_approve", true),
		"force":           boolOr(args, "force", false),
		"processing_mode": stringOr(args, "processing_mode", "serial"),
		"target_words":    intOr(args, "target_words", 1000),
		"overlap_words":   intOr(args, "overlap_words", 200),
		"source_type":     "mcp",
	}
	r, err := deps.Backend.IngestText(ctx, text, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.IngestResult(r)}, nil
}

func ingestInspectFile(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	path, ok := getString(args, "path")
	if !ok {
		return Response{}, newError("ingest.inspect-file requires path")
	}
	result := deps.Allowlist.ValidatePath(path)
	if !result.Allowed {
		return Response{}, &DispatchError{Message: "Path not allowed: " + result.Reason, Details: result.Hint}
	}
	return Response{Text: "# Inspect File\n- resolved path: " + result.ResolvedAbsolute + "\n- allowed: true\n"}, nil
}

func ingestFile(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	autoApprove := boolOr(args, "auto_approve", true)
	force := boolOr(args, "force", false)
	params := map[string]interface{}{"auto_approve": autoApprove, "force": force}

	if paths, ok := stringSlice(args, "paths"); ok && len(paths) > 0 {
		batch := &backend.IngestBatchResult{Failed: map[string]string{}}
		for _, p := range paths {
			result := deps.Allowlist.ValidatePath(p)
			if !result.Allowed {
				batch.Failed[p] = result.Reason
				continue
			}
			r, err := deps.Backend.IngestFile(ctx, result.ResolvedAbsolute, params)
			if err != nil {
				batch.Failed[p] = err.Error()
				continue
			}
			batch.Succeeded = append(batch.Succeeded, *r)
		}
		return Response{Text: format.IngestBatchResult(batch)}, nil
	}

	path, ok := getString(args, "path")
	if !ok {
		return Response{}, newError("ingest.file requires path or paths")
	}
	result := deps.Allowlist.ValidatePath(path)
	if !result.Allowed {
		return Response{}, &DispatchError{Message: "Path not allowed: " + result.Reason, Details: result.Hint}
	}
	r, err := deps.Backend.IngestFile(ctx, result.ResolvedAbsolute, params)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: format.IngestResult(r)}, nil
}

// ingestDirectory validates the directory against the allowlist and
// returns a placeholder result describing what would be ingested.
// There is no single backend directory-ingestion endpoint (§6.2 only
// exposes a unified ingest_file call); the core enumerates nothing
// itself and instead reports the resolved, allowlisted directory back
// to the caller so a subsequent ingest.file batch can target it. See
// DESIGN.md's open-question decision.
func ingestDirectory(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	dir, ok := getString(args, "directory")
	if !ok {
		return Response{}, newError("ingest.directory requires directory")
	}
	result := deps.Allowlist.ValidateDirectory(dir)
	if !result.Allowed {
		return Response{}, &DispatchError{Message: "Directory not allowed: " + result.Reason, Details: result.Hint}
	}

	ontology := stringOr(args, "ontology", filepath.Base(result.ResolvedAbsolute))
	placeholder := &backend.IngestDirectoryResult{
		Status:    "not_implemented",
		Files:     nil,
		Ontology:  ontology,
		Recursive: boolOr(args, "recursive", false),
	}
	return Response{Text: "# Directory Ingest\n- directory: " + result.ResolvedAbsolute +
		"\n- ontology: " + placeholder.Ontology +
		"\n- status: not_implemented (use ingest.file with an explicit paths array)\n"}, nil
}
