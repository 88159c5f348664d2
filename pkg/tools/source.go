package tools

import (
	"context"
	"encoding/base64"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

func init() {
	register(&Descriptor{
		Name:        "source",
		Description: "Fetch a source document's metadata, or, with include_image=true, its rendered image.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"source_id":    map[string]interface{}{"type": "string"},
				"include_image": map[string]interface{}{"type": "boolean"},
			},
			"required": []interface{}{"source_id"},
		},
		Actions: map[string]ActionBinding{
			"source": sourceFetch,
		},
	})
}

func sourceFetch(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error) {
	id, ok := getString(args, "source_id")
	if !ok {
		return Response{}, newError("source requires source_id")
	}

	if boolOr(args, "include_image", false) {
		img, err := deps.Backend.GetSourceImageBase64(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return Response{}, newError("Source %s not found", id)
			}
			return Response{}, err
		}
		if _, err := base64.StdEncoding.DecodeString(img.Base64); err != nil {
			return Response{}, newError("source returned malformed image data: %v", err)
		}
		return Response{ImageData: img.Base64, ImageMime: img.MimeType, Text: "Source " + id + " rendered as an image."}, nil
	}

	meta, err := deps.Backend.GetSourceMetadata(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return Response{}, newError("Source %s not found", id)
		}
		return Response{}, err
	}
	return Response{Text: format.SourceMetadata(meta)}, nil
}
