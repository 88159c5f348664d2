// Package resources implements the resource handler (C7): a static
// table of read-only named URIs, each bound to exactly one backend
// call and one formatter, with no action dimension. Generalized from
// pkg/tools' (tool, action) -> binding table down to the simpler
// uri -> binding shape this domain's resources need.
package resources

import (
	"context"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/allowlist"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/format"
)

// Deps bundles the collaborators a resource read may call into.
type Deps struct {
	Backend   backend.Client
	Allowlist *allowlist.Allowlist
}

// ReadFunc produces a resource's text body on demand.
type ReadFunc func(ctx context.Context, deps *Deps) (string, error)

// Descriptor is one resource's static shape plus its reader.
type Descriptor struct {
	URI         string
	Name        string
	Description string
	MimeType    string
	Read        ReadFunc
}

var registry []*Descriptor
var byURI = map[string]*Descriptor{}

func register(d *Descriptor) {
	if _, exists := byURI[d.URI]; exists {
		panic("resources: duplicate registration for " + d.URI)
	}
	registry = append(registry, d)
	byURI[d.URI] = d
}

func init() {
	register(&Descriptor{
		URI:         "database/stats",
		Name:        "Database statistics",
		Description: "Concept, relationship, and source counts for the knowledge graph database.",
		MimeType:    "application/json",
		Read: func(ctx context.Context, deps *Deps) (string, error) {
			s, err := deps.Backend.GetDatabaseStats(ctx)
			if err != nil {
				return "", err
			}
			return format.DatabaseStats(s), nil
		},
	})

	register(&Descriptor{
		URI:         "database/info",
		Name:        "Database info",
		Description: "Backend database engine and version.",
		MimeType:    "application/json",
		Read: func(ctx context.Context, deps *Deps) (string, error) {
			i, err := deps.Backend.GetDatabaseInfo(ctx)
			if err != nil {
				return "", err
			}
			return format.DatabaseInfo(i), nil
		},
	})

	register(&Descriptor{
		URI:         "database/health",
		Name:        "Database health",
		Description: "Whether the graph database backing the knowledge graph is reachable and healthy.",
		MimeType:    "application/json",
		Read: func(ctx context.Context, deps *Deps) (string, error) {
			h, err := deps.Backend.GetDatabaseHealth(ctx)
			if err != nil {
				return "", err
			}
			return format.Health(h), nil
		},
	})

	register(&Descriptor{
		URI:         "system/status",
		Name:        "System status",
		Description: "Overall health and uptime of the knowledge-graph system.",
		MimeType:    "application/json",
		Read: func(ctx context.Context, deps *Deps) (string, error) {
			s, err := deps.Backend.GetSystemStatus(ctx)
			if err != nil {
				return "", err
			}
			return format.SystemStatus(s), nil
		},
	})

	register(&Descriptor{
		URI:         "api/health",
		Name:        "API health",
		Description: "Whether the remote knowledge-graph HTTP API itself is reachable and healthy.",
		MimeType:    "application/json",
		Read: func(ctx context.Context, deps *Deps) (string, error) {
			h, err := deps.Backend.GetAPIHealth(ctx)
			if err != nil {
				return "", err
			}
			return format.Health(h), nil
		},
	})

	register(&Descriptor{
		URI:         "mcp/allowed-paths",
		Name:        "Allowed ingestion paths",
		Description: "The locally configured allowlist of directories and glob patterns that ingest/file and ingest/directory are permitted to read from.",
		MimeType:    "application/json",
		Read: func(ctx context.Context, deps *Deps) (string, error) {
			return format.AllowlistConfig(deps.Allowlist.GetConfig(), deps.Allowlist.GetPath()), nil
		},
	})
}

// List returns the static resource table in registration order.
func List() []*Descriptor {
	out := make([]*Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Read dispatches a resource read by URI. Unlike Call in pkg/tools,
// a missing URI is reported to the caller as a plain Go error: C8
// decides how to shape a "no such resource" failure for the
// resources/read transport envelope, which has no error-response
// convention of its own analogous to tool call's is_error flag.
func Read(ctx context.Context, deps *Deps, uri string) (string, error) {
	d, ok := byURI[uri]
	if !ok {
		return "", &UnknownResourceError{URI: uri}
	}
	return d.Read(ctx, deps)
}

// UnknownResourceError is returned by Read for an unregistered URI.
type UnknownResourceError struct {
	URI string
}

func (e *UnknownResourceError) Error() string {
	return "unknown resource: " + e.URI
}
