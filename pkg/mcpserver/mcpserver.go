// Package mcpserver implements the protocol adapter (C8): it binds the
// MCP transport's six request kinds (list/call tools, list/read
// resources, list/get prompts) to pkg/tools and pkg/resources, and
// shapes their results into the transport's expected envelopes.
// Grounded on the teacher's cmd/thv/app/mcp_serve.go registration
// idiom (mcp.Tool{InputSchema: mcp.ToolInputSchema{...}}, AddTool,
// BindArguments-style argument handling) generalized from its fixed
// one-handler-per-tool table to a table driven by pkg/tools.List().
// The stdio transport call itself (server.ServeStdio) is grounded on
// another retrieved example's use of the same call, since the teacher
// serves MCP over Streamable HTTP rather than stdio.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/allowlist"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/callctx"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/logger"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/resources"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/tools"
)

// Version is this server's implementation version, advertised to the host.
const Version = "0.1.0"

const explorePromptName = "explore-graph"

// Deps bundles the collaborators shared by every dispatched call.
type Deps struct {
	Backend   backend.Client
	Allowlist *allowlist.Allowlist
}

// Server wraps the mcp-go server with this domain's tool and resource tables bound in.
type Server struct {
	mcp      *server.MCPServer
	toolDeps *tools.Deps
	resDeps  *resources.Deps
}

// New constructs a Server with every tool, resource, and the single
// explore-graph prompt registered. Registration happens once at
// startup and is never mutated afterward.
func New(deps *Deps) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"knowledge-graph-mcp",
			Version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithPromptCapabilities(false),
			server.WithLogging(),
		),
		toolDeps: &tools.Deps{Backend: deps.Backend, Allowlist: deps.Allowlist},
		resDeps:  &resources.Deps{Backend: deps.Backend, Allowlist: deps.Allowlist},
	}

	for _, d := range tools.List() {
		s.mcp.AddTool(mcp.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: toToolInputSchema(d.Schema),
		}, s.toolHandler(d.Name))
	}

	for _, d := range resources.List() {
		s.mcp.AddResource(mcp.NewResource(
			d.URI,
			d.Name,
			mcp.WithResourceDescription(d.Description),
			mcp.WithMIMEType(d.MimeType),
		), s.resourceHandler())
	}

	s.mcp.AddPrompt(mcp.NewPrompt(
		explorePromptName,
		mcp.WithPromptDescription("Guidance for exploring the knowledge graph: search for a starting concept, then follow its connections and check its grounding before trusting a claim."),
	), explorePromptHandler)

	return s
}

// ServeStdio blocks, serving line-delimited JSON-RPC over stdin/stdout
// until the transport closes or the process receives a termination signal.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func toToolInputSchema(schema map[string]interface{}) mcp.ToolInputSchema {
	out := mcp.ToolInputSchema{Type: "object"}
	if props, ok := schema["properties"].(map[string]interface{}); ok {
		out.Properties = props
	}
	if req, ok := schema["required"].([]interface{}); ok {
		required := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				required = append(required, s)
			}
		}
		out.Required = required
	}
	return out
}

// toolHandler adapts one registered tool into the transport's
// ToolHandlerFunc shape: extract arguments, dispatch through
// pkg/tools.Call, and fold the uniform Response into a CallToolResult.
func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		cc := callctx.New(name, args)
		resp := tools.Call(ctx, s.toolDeps, cc, name, args)
		cc.Logger.Debugw("tool call complete", "elapsed", cc.Elapsed(), "is_error", resp.IsError)
		return toCallToolResult(resp), nil
	}
}

// toCallToolResult shapes pkg/tools.Response into the MCP envelope.
// Per §4.6, an image response carries a base64 image part plus a text
// part; every other response (success or dispatch error) carries a
// single text part. Uncaught dispatch errors are never surfaced as a
// protocol-level failure — they arrive here pre-folded into
// Response.IsError by pkg/tools.Call.
func toCallToolResult(resp tools.Response) *mcp.CallToolResult {
	if resp.ImageData != "" {
		result := mcp.NewToolResultImage(resp.Text, resp.ImageData, resp.ImageMime)
		result.IsError = resp.IsError
		return result
	}
	if resp.IsError {
		return mcp.NewToolResultError(resp.Text)
	}
	return mcp.NewToolResultText(resp.Text)
}

// resourceHandler adapts the resource table into the transport's
// ResourceHandlerFunc shape; it dispatches on request.Params.URI since
// every resource shares the single mime type advertised in its
// descriptor but the read itself is per-URI (§4.5).
func (s *Server) resourceHandler() server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI
		text, err := resources.Read(ctx, s.resDeps, uri)
		if err != nil {
			logger.Errorw("resource read failed", "uri", uri, "error", err)
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     text,
			},
		}, nil
	}
}

// explorePromptHandler serves the single static explore-graph prompt (§4.6).
func explorePromptHandler(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return mcp.NewGetPromptResult(
		"A starting strategy for exploring this knowledge graph",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(
				"Start with search (type=concepts) to find a concept close to what you're investigating. "+
					"Use concept.details on the best match to read its grounding and evidence before trusting any claim it supports. "+
					"Use concept.related or concept.connect to walk outward from there, and check analyze_polarity_axis if the investigation "+
					"involves two concepts in tension. Prefer concepts with well-supported grounding when citing a claim.",
			)),
		},
	), nil
}
