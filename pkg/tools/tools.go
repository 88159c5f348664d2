// Package tools implements the tool registry and action dispatcher
// (C6): a schema-driven table of consolidated, multi-action tools with
// argument validation, per-action defaulting, and uniform error
// shaping. Generalized from the teacher's one-tool-one-handler
// registration idiom (cmd/thv/app/mcp_serve.go) into a table of
// (tool, action) -> binding, per this domain's need for several
// sub-actions behind a single tool entry point.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/allowlist"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/backend"
	"github.com/aaronsb/knowledge-graph-mcp/pkg/callctx"
)

// Deps bundles the collaborators a binding may call into.
type Deps struct {
	Backend   backend.Client
	Allowlist *allowlist.Allowlist
}

// Response is the outcome of a dispatched tool call.
type Response struct {
	Text      string
	IsError   bool
	ImageData string // base64, only set for the source tool's image branch
	ImageMime string
}

// ActionBinding handles one (tool, action) pair: it reads whatever
// parameters it needs from args (already schema-validated; each binding
// applies its own per-action defaults), calls into Deps, and returns
// rendered text (or an image payload) ready to wrap in a Response.
type ActionBinding func(ctx context.Context, deps *Deps, args map[string]interface{}) (Response, error)

// Descriptor is a tool's static shape plus its action table.
type Descriptor struct {
	Name        string
	Description string
	Schema      map[string]interface{}
	// DiscriminatorKey names the property that selects the action. Only
	// search sets it ("type"); every other tool leaves it empty, and Call
	// then reads "action".
	DiscriminatorKey string
	Actions          map[string]ActionBinding
}

var registry = map[string]*Descriptor{}

func register(d *Descriptor) {
	if _, exists := registry[d.Name]; exists {
		panic(fmt.Sprintf("tools: duplicate registration for %q", d.Name))
	}
	registry[d.Name] = d
}

// List returns the static descriptor table. Stable order matches the
// order tools were registered in (R1: idempotent, order-stable).
func List() []*Descriptor {
	order := []string{
		"search", "concept", "ontology", "job", "ingest", "source",
		"epistemic_status", "analyze_polarity_axis", "artifact", "document", "graph",
	}
	out := make([]*Descriptor, 0, len(order))
	for _, name := range order {
		if d, ok := registry[name]; ok {
			out = append(out, d)
		}
	}
	return out
}

// DispatchError is the uniform envelope shape of §7: every error from
// steps 2-7 of the dispatch algorithm is represented as one of these
// before being serialized into Response.Text.
type DispatchError struct {
	Message string
	Details interface{}
}

func (e *DispatchError) Error() string { return e.Message }

func newError(format string, args ...interface{}) error {
	return &DispatchError{Message: fmt.Sprintf(format, args...)}
}

// Call runs the full dispatch algorithm (§4.1) for one tool invocation.
// It never returns a Go error to its caller for a dispatch-level
// failure; failures are folded into Response.IsError per §4.1 step 9 so
// a transport adapter never has to distinguish "tool failed" from
// "transport failed".
func Call(ctx context.Context, deps *Deps, cc *callctx.CallContext, toolName string, rawArgs map[string]interface{}) Response {
	d, ok := registry[toolName]
	if !ok {
		return errorResponse(newError("Unknown tool: %s", toolName))
	}

	discriminator := d.DiscriminatorKey
	actionKey := "action"
	if discriminator != "" {
		actionKey = discriminator
	}

	if err := validateSchema(d, rawArgs, actionKey); err != nil {
		return errorResponse(err)
	}

	action := ""
	if len(d.Actions) == 1 {
		// Implicit single-action tools (search, source, analyze_polarity_axis)
		// still key their one binding by a fixed name.
		for k := range d.Actions {
			action = k
		}
	} else {
		raw, present := rawArgs[actionKey]
		if !present || raw == nil {
			return errorResponse(newError("Unknown %s action: %v", toolName, raw))
		}
		str, ok := raw.(string)
		if !ok {
			return errorResponse(newError("Unknown %s action: %v", toolName, raw))
		}
		action = str
	}

	binding, ok := d.Actions[action]
	if !ok {
		return errorResponse(newError("Unknown %s action: %s", toolName, action))
	}

	cc.Logger.Debugw("dispatching tool call", "tool", toolName, "action", action)

	resp, err := binding(ctx, deps, rawArgs)
	if err != nil {
		return errorResponse(err)
	}
	return resp
}

// validateSchema checks rawArgs against d.Schema. For tools with more
// than one action, the actionKey property's enum is excluded from this
// pass: an unknown action value must reach the binding-table lookup in
// Call and produce the §7 "Unknown <tool> action" message, not a
// generic schema-validation failure. The enum itself is untouched in
// d.Schema, so it still appears correctly in the schema List() publishes
// (§6.1).
func validateSchema(d *Descriptor, rawArgs map[string]interface{}, actionKey string) error {
	if d.Schema == nil {
		return nil
	}
	schema := d.Schema
	if len(d.Actions) > 1 {
		schema = withoutEnum(schema, actionKey)
	}
	schemaLoader := gojsonschema.NewGoLoader(schema)
	docLoader := gojsonschema.NewGoLoader(rawArgs)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return newError("failed to validate arguments: %v", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return &DispatchError{Message: "invalid arguments", Details: details}
	}
	return nil
}

// withoutEnum returns a copy of schema with the enum constraint removed
// from properties[key], leaving schema itself unmodified.
func withoutEnum(schema map[string]interface{}, key string) map[string]interface{} {
	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		return schema
	}
	prop, ok := props[key].(map[string]interface{})
	if !ok {
		return schema
	}
	if _, hasEnum := prop["enum"]; !hasEnum {
		return schema
	}

	clonedProp := make(map[string]interface{}, len(prop))
	for k, v := range prop {
		if k != "enum" {
			clonedProp[k] = v
		}
	}
	clonedProps := make(map[string]interface{}, len(props))
	for k, v := range props {
		clonedProps[k] = v
	}
	clonedProps[key] = clonedProp

	cloned := make(map[string]interface{}, len(schema))
	for k, v := range schema {
		cloned[k] = v
	}
	cloned["properties"] = clonedProps
	return cloned
}

func errorResponse(err error) Response {
	var message string
	var details interface{}

	switch e := err.(type) {
	case *DispatchError:
		message = e.Message
		details = e.Details
	case *backend.HTTPError:
		message = e.Message
		details = e.Body
	default:
		message = err.Error()
	}

	envelope := map[string]interface{}{"error": message}
	if details != nil {
		envelope["details"] = details
	}
	raw, marshalErr := json.Marshal(envelope)
	if marshalErr != nil {
		raw = []byte(fmt.Sprintf(`{"error":%q}`, message))
	}
	return Response{Text: string(raw), IsError: true}
}

// --- argument helpers shared by the per-tool binding files ---

func getString(args map[string]interface{}, key string) (string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func stringOr(args map[string]interface{}, key, def string) string {
	if s, ok := getString(args, key); ok {
		return s
	}
	return def
}

func boolOr(args map[string]interface{}, key string, def bool) bool {
	v, present := args[key]
	if !present || v == nil {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

func floatOr(args map[string]interface{}, key string, def float64) float64 {
	v, present := args[key]
	if !present || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return def
}

func intOr(args map[string]interface{}, key string, def int) int {
	v, present := args[key]
	if !present || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return def
}

func stringSlice(args map[string]interface{}, key string) ([]string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, false
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

func isNotFound(err error) bool {
	return backend.IsHTTPError(err, 404)
}

func mapOfNonCoreParams(args map[string]interface{}, exclude ...string) map[string]interface{} {
	excluded := make(map[string]bool, len(exclude))
	for _, k := range exclude {
		excluded[k] = true
	}
	out := make(map[string]interface{})
	for k, v := range args {
		if !excluded[k] {
			out[k] = v
		}
	}
	return out
}
