// Package callctx carries the transient, per-request state a dispatch
// needs while it runs (C8 owns instances of this; nothing outlives a
// single request). Grounded on the teacher's cmd/vmcp request-scoping
// idiom of attaching a request id and child logger at the transport
// boundary.
package callctx

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/logger"
)

// CallContext is created once per inbound tool call or resource read
// and discarded when the dispatch returns.
type CallContext struct {
	ToolOrResourceID string
	RawArgs          map[string]interface{}
	StartTime        time.Time
	RequestID        uuid.UUID
	Logger           *zap.SugaredLogger
}

// New builds a CallContext for a single dispatch, binding a request id
// to the process logger so every log line from this call can be
// correlated.
func New(toolOrResourceID string, rawArgs map[string]interface{}) *CallContext {
	id := uuid.New()
	return &CallContext{
		ToolOrResourceID: toolOrResourceID,
		RawArgs:          rawArgs,
		StartTime:        time.Now(),
		RequestID:        id,
		Logger:           logger.With("request_id", id.String(), "target", toolOrResourceID),
	}
}

// Elapsed returns how long this call has been in flight.
func (c *CallContext) Elapsed() time.Duration {
	return time.Since(c.StartTime)
}
