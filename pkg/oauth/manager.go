// Package oauth implements the OAuth2 client-credentials access-token
// lifecycle described by the core's OAuth Token Manager component (C5).
//
// The timer-reset shape is grounded on the teacher's
// pkg/auth.MonitoredTokenSource (single-shot time.Timer, stopTimer/resetTimer
// helpers); acquisition itself is grounded on pkg/auth/oauth's
// oauth2.Config/oauth2.Token usage, adapted from authorization-code+PKCE to
// a client-credentials grant via golang.org/x/oauth2/clientcredentials.
package oauth

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/aaronsb/knowledge-graph-mcp/pkg/logger"
)

// TokenSetter is implemented by the HTTP backend client (C2); the manager
// calls SetBearerToken whenever a new token is acquired or refreshed.
type TokenSetter interface {
	SetBearerToken(token string)
}

// Manager owns the lifetime of the backend's access token: acquisition,
// scheduled refresh, and injection into the downstream HTTP client.
type Manager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	scopes       []string
	setter       TokenSetter

	state atomic.Pointer[tokenState]

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool

	// acquire is overridable in tests; defaults to a real clientcredentials exchange.
	acquire func(ctx context.Context) (*oauth2.Token, error)
}

// Config carries the inputs needed to construct a Manager.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// NewManager builds a Manager that will hand acquired tokens to setter.
func NewManager(cfg Config, setter TokenSetter) *Manager {
	m := &Manager{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     cfg.TokenURL,
		scopes:       cfg.Scopes,
		setter:       setter,
	}
	m.acquire = m.acquireViaClientCredentials
	return m
}

func (m *Manager) acquireViaClientCredentials(ctx context.Context) (*oauth2.Token, error) {
	cc := &clientcredentials.Config{
		ClientID:     m.clientID,
		ClientSecret: m.clientSecret,
		TokenURL:     m.tokenURL,
		Scopes:       m.scopes,
	}
	return cc.Token(ctx)
}

// Initialize attempts a first token acquisition. On success it publishes the
// token and schedules the first refresh. On failure it logs and leaves the
// manager inactive: CurrentToken will report absent and the process
// continues unauthenticated per §4.4's failure semantics.
func (m *Manager) Initialize(ctx context.Context) {
	if m.clientID == "" || m.clientSecret == "" {
		logger.Info("oauth: no client credentials configured, skipping token acquisition")
		return
	}

	tok, err := m.acquire(ctx)
	if err != nil {
		logger.Errorf("oauth: initial token acquisition failed: %v", err)
		return
	}
	m.publish(tok)
	m.scheduleRefresh(ctx, tok)
}

// CurrentToken returns the current bearer token, or ("", false) if none is
// available (no credentials configured, or acquisition/refresh has not yet
// succeeded).
func (m *Manager) CurrentToken() (string, bool) {
	s := m.state.Load()
	if s.isEmpty() {
		return "", false
	}
	return s.token, true
}

// Shutdown cancels any pending refresh timer. It must not hold the process
// open on its own, matching §4.4's concurrency contract.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	m.stopTimerLocked()
}

func (m *Manager) publish(tok *oauth2.Token) {
	next := &tokenState{
		token:     tok.AccessToken,
		expiresAt: tok.Expiry,
	}
	if !tok.Expiry.IsZero() {
		next.refreshDeadline = time.Now().Add(refreshDelay(time.Until(tok.Expiry)))
	}
	m.state.Store(next)
	if m.setter != nil {
		m.setter.SetBearerToken(tok.AccessToken)
	}
}

func (m *Manager) scheduleRefresh(ctx context.Context, tok *oauth2.Token) {
	if tok.Expiry.IsZero() {
		return
	}
	delay := refreshDelay(time.Until(tok.Expiry))

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}
	m.stopTimerLocked()
	m.timer = time.AfterFunc(delay, func() { m.onRefreshFire(ctx) })
}

func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Manager) onRefreshFire(ctx context.Context) {
	tok, err := m.acquire(ctx)
	if err != nil {
		// Refresh failure: stale token persists until natural expiry; no
		// state is cleared. A subsequent backend 401 surfaces normally.
		logger.Warnf("oauth: token refresh failed, keeping stale token until expiry: %v", err)
		return
	}
	m.publish(tok)
	m.scheduleRefresh(ctx, tok)
}
