package oauth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestRefreshDelay(t *testing.T) {
	cases := []struct {
		name      string
		expiresIn time.Duration
		want      time.Duration
	}{
		{"ten minutes", 10 * time.Minute, 5 * time.Minute},
		{"exactly boundary 600s", 600 * time.Second, 300 * time.Second},
		{"five minutes lifetime halves", 5 * time.Minute, 150 * time.Second},
		{"two minutes lifetime halves", 2 * time.Minute, 1 * time.Minute},
		{"long lived token", time.Hour, time.Hour - 5*time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := refreshDelay(tc.expiresIn); got != tc.want {
				t.Errorf("refreshDelay(%v) = %v, want %v", tc.expiresIn, got, tc.want)
			}
		})
	}
}

type fakeSetter struct {
	tokens []string
}

func (f *fakeSetter) SetBearerToken(token string) { f.tokens = append(f.tokens, token) }

func TestInitializeNoCredentialsLeavesEmpty(t *testing.T) {
	m := NewManager(Config{}, &fakeSetter{})
	m.Initialize(context.Background())

	if _, ok := m.CurrentToken(); ok {
		t.Error("expected no token when credentials are absent")
	}
}

func TestInitializeSuccessPublishesToken(t *testing.T) {
	setter := &fakeSetter{}
	m := NewManager(Config{ClientID: "id", ClientSecret: "secret", TokenURL: "http://example/token"}, setter)

	calls := 0
	m.acquire = func(context.Context) (*oauth2.Token, error) {
		calls++
		return &oauth2.Token{AccessToken: "tok-1", Expiry: time.Now().Add(time.Hour)}, nil
	}

	m.Initialize(context.Background())
	defer m.Shutdown()

	tok, ok := m.CurrentToken()
	if !ok || tok != "tok-1" {
		t.Fatalf("expected token tok-1, got %q (ok=%v)", tok, ok)
	}
	if len(setter.tokens) != 1 || setter.tokens[0] != "tok-1" {
		t.Fatalf("expected bearer token to be injected into setter, got %v", setter.tokens)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one acquisition call, got %d", calls)
	}
}

func TestAcquisitionFailureLeavesStateEmpty(t *testing.T) {
	m := NewManager(Config{ClientID: "id", ClientSecret: "secret", TokenURL: "http://example/token"}, &fakeSetter{})
	m.acquire = func(context.Context) (*oauth2.Token, error) {
		return nil, context.DeadlineExceeded
	}
	m.Initialize(context.Background())

	if _, ok := m.CurrentToken(); ok {
		t.Error("expected no token after acquisition failure")
	}
}

func TestRefreshFailureKeepsStaleToken(t *testing.T) {
	setter := &fakeSetter{}
	m := NewManager(Config{ClientID: "id", ClientSecret: "secret", TokenURL: "http://example/token"}, setter)

	first := true
	m.acquire = func(context.Context) (*oauth2.Token, error) {
		if first {
			first = false
			return &oauth2.Token{AccessToken: "tok-1", Expiry: time.Now().Add(50 * time.Millisecond)}, nil
		}
		return nil, context.DeadlineExceeded
	}

	m.Initialize(context.Background())
	defer m.Shutdown()

	// Force an immediate refresh attempt rather than waiting on the real timer.
	m.onRefreshFire(context.Background())

	tok, ok := m.CurrentToken()
	if !ok || tok != "tok-1" {
		t.Fatalf("expected stale token tok-1 to persist after refresh failure, got %q (ok=%v)", tok, ok)
	}
}

func TestRefreshSuccessReplacesToken(t *testing.T) {
	setter := &fakeSetter{}
	m := NewManager(Config{ClientID: "id", ClientSecret: "secret", TokenURL: "http://example/token"}, setter)

	seq := []string{"tok-1", "tok-2"}
	idx := 0
	m.acquire = func(context.Context) (*oauth2.Token, error) {
		tok := seq[idx]
		idx++
		return &oauth2.Token{AccessToken: tok, Expiry: time.Now().Add(time.Hour)}, nil
	}

	m.Initialize(context.Background())
	defer m.Shutdown()
	m.onRefreshFire(context.Background())

	tok, ok := m.CurrentToken()
	if !ok || tok != "tok-2" {
		t.Fatalf("expected refreshed token tok-2, got %q (ok=%v)", tok, ok)
	}
	if len(setter.tokens) != 2 || setter.tokens[1] != "tok-2" {
		t.Fatalf("expected setter to observe both tokens in order, got %v", setter.tokens)
	}
}

func TestShutdownCancelsTimer(t *testing.T) {
	m := NewManager(Config{ClientID: "id", ClientSecret: "secret", TokenURL: "http://example/token"}, &fakeSetter{})
	m.acquire = func(context.Context) (*oauth2.Token, error) {
		return &oauth2.Token{AccessToken: "tok-1", Expiry: time.Now().Add(time.Hour)}, nil
	}
	m.Initialize(context.Background())
	m.Shutdown()

	if m.timer != nil {
		t.Error("expected timer to be cleared after shutdown")
	}
}
