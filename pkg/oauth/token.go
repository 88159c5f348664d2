package oauth

import "time"

// tokenState is the published, immutable snapshot of the current token.
// A new snapshot replaces the old one atomically (see Manager.state in
// manager.go); readers
// never observe a torn (token, expiry) pair.
type tokenState struct {
	token           string
	expiresAt       time.Time
	refreshDeadline time.Time
}

func (s *tokenState) isEmpty() bool {
	return s == nil || s.token == ""
}

// refreshDelay computes the single-shot refresh delay per spec §4.4:
//
//	refresh_delay = expires_in - min(5m, expires_in/2)
func refreshDelay(expiresIn time.Duration) time.Duration {
	half := expiresIn / 2
	lead := 5 * time.Minute
	if half < lead {
		lead = half
	}
	d := expiresIn - lead
	if d < 0 {
		d = 0
	}
	return d
}
