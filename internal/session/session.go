// Package session provides the session and revalidation collaborators
// used by the CLI and tests. The core treats both as opaque interfaces;
// these are the local, single-user implementations.
package session

import "sync"

// Static is a session with a fixed user, resolved once at startup from
// configuration.
type Static struct {
	UserID string
}

// CurrentUser returns the configured user ID.
func (s Static) CurrentUser() (string, error) {
	return s.UserID, nil
}

// Anonymous is a session with no authenticated user. Every operation
// that requires a user fails against it.
type Anonymous struct{}

// CurrentUser returns the empty user ID.
func (Anonymous) CurrentUser() (string, error) {
	return "", nil
}

// Recorder collects revalidation notifications for inspection. Safe for
// concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Revalidation
}

// Revalidation is one recorded notification.
type Revalidation struct {
	Path  string
	Scope string
}

// Revalidate records the notification.
func (r *Recorder) Revalidate(path, scope string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Revalidation{Path: path, Scope: scope})
}

// Calls returns a copy of the recorded notifications in order.
func (r *Recorder) Calls() []Revalidation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Revalidation, len(r.calls))
	copy(out, r.calls)
	return out
}
