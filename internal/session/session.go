// Package session holds the auth context the POS terminal attaches to
// every backend request. The token and tenant identifier are issued by
// the platform's auth service (out of scope here) and cached in a small
// file-backed key/value store so they survive terminal restarts.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autoserve360/pos/pkg/apperror"
)

// Storage keys, shared with every AutoServe 360 client surface.
const (
	KeyToken  = "as360_token"
	KeyTenant = "as360_tenant"
)

// ErrMissingTenant is raised before request construction whenever a
// tenant-scoped operation runs without a tenant identifier in storage.
var ErrMissingTenant = apperror.ErrMissingTenant

// Context is the auth context attached to outgoing requests. A zero
// TenantID is a hard precondition failure for tenant-scoped writes.
type Context struct {
	Token    string
	TenantID string
}

// RequireTenant returns ErrMissingTenant when no tenant identifier is
// present. Callers invoke this before building any tenant-scoped request.
func (c Context) RequireTenant() error {
	if c.TenantID == "" {
		return ErrMissingTenant
	}
	return nil
}

// Expired reports whether the stored token carries an exp claim in the
// past. The token is not verified here — verification is the backend's
// job — this only lets the terminal prompt for re-login early.
func (c Context) Expired(now time.Time) bool {
	if c.Token == "" {
		return false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}

// Store is a file-backed key/value store for session state. One file,
// one writer (the single active terminal), flushed on every set.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewStore loads (or creates) the session store at path.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, fmt.Errorf("session: parse %s: %w", path, err)
		}
	}
	return s, nil
}

// Get returns the value stored under key, or "".
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set stores key=value and flushes to disk.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flushLocked()
}

// Delete removes key and flushes to disk.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flushLocked()
}

// Context assembles the current auth context from storage.
func (s *Store) Context() Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Context{
		Token:    s.values[KeyToken],
		TenantID: s.values[KeyTenant],
	}
}

// SetToken stores the bearer token.
func (s *Store) SetToken(token string) error {
	return s.Set(KeyToken, token)
}

// SetTenant stores the tenant identifier.
func (s *Store) SetTenant(tenantID string) error {
	return s.Set(KeyTenant, tenantID)
}

func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir for %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}
