package session

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an anonymous client session with associated data.
// Mutations go through Set/Delete/Clear which raise the modified flag so
// the Manager knows the session needs to be persisted.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Token     string         `json:"token"`
	Data      map[string]any `json:"data,omitempty"`
	ExpiresAt time.Time      `json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`

	modified bool
}

// NewSession creates a new session with the given token and lifetime.
func NewSession(token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Token:     token,
		Data:      make(map[string]any),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Get retrieves a value from session data.
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// GetString retrieves a string value from session data.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Set stores a value in session data and marks the session modified.
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
	s.modified = true
}

// Delete removes a value from session data and marks the session modified.
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	if _, ok := s.Data[key]; ok {
		delete(s.Data, key)
		s.modified = true
	}
}

// Clear removes all data from the session and marks it modified.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = make(map[string]any)
	s.modified = true
}

// Modified reports whether the session has unsaved changes.
func (s *Session) Modified() bool {
	return s != nil && s.modified
}

// MarkModified raises the modified flag without changing data.
func (s *Session) MarkModified() {
	if s != nil {
		s.modified = true
	}
}

func (s *Session) clearModified() {
	if s != nil {
		s.modified = false
	}
}
