package service

import (
	"crypto/subtle"
	"sync"
)

// AuthService gates the bot behind a shared password.
// Authorizations live in memory and last until restart.
type AuthService struct {
	password string

	mu         sync.RWMutex
	authorized map[int64]bool
}

// NewAuthService creates a new auth service. An empty password disables the gate.
func NewAuthService(password string) *AuthService {
	return &AuthService{
		password:   password,
		authorized: make(map[int64]bool),
	}
}

// Enabled reports whether a password is required
func (s *AuthService) Enabled() bool {
	return s.password != ""
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	if !s.Enabled() {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) bool {
	if !s.Enabled() {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorized[userID]
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorized[userID] = true
}
