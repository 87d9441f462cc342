package admin

import (
	"sync"

	"myshop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Sessions is the admin authentication gate: a credential check against
// the configured admin account, and a set of issued session tokens. There
// is no credential store behind it.
type Sessions struct {
	mu       sync.Mutex
	tokens   map[string]struct{}
	email    string
	password string
	logger   zerolog.Logger
}

// NewSessions creates a session gate for the configured admin credentials.
func NewSessions(email, password string, logger zerolog.Logger) *Sessions {
	return &Sessions{
		tokens:   make(map[string]struct{}),
		email:    email,
		password: password,
		logger:   logger.With().Str("component", "admin-sessions").Logger(),
	}
}

// Login checks the credentials and issues a session token on success.
func (s *Sessions) Login(email, password string) (string, error) {
	if email != s.email || password != s.password {
		s.logger.Warn().Str("email", email).Msg("admin login rejected")
		return "", model.ErrInvalidCredentials
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	s.logger.Info().Msg("admin logged in")
	return token, nil
}

// Valid reports whether token belongs to a live session.
func (s *Sessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

// Logout invalidates the session token. Unknown tokens are a no-op.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
