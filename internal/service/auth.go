package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/restkata/restkata/internal/domain"
)

// bcryptMaxPasswordBytes is bcrypt's hard input limit. Longer passwords are
// rejected before hashing rather than silently truncated.
const bcryptMaxPasswordBytes = 72

// AuthService implements password hashing, the single-credential login, and
// session token verification.
//
// The admin password is bcrypt-hashed once at construction and the plain text
// is never retained. Session tokens are random UUIDs held in memory with a
// TTL; they do not survive a restart, which is acceptable for a playground
// API where the static token is the durable credential.
type AuthService struct {
	apiToken      string
	adminUsername string
	adminHash     []byte
	ttl           time.Duration
	cost          int

	mu       sync.Mutex
	sessions map[string]time.Time // token → expiry
}

// NewAuthService constructs an AuthService for the configured credential pair.
// cost is the bcrypt work factor; pass bcrypt.DefaultCost in production and
// bcrypt.MinCost in tests (bcrypt treats anything below MinCost as DefaultCost).
func NewAuthService(apiToken, adminUsername, adminPassword string, sessionTTL time.Duration, cost int) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("service.NewAuthService: hash admin password: %w", err)
	}
	return &AuthService{
		apiToken:      apiToken,
		adminUsername: adminUsername,
		adminHash:     hash,
		ttl:           sessionTTL,
		cost:          cost,
		sessions:      make(map[string]time.Time),
	}, nil
}

// HashPassword returns the bcrypt hash of password.
// Returns domain.ErrValidation for inputs longer than bcrypt's 72-byte limit.
func (s *AuthService) HashPassword(ctx context.Context, password string) (string, error) {
	if len(password) > bcryptMaxPasswordBytes {
		return "", fmt.Errorf("service.AuthService.HashPassword: %w: password must not exceed 72 bytes", domain.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("service.AuthService.HashPassword: %w", err)
	}
	return string(hash), nil
}

// Login checks the credential pair and, on success, mints a session token
// valid for the configured TTL.
// Returns domain.ErrUnauthorized when either the username or password is wrong.
// The username comparison is constant-time and the password check always runs,
// so response timing does not reveal which half failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password))
	if !userOK || passErr != nil {
		return "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthorized)
	}

	token := uuid.NewString()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)
	s.sessions[token] = now.Add(s.ttl)

	return token, nil
}

// VerifyToken reports whether token is the static API token or an unexpired
// session token.
func (s *AuthService) VerifyToken(token string) bool {
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.apiToken)) == 1 {
		return true
	}

	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)
	expiry, ok := s.sessions[token]
	return ok && now.Before(expiry)
}

// pruneLocked drops expired sessions. Callers must hold s.mu.
func (s *AuthService) pruneLocked(now time.Time) {
	for token, expiry := range s.sessions {
		if !now.Before(expiry) {
			delete(s.sessions, token)
		}
	}
}
