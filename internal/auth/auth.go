// Package auth signs administrators in and out and tracks their sessions.
// Session tokens are HS256 JWTs whose id must still be present in the
// registry to be accepted.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "app-adulto-mayor"

// Event is an authentication state change
type Event string

const (
	SignedIn  Event = "SIGNED_IN"
	SignedOut Event = "SIGNED_OUT"
)

// Credentials is the sign-in input
type Credentials struct {
	Email    string `json:"email" example:"admin@example.org"`
	Password string `json:"password"`
}

// Session is an authenticated session
type Session struct {
	Token     string    `json:"token"`
	ID        string    `json:"-"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Listener receives state changes. Listeners run synchronously on the
// goroutine that caused the change.
type Listener func(event Event, session Session)

// Authenticator is the auth API consumed by the coordinator
type Authenticator interface {
	SignIn(ctx context.Context, creds Credentials) (Session, error)
	SignOut(ctx context.Context, token string) error
	GetSession(ctx context.Context, token string) (Session, error)
	OnAuthStateChange(fn Listener) (unsubscribe func())
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Options configures the Service
type Options struct {
	AdminEmail        string
	AdminPasswordHash string
	Secret            string
	TTL               time.Duration
}

// Service authenticates the single administrator account
type Service struct {
	adminEmail string
	adminHash  []byte
	secret     []byte
	ttl        time.Duration
	registry   Registry
	now        func() time.Time
	logger     *logging.SafeLogger

	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// NewService creates the auth service
func NewService(opts Options, registry Registry) (*Service, error) {
	if opts.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("session TTL must be positive")
	}
	logger := logging.Named("auth")
	if opts.AdminEmail == "" || opts.AdminPasswordHash == "" {
		logger.Warn("no administrator credentials configured, sign-in will always fail")
	}
	return &Service{
		adminEmail: strings.TrimSpace(opts.AdminEmail),
		adminHash:  []byte(opts.AdminPasswordHash),
		secret:     []byte(opts.Secret),
		ttl:        opts.TTL,
		registry:   registry,
		now:        time.Now,
		logger:     logger,
		listeners:  make(map[int]Listener),
	}, nil
}

// HashPassword returns the bcrypt hash to configure as ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SignIn verifies the credentials and opens a session. Every mismatch
// yields ErrAuthenticationFailed without saying which field was wrong.
func (s *Service) SignIn(ctx context.Context, creds Credentials) (Session, error) {
	emailOK := s.adminEmail != "" && strings.EqualFold(strings.TrimSpace(creds.Email), s.adminEmail)
	passwordErr := bcrypt.CompareHashAndPassword(s.adminHash, []byte(creds.Password))
	if !emailOK || passwordErr != nil {
		s.logger.Info("sign-in rejected")
		return Session{}, models.ErrAuthenticationFailed
	}

	now := s.now()
	session := Session{
		ID:        uuid.NewString(),
		Email:     s.adminEmail,
		ExpiresAt: now.Add(s.ttl).Truncate(time.Second),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Issuer:    issuer,
			Subject:   session.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		Email: session.Email,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	session.Token = signed

	if err := s.registry.Register(ctx, session.ID, s.ttl); err != nil {
		return Session{}, fmt.Errorf("failed to register session: %w", err)
	}

	s.logger.Info("signed in", zap.String("session_id", session.ID))
	s.emit(SignedIn, session)
	return session, nil
}

// GetSession returns the session for a token, or ErrUnauthenticated when the
// token is invalid, expired or revoked.
func (s *Service) GetSession(ctx context.Context, token string) (Session, error) {
	session, err := s.parse(token)
	if err != nil {
		return Session{}, err
	}
	live, err := s.registry.Exists(ctx, session.ID)
	if err != nil {
		return Session{}, fmt.Errorf("failed to check session: %w", err)
	}
	if !live {
		return Session{}, models.ErrUnauthenticated
	}
	return session, nil
}

// SignOut revokes the session behind token
func (s *Service) SignOut(ctx context.Context, token string) error {
	session, err := s.parse(token)
	if err != nil {
		return err
	}
	if err := s.registry.Revoke(ctx, session.ID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.logger.Info("signed out", zap.String("session_id", session.ID))
	s.emit(SignedOut, session)
	return nil
}

// OnAuthStateChange registers fn and returns a function removing it
func (s *Service) OnAuthStateChange(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Service) emit(event Event, session Session) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(event, session)
	}
}

func (s *Service) parse(token string) (Session, error) {
	if token == "" {
		return Session{}, models.ErrUnauthenticated
	}
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Debug("rejected session token", zap.Error(err))
		}
		return Session{}, models.ErrUnauthenticated
	}
	return Session{
		Token:     token,
		ID:        parsed.ID,
		Email:     parsed.Email,
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}
