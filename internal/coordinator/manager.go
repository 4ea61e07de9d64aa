package coordinator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/auth"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"go.uber.org/zap"
)

// Manager keeps one coordinator per signed-in session plus a read-only
// coordinator serving the public portal. Coordinators of signed-out
// sessions are released through the auth state listener.
type Manager struct {
	store  store.Store
	auth   auth.Authenticator
	opts   []Option
	public *Coordinator
	logger *logging.SafeLogger

	mu       sync.Mutex
	sessions map[string]*Coordinator

	unsubscribe func()
}

// NewManager creates a manager. opts apply to every coordinator it creates.
func NewManager(st store.Store, authn auth.Authenticator, opts ...Option) *Manager {
	m := &Manager{
		store:    st,
		auth:     authn,
		opts:     opts,
		public:   New(st, nil, opts...),
		logger:   logging.Named("coordinator.manager"),
		sessions: make(map[string]*Coordinator),
	}
	m.unsubscribe = authn.OnAuthStateChange(m.onAuthStateChange)
	return m
}

func (m *Manager) onAuthStateChange(event auth.Event, session auth.Session) {
	if event != auth.SignedOut {
		return
	}
	m.release(session.Token)
}

func (m *Manager) release(token string) {
	m.mu.Lock()
	c, ok := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()

	if ok {
		c.Close()
		observability.ActiveSessions.Dec()
	}
}

func (m *Manager) adopt(token string, c *Coordinator) *Coordinator {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[token]; ok {
		c.Close()
		return existing
	}
	m.sessions[token] = c
	observability.ActiveSessions.Inc()
	return c
}

// Public returns the read-only portal coordinator
func (m *Manager) Public() *Coordinator {
	return m.public
}

// SignIn authenticates and returns the new session's coordinator with its
// state loaded
func (m *Manager) SignIn(ctx context.Context, creds auth.Credentials) (*Coordinator, auth.Session, error) {
	c := New(m.store, m.auth, m.opts...)
	session, err := c.Authenticate(ctx, creds)
	if err != nil {
		c.Close()
		return nil, auth.Session{}, err
	}
	if err := c.LoadInitialState(ctx); err != nil {
		m.logger.Warn("initial state partially loaded", zap.Error(err))
	}
	return m.adopt(session.Token, c), session, nil
}

// Acquire returns the coordinator of a live session. A valid token with no
// coordinator, for example after a restart, gets a freshly loaded one.
func (m *Manager) Acquire(ctx context.Context, token string) (*Coordinator, error) {
	if _, err := m.auth.GetSession(ctx, token); err != nil {
		if errors.Is(err, models.ErrUnauthenticated) {
			m.release(token)
		}
		return nil, err
	}

	m.mu.Lock()
	c, ok := m.sessions[token]
	m.mu.Unlock()
	if ok {
		return c, nil
	}

	c = New(m.store, m.auth, m.opts...)
	if err := c.RestoreSession(ctx, token); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.LoadInitialState(ctx); err != nil {
		m.logger.Warn("initial state partially loaded", zap.Error(err))
	}
	return m.adopt(token, c), nil
}

// SignOut signs the session out. Its coordinator is released by the
// SIGNED_OUT event.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	m.mu.Lock()
	c, ok := m.sessions[token]
	m.mu.Unlock()
	if !ok {
		return m.auth.SignOut(ctx, token)
	}
	return c.SignOut(ctx)
}

// Sessions returns the number of coordinators held
func (m *Manager) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep releases coordinators whose session has expired
func (m *Manager) Sweep() {
	m.mu.Lock()
	var expired []string
	for token, c := range m.sessions {
		if !c.IsAuthenticated() {
			expired = append(expired, token)
		}
	}
	m.mu.Unlock()

	for _, token := range expired {
		m.release(token)
	}
	if len(expired) > 0 {
		m.logger.Debug("released expired sessions", zap.Int("count", len(expired)))
	}
}

// Run loads the public coordinator, then reloads it and sweeps expired
// sessions every interval until ctx is done
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if err := m.public.LoadInitialState(ctx); err != nil {
		m.logger.Warn("public state partially loaded", zap.Error(err))
	}
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.public.LoadInitialState(ctx); err != nil {
				m.logger.Warn("public state refresh failed", zap.Error(err))
			}
			m.Sweep()
		}
	}
}

// Close releases every coordinator and stops listening for auth changes
func (m *Manager) Close() {
	m.unsubscribe()

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Coordinator)
	m.mu.Unlock()

	for _, c := range sessions {
		c.Close()
		observability.ActiveSessions.Dec()
	}
	m.public.Close()
}
