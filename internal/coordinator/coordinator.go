// Package coordinator owns the in-memory copies of beneficiaries and
// activities for one session, writes every change through to the store and
// rebuilds local state only from the rows the store returns.
package coordinator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/auth"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/geocoding"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WinnerSelector picks the raffle winner
type WinnerSelector interface {
	Pick(participants []string) (string, error)
}

// Auditor records mutations
type Auditor interface {
	Record(ctx context.Context, action, resource, resourceID string, oldValue, newValue interface{}, metadata map[string]string)
}

type noopAuditor struct{}

func (noopAuditor) Record(context.Context, string, string, string, interface{}, interface{}, map[string]string) {
}

// EditorKind names the form an edit context belongs to
type EditorKind string

const (
	EditorBeneficiary EditorKind = "beneficiary"
	EditorCultural    EditorKind = "cultural"
	EditorRaffle      EditorKind = "raffle"
)

// EditorState is the currently open form. An empty ID means a new record.
type EditorState struct {
	Open bool       `json:"open"`
	Kind EditorKind `json:"kind,omitempty"`
	ID   string     `json:"id,omitempty"`
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithNotifier replaces the default bounded feed
func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) { c.notifier = n }
}

// WithFeedSize sets the size of the default feed
func WithFeedSize(size int) Option {
	return func(c *Coordinator) { c.notifier = NewFeed(size) }
}

// WithSelector sets the raffle winner selector
func WithSelector(s WinnerSelector) Option {
	return func(c *Coordinator) { c.selector = s }
}

// WithAuditor sets the audit recorder
func WithAuditor(a Auditor) Option {
	return func(c *Coordinator) {
		if a != nil {
			c.auditor = a
		}
	}
}

// WithClock sets the time source used for stats and upcoming activities
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithPhoneRegion sets the region used to normalize beneficiary phones
func WithPhoneRegion(region string) Option {
	return func(c *Coordinator) { c.region = region }
}

// WithGeocoder enables the debounced location picker
func WithGeocoder(g geocoding.ReverseGeocoder, debounce time.Duration) Option {
	return func(c *Coordinator) {
		c.geocoder = g
		c.debounce = debounce
	}
}

// Coordinator is the state coordinator of one session
type Coordinator struct {
	store    store.Store
	auth     auth.Authenticator
	notifier Notifier
	auditor  Auditor
	selector WinnerSelector
	now      func() time.Time
	region   string
	geocoder geocoding.ReverseGeocoder
	debounce time.Duration
	picker   *geocoding.Picker
	logger   *logging.SafeLogger

	mu            sync.RWMutex
	beneficiaries []models.Beneficiary
	activities    []models.Activity
	session       *auth.Session
	loginVisible  bool
	searchTerm    string
	filter        models.StatusFilter
	view          models.View
	editor        EditorState
	picked        *geocoding.Location
}

// New creates a coordinator. authn may be nil for the read-only public
// coordinator.
func New(st store.Store, authn auth.Authenticator, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:    st,
		auth:     authn,
		auditor:  noopAuditor{},
		now:      time.Now,
		region:   "VE",
		debounce: 500 * time.Millisecond,
		logger:   logging.Named("coordinator"),
		filter:   models.FilterAll,
		view:     models.ViewDashboard,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = NewFeed(0)
	}
	if c.selector == nil {
		c.selector = defaultSelector()
	}
	c.picker = geocoding.NewPicker(c.geocoder, c.debounce, c.setPicked)
	return c
}

// Close releases background resources
func (c *Coordinator) Close() {
	c.picker.Stop()
}

func (c *Coordinator) notify(title, description string, variant models.NotificationVariant) {
	c.notifier.Notify(models.Notification{
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   c.now(),
	})
}

func (c *Coordinator) fail(title string, err error) {
	c.notify(title, err.Error(), models.VariantDestructive)
}

// Notifications returns the retained notifications when the notifier keeps any
func (c *Coordinator) Notifications() []models.Notification {
	if feed, ok := c.notifier.(*Feed); ok {
		return feed.Recent()
	}
	return []models.Notification{}
}

// LoadInitialState fetches both collections concurrently. A failed fetch is
// reported and leaves that collection as it was; the other still loads.
func (c *Coordinator) LoadInitialState(ctx context.Context) error {
	var (
		beneficiaries []models.Beneficiary
		activities    []models.Activity
		benErr        error
		actErr        error
		g             errgroup.Group
	)

	g.Go(func() error {
		beneficiaries, benErr = c.store.Beneficiaries().SelectAll(ctx)
		return nil
	})
	g.Go(func() error {
		activities, actErr = c.store.Activities().SelectAll(ctx)
		return nil
	})
	_ = g.Wait()

	c.mu.Lock()
	if benErr == nil {
		c.beneficiaries = beneficiaries
	}
	if actErr == nil {
		c.activities = activities
	}
	c.mu.Unlock()

	var errs []error
	if benErr != nil {
		c.logger.Error("failed to load beneficiaries", zap.Error(benErr))
		c.fail("Error al cargar Adultos Mayores", benErr)
		errs = append(errs, models.StoreError("select beneficiaries", benErr))
	}
	if actErr != nil {
		c.logger.Error("failed to load activities", zap.Error(actErr))
		c.fail("Error al cargar Actividades", actErr)
		errs = append(errs, models.StoreError("select activities", actErr))
	}
	return errors.Join(errs...)
}

// Authenticate signs in through the auth API. Failures are reported with a
// generic message regardless of which credential was wrong.
func (c *Coordinator) Authenticate(ctx context.Context, creds auth.Credentials) (auth.Session, error) {
	if c.auth == nil {
		c.notify("Error de autenticación", "Correo o contraseña incorrectos.", models.VariantDestructive)
		return auth.Session{}, models.ErrAuthenticationFailed
	}

	session, err := c.auth.SignIn(ctx, creds)
	if err != nil {
		if !errors.Is(err, models.ErrAuthenticationFailed) {
			c.logger.Error("sign-in failed", zap.Error(err))
		}
		c.notify("Error de autenticación", "Correo o contraseña incorrectos.", models.VariantDestructive)
		return auth.Session{}, models.ErrAuthenticationFailed
	}

	c.mu.Lock()
	c.session = &session
	c.loginVisible = false
	c.mu.Unlock()

	c.auditor.Record(ctx, utils.AuditActionLogin, utils.AuditResourceSession, session.ID, nil, nil, nil)
	c.notify("¡Bienvenido!", "Has iniciado sesión correctamente.", models.VariantDefault)
	return session, nil
}

// RestoreSession adopts an existing session token
func (c *Coordinator) RestoreSession(ctx context.Context, token string) error {
	if c.auth == nil {
		return models.ErrUnauthenticated
	}
	session, err := c.auth.GetSession(ctx, token)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.session = &session
	c.loginVisible = false
	c.mu.Unlock()
	return nil
}

// SignOut revokes the session and resets navigation to the dashboard. The
// local session is dropped even when revocation fails.
func (c *Coordinator) SignOut(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.view = models.ViewDashboard
	c.editor = EditorState{}
	c.mu.Unlock()

	if session == nil {
		return models.ErrUnauthenticated
	}

	var err error
	if c.auth != nil {
		if err = c.auth.SignOut(ctx, session.Token); err != nil {
			c.logger.Warn("failed to revoke session", zap.Error(err))
		}
	}

	c.auditor.Record(ctx, utils.AuditActionLogout, utils.AuditResourceSession, session.ID, nil, nil, nil)
	c.notify("Sesión cerrada", "Has cerrado sesión correctamente.", models.VariantDefault)
	return err
}

// IsAuthenticated reports whether the coordinator holds an unexpired session
func (c *Coordinator) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session != nil && c.now().Before(c.session.ExpiresAt)
}

// Session returns the current session
func (c *Coordinator) Session() (auth.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return auth.Session{}, false
	}
	return *c.session, true
}

// ShowLogin opens or closes the login surface
func (c *Coordinator) ShowLogin(visible bool) {
	c.mu.Lock()
	c.loginVisible = visible
	c.mu.Unlock()
}

// LoginVisible reports whether the login surface is open
func (c *Coordinator) LoginVisible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loginVisible
}

// SetView switches the navigation section
func (c *Coordinator) SetView(v models.View) error {
	if !v.Valid() {
		return models.ErrInvalidStatus
	}
	c.mu.Lock()
	c.view = v
	c.mu.Unlock()
	return nil
}

// CurrentView returns the navigation section
func (c *Coordinator) CurrentView() models.View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// SetSearchTerm sets the beneficiary search term
func (c *Coordinator) SetSearchTerm(term string) {
	c.mu.Lock()
	c.searchTerm = term
	c.mu.Unlock()
}

// SetFilterStatus sets the beneficiary status filter
func (c *Coordinator) SetFilterStatus(f models.StatusFilter) error {
	if !f.Valid() {
		return models.ErrInvalidStatus
	}
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
	return nil
}

// OpenEditor selects the edit context. An empty id opens a blank form.
func (c *Coordinator) OpenEditor(kind EditorKind, id string) {
	c.mu.Lock()
	c.editor = EditorState{Open: true, Kind: kind, ID: id}
	c.mu.Unlock()
}

// CloseEditor clears the edit context
func (c *Coordinator) CloseEditor() {
	c.mu.Lock()
	c.editor = EditorState{}
	c.mu.Unlock()
}

// Editor returns the edit context
func (c *Coordinator) Editor() EditorState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editor
}

// PickLocation feeds the debounced location picker
func (c *Coordinator) PickLocation(lat, lng float64) {
	c.picker.Move(lat, lng)
}

// PickedLocation returns the last resolved picker location
func (c *Coordinator) PickedLocation() (geocoding.Location, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.picked == nil {
		return geocoding.Location{}, false
	}
	return *c.picked, true
}

func (c *Coordinator) setPicked(loc geocoding.Location) {
	c.mu.Lock()
	c.picked = &loc
	c.mu.Unlock()
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
