package coordinator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/auth"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail    = "admin@example.org"
	testAdminPassword = "clave-segura"
)

func newAuthService(t *testing.T) *auth.Service {
	t.Helper()
	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)
	svc, err := auth.NewService(auth.Options{
		AdminEmail:        testAdminEmail,
		AdminPasswordHash: hash,
		Secret:            "test-secret",
		TTL:               time.Hour,
	}, auth.NewMemoryRegistry())
	require.NoError(t, err)
	return svc
}

func seededStore() *store.Memory {
	mem := store.NewMemory()
	mem.Seed([]models.Beneficiary{{ID: "1", Name: "Ana", Status: models.BeneficiaryActive}}, nil)
	return mem
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)
	feed := NewFeed(10)
	c := New(store.NewMemory(), svc, WithNotifier(feed))
	defer c.Close()

	c.ShowLogin(true)
	_, err := c.Authenticate(ctx, auth.Credentials{Email: testAdminEmail, Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrAuthenticationFailed)
	assert.False(t, c.IsAuthenticated())
	assert.True(t, c.LoginVisible())
	n := latest(t, feed)
	assert.Equal(t, "Error de autenticación", n.Title)
	assert.Equal(t, "Correo o contraseña incorrectos.", n.Description)

	_, err = c.Authenticate(ctx, auth.Credentials{Email: "other@example.org", Password: testAdminPassword})
	assert.ErrorIs(t, err, models.ErrAuthenticationFailed)
	assert.Equal(t, n.Description, latest(t, feed).Description)

	session, err := c.Authenticate(ctx, auth.Credentials{Email: testAdminEmail, Password: testAdminPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, c.IsAuthenticated())
	assert.False(t, c.LoginVisible())
	assert.Equal(t, "¡Bienvenido!", latest(t, feed).Title)

	require.NoError(t, c.SetView(models.ViewNutrition))
	require.NoError(t, c.SignOut(ctx))
	assert.False(t, c.IsAuthenticated())
	assert.Equal(t, models.ViewDashboard, c.CurrentView())
	assert.Equal(t, "Sesión cerrada", latest(t, feed).Title)

	_, err = svc.GetSession(ctx, session.Token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	assert.ErrorIs(t, c.SignOut(ctx), models.ErrUnauthenticated)
}

func TestManager_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)
	mem := seededStore()
	m := NewManager(mem, svc, WithFeedSize(10))
	defer m.Close()

	_, _, err := m.SignIn(ctx, auth.Credentials{Email: testAdminEmail, Password: "nope"})
	assert.ErrorIs(t, err, models.ErrAuthenticationFailed)
	assert.Equal(t, 0, m.Sessions())

	c, session, err := m.SignIn(ctx, auth.Credentials{Email: testAdminEmail, Password: testAdminPassword})
	require.NoError(t, err)
	assert.Len(t, c.Beneficiaries(), 1)
	assert.Equal(t, 1, m.Sessions())

	again, err := m.Acquire(ctx, session.Token)
	require.NoError(t, err)
	assert.Same(t, c, again)

	require.NoError(t, m.SignOut(ctx, session.Token))
	assert.Equal(t, 0, m.Sessions())

	_, err = m.Acquire(ctx, session.Token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, err = m.Acquire(ctx, "garbage")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestManager_AcquireRestoresSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)
	mem := seededStore()

	session, err := svc.SignIn(ctx, auth.Credentials{Email: testAdminEmail, Password: testAdminPassword})
	require.NoError(t, err)

	m := NewManager(mem, svc)
	defer m.Close()

	c, err := m.Acquire(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, c.IsAuthenticated())
	assert.Len(t, c.Beneficiaries(), 1)
	assert.Equal(t, 1, m.Sessions())
}

func TestManager_RunLoadsPublicCoordinator(t *testing.T) {
	svc := newAuthService(t)
	mem := seededStore()
	m := NewManager(mem, svc)
	defer m.Close()

	m.Run(context.Background(), 0)
	assert.Len(t, m.Public().Beneficiaries(), 1)
	assert.False(t, m.Public().IsAuthenticated())

	_, err := m.Public().Authenticate(context.Background(), auth.Credentials{Email: testAdminEmail, Password: testAdminPassword})
	assert.ErrorIs(t, err, models.ErrAuthenticationFailed)
}

func TestManager_SweepReleasesExpired(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)
	var now atomic.Value
	now.Store(time.Now())
	m := NewManager(seededStore(), svc, WithClock(func() time.Time { return now.Load().(time.Time) }))
	defer m.Close()

	_, _, err := m.SignIn(ctx, auth.Credentials{Email: testAdminEmail, Password: testAdminPassword})
	require.NoError(t, err)

	m.Sweep()
	assert.Equal(t, 1, m.Sessions())

	now.Store(time.Now().Add(2 * time.Hour))
	m.Sweep()
	assert.Equal(t, 0, m.Sessions())
}

type stubGeocoder struct {
	calls   atomic.Int32
	address string
	err     error
}

func (s *stubGeocoder) Reverse(context.Context, float64, float64) (string, error) {
	s.calls.Add(1)
	return s.address, s.err
}

func TestPickLocation_Debounced(t *testing.T) {
	geo := &stubGeocoder{address: "Plaza Bolívar, Caracas"}
	c, _ := newTestCoordinator(t, store.NewMemory(), WithGeocoder(geo, 20*time.Millisecond))

	c.PickLocation(1, 1)
	c.PickLocation(2, 2)
	c.PickLocation(10.5, -66.9)

	require.Eventually(t, func() bool {
		_, ok := c.PickedLocation()
		return ok
	}, time.Second, 5*time.Millisecond)

	loc, _ := c.PickedLocation()
	assert.Equal(t, 10.5, loc.Lat)
	assert.Equal(t, -66.9, loc.Lng)
	assert.Equal(t, "Plaza Bolívar, Caracas", loc.Address)
	assert.Equal(t, int32(1), geo.calls.Load())
}

func TestPickLocation_FallbackAddress(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("timeout")}
	c, _ := newTestCoordinator(t, store.NewMemory(), WithGeocoder(geo, time.Millisecond))

	c.PickLocation(10.5, -66.9)

	require.Eventually(t, func() bool {
		_, ok := c.PickedLocation()
		return ok
	}, time.Second, 5*time.Millisecond)
	loc, _ := c.PickedLocation()
	assert.Equal(t, "Error al obtener la dirección.", loc.Address)
}
