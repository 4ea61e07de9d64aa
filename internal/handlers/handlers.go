package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/coordinator"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/geocoding"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/middleware"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports the state of each backing service
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Check probes one backing service
type Check func(ctx context.Context) error

// Handlers serves the HTTP API on top of the session coordinators
type Handlers struct {
	sessions *coordinator.Manager
	geocoder geocoding.ReverseGeocoder
	checks   map[string]Check
}

// New creates the handlers. geocoder may be nil, in which case lookups
// return the unavailable placeholder.
func New(sessions *coordinator.Manager, geocoder geocoding.ReverseGeocoder, checks map[string]Check) *Handlers {
	if checks == nil {
		checks = map[string]Check{}
	}
	return &Handlers{sessions: sessions, geocoder: geocoder, checks: checks}
}

// Register mounts every route on v1
func (h *Handlers) Register(v1 *gin.RouterGroup) {
	v1.GET("/health", h.HealthCheck)

	public := v1.Group("/public")
	{
		public.GET("/lookup", h.PublicLookup)
		public.GET("/calendar", h.PublicCalendar)
		public.GET("/upcoming", h.PublicUpcoming)
		public.GET("/stats", h.PublicStats)
	}

	v1.POST("/auth/login", h.Login)
	v1.GET("/auth/session", h.GetSession)

	private := v1.Group("", middleware.SessionAuth(h.sessions), middleware.AuditContext())
	{
		private.POST("/auth/logout", h.Logout)
		private.GET("/dashboard", h.GetDashboard)
		private.GET("/notifications", h.GetNotifications)

		private.GET("/beneficiaries", h.ListBeneficiaries)
		private.POST("/beneficiaries", h.CreateBeneficiary)
		private.GET("/beneficiaries/:id", h.GetBeneficiary)
		private.PUT("/beneficiaries/:id", h.UpdateBeneficiary)
		private.DELETE("/beneficiaries/:id", h.DeleteBeneficiary)
		private.GET("/health-records", h.ListHealthRecords)

		private.GET("/activities", h.ListActivities)
		private.POST("/activities", h.CreateActivity)
		private.PUT("/activities/:id", h.UpdateActivity)
		private.DELETE("/activities/:id", h.DeleteActivity)
		private.GET("/activities/:id/participants", h.GetParticipants)

		private.GET("/raffles", h.ListRaffles)
		private.POST("/raffles", h.CreateRaffle)
		private.PUT("/raffles/:id", h.UpdateRaffle)
		private.DELETE("/raffles/:id", h.DeleteActivity)
		private.POST("/raffles/:id/draw", h.DrawRaffle)

		private.GET("/nutrition", h.GetNutrition)
		private.PUT("/nutrition", h.UpdateNutrition)

		private.GET("/geocode/reverse", h.ReverseGeocode)
		private.POST("/location/pick", h.PickLocation)
		private.GET("/location/pick", h.GetPickedLocation)
	}
}

// errorStatus maps coordinator errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrInvalidActivityType),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrNotARaffle),
		errors.Is(err, models.ErrNoParticipants),
		errors.Is(err, models.ErrActivityKindMismatch):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrAuthenticationFailed),
		errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrBeneficiaryNotFound),
		errors.Is(err, models.ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrRaffleCompleted):
		return http.StatusConflict
	case errors.Is(err, models.ErrStoreFailure):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		observability.Logger().Error("unhandled error", zap.Error(err), zap.String("path", c.FullPath()))
		message = "Internal server error"
	}
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: message})
}

// sessionCoordinator returns the coordinator stored by the auth middleware
func sessionCoordinator(c *gin.Context) (*coordinator.Coordinator, bool) {
	coord, ok := middleware.Coordinator(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: models.ErrUnauthenticated.Error()})
		return nil, false
	}
	return coord, true
}

// HealthCheck godoc
// @Summary Verificar estado del servicio
// @Description Comprueba la conectividad con los servicios de respaldo (almacenamiento, Redis).
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Servicio saludable"
// @Failure 503 {object} HealthResponse "Algún servicio no responde"
// @Router /health [get]
func (h *Handlers) HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{},
	}
	status := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			observability.Logger().Warn("health check failed", zap.String("service", name), zap.Error(err))
			response.Services[name] = "unhealthy"
			response.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Services[name] = "healthy"
	}
	span.SetAttributes(attribute.String("health.status", response.Status))

	c.JSON(status, response)
}
