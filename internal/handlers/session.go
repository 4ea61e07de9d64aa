package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/auth"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/middleware"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
	"go.uber.org/zap"
)

// DashboardResponse is the landing view of a signed-in administrator
type DashboardResponse struct {
	Stats    models.Stats      `json:"stats"`
	Upcoming []models.Activity `json:"upcoming"`
	View     models.View       `json:"view"`
}

// Login godoc
// @Summary Iniciar sesión
// @Description Autentica al administrador y devuelve un token de sesión. El mensaje de error no indica qué credencial es incorrecta.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.Credentials true "Correo y contraseña"
// @Success 200 {object} auth.Session "Sesión iniciada"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido"
// @Failure 401 {object} ErrorResponse "Credenciales incorrectas"
// @Router /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	ctx, span := utils.TraceInputParsing(c.Request.Context(), "credentials")
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		span.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	span.End()

	ctx = utils.WithAuditContext(ctx, utils.AuditContext{
		UserID:    creds.Email,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: c.GetString("request_id"),
	})

	_, session, err := h.sessions.SignIn(ctx, creds)
	if err != nil {
		respondError(c, err)
		return
	}

	observability.Logger().Info("administrator signed in", zap.String("request_id", c.GetString("request_id")))
	c.JSON(http.StatusOK, session)
}

// GetSession godoc
// @Summary Consultar la sesión actual
// @Description Devuelve la sesión asociada al token Bearer si sigue vigente.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Session "Sesión vigente"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /auth/session [get]
func (h *Handlers) GetSession(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	coord, err := h.sessions.Acquire(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	session, ok := coord.Session()
	if !ok {
		respondError(c, models.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Logout godoc
// @Summary Cerrar sesión
// @Description Revoca la sesión actual y libera su estado.
// @Tags auth
// @Security BearerAuth
// @Success 204 "Sesión cerrada"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.sessions.SignOut(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		observability.Logger().Warn("sign-out incomplete", zap.Error(err))
	}
	c.Status(http.StatusNoContent)
}

// GetDashboard godoc
// @Summary Panel principal
// @Description Estadísticas agregadas y próximas actividades.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse "Panel"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /dashboard [get]
func (h *Handlers) GetDashboard(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	_ = coord.SetView(models.ViewDashboard)
	c.JSON(http.StatusOK, DashboardResponse{
		Stats:    coord.Stats(),
		Upcoming: coord.UpcomingActivities(0),
		View:     coord.CurrentView(),
	})
}

// GetNotifications godoc
// @Summary Notificaciones recientes
// @Description Resultado visible de las últimas operaciones de la sesión, de la más antigua a la más reciente.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Notification "Notificaciones"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /notifications [get]
func (h *Handlers) GetNotifications(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, coord.Notifications())
}
