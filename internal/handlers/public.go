package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
)

// PublicLookup godoc
// @Summary Consulta pública de inscripción
// @Description Busca un adulto mayor por nombre o cédula y devuelve las actividades en las que está inscrito.
// @Tags public
// @Produce json
// @Param q query string true "Nombre o cédula"
// @Success 200 {object} models.LookupResult "Adulto mayor y sus actividades"
// @Failure 400 {object} ErrorResponse "Falta el término de búsqueda"
// @Failure 404 {object} ErrorResponse "Sin coincidencias"
// @Router /public/lookup [get]
func (h *Handlers) PublicLookup(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter q is required"})
		return
	}
	result, found := h.sessions.Public().PublicLookup(term)
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: models.ErrBeneficiaryNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PublicCalendar godoc
// @Summary Calendario de actividades
// @Description Actividades del mes agrupadas por día. Sin parámetros usa el mes actual.
// @Tags public
// @Produce json
// @Param year query int false "Año"
// @Param month query int false "Mes (1-12)"
// @Success 200 {array} models.CalendarDay "Días con actividades"
// @Failure 400 {object} ErrorResponse "Año o mes inválido"
// @Router /public/calendar [get]
func (h *Handlers) PublicCalendar(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			respondError(c, models.ErrInvalidDate)
			return
		}
		year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			respondError(c, models.ErrInvalidDate)
			return
		}
		month = time.Month(m)
	}

	c.JSON(http.StatusOK, h.sessions.Public().Calendar(year, month))
}

// PublicUpcoming godoc
// @Summary Próximas actividades
// @Tags public
// @Produce json
// @Param limit query int false "Cantidad máxima" default(5)
// @Success 200 {array} models.PublicActivity "Próximas actividades"
// @Router /public/upcoming [get]
func (h *Handlers) PublicUpcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, models.PublicActivities(h.sessions.Public().UpcomingActivities(limit)))
}

// PublicStats godoc
// @Summary Estadísticas generales
// @Tags public
// @Produce json
// @Success 200 {object} models.Stats "Estadísticas"
// @Router /public/stats [get]
func (h *Handlers) PublicStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Public().Stats())
}
