package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
)

// ListActivities godoc
// @Summary Listar actividades culturales
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CulturalActivity "Actividades culturales"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /activities [get]
func (h *Handlers) ListActivities(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	_ = coord.SetView(models.ViewActivities)

	rows := coord.Activities(models.ActivityCultural)
	out := make([]models.CulturalActivity, 0, len(rows))
	for _, a := range rows {
		out = append(out, a.Cultural())
	}
	c.JSON(http.StatusOK, out)
}

// ListRaffles godoc
// @Summary Listar rifas
// @Tags raffles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Raffle "Rifas"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /raffles [get]
func (h *Handlers) ListRaffles(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	_ = coord.SetView(models.ViewRaffles)

	rows := coord.Activities(models.ActivityRaffle)
	out := make([]models.Raffle, 0, len(rows))
	for _, a := range rows {
		out = append(out, a.Raffle())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) saveActivity(c *gin.Context, id string, kind models.ActivityType, status int) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}

	ctx, span := utils.TraceInputParsing(c.Request.Context(), string(kind)+"_form")
	var form models.ActivityForm
	var err error
	if kind == models.ActivityRaffle {
		var raffle models.RaffleForm
		err = c.ShouldBindJSON(&raffle)
		form = raffle.ActivityForm()
	} else {
		var cultural models.CulturalActivityForm
		err = c.ShouldBindJSON(&cultural)
		form = cultural.ActivityForm()
	}
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		span.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	span.End()

	row, err := coord.CreateOrUpdateActivity(ctx, id, kind, form)
	if err != nil {
		respondError(c, err)
		return
	}
	if kind == models.ActivityRaffle {
		c.JSON(status, row.Raffle())
		return
	}
	c.JSON(status, row.Cultural())
}

// CreateActivity godoc
// @Summary Crear actividad cultural
// @Description El estado por defecto es programada.
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body models.CulturalActivityForm true "Actividad cultural"
// @Security BearerAuth
// @Success 201 {object} models.CulturalActivity "Actividad creada"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /activities [post]
func (h *Handlers) CreateActivity(c *gin.Context) {
	h.saveActivity(c, "", models.ActivityCultural, http.StatusCreated)
}

// UpdateActivity godoc
// @Summary Actualizar actividad cultural
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "ID de la actividad"
// @Param activity body models.CulturalActivityForm true "Actividad cultural"
// @Security BearerAuth
// @Success 200 {object} models.CulturalActivity "Actividad actualizada"
// @Failure 400 {object} ErrorResponse "Datos inválidos o tipo distinto"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "No encontrada"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /activities/{id} [put]
func (h *Handlers) UpdateActivity(c *gin.Context) {
	h.saveActivity(c, c.Param("id"), models.ActivityCultural, http.StatusOK)
}

// CreateRaffle godoc
// @Summary Crear rifa
// @Description La rifa se crea activa y sin ganador.
// @Tags raffles
// @Accept json
// @Produce json
// @Param raffle body models.RaffleForm true "Rifa"
// @Security BearerAuth
// @Success 201 {object} models.Raffle "Rifa creada"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /raffles [post]
func (h *Handlers) CreateRaffle(c *gin.Context) {
	h.saveActivity(c, "", models.ActivityRaffle, http.StatusCreated)
}

// UpdateRaffle godoc
// @Summary Actualizar rifa
// @Description Una rifa ya sorteada no puede editarse.
// @Tags raffles
// @Accept json
// @Produce json
// @Param id path string true "ID de la rifa"
// @Param raffle body models.RaffleForm true "Rifa"
// @Security BearerAuth
// @Success 200 {object} models.Raffle "Rifa actualizada"
// @Failure 400 {object} ErrorResponse "Datos inválidos o tipo distinto"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "No encontrada"
// @Failure 409 {object} ErrorResponse "Rifa ya sorteada"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /raffles/{id} [put]
func (h *Handlers) UpdateRaffle(c *gin.Context) {
	h.saveActivity(c, c.Param("id"), models.ActivityRaffle, http.StatusOK)
}

// DeleteActivity godoc
// @Summary Eliminar actividad o rifa
// @Tags activities
// @Param id path string true "ID de la actividad"
// @Security BearerAuth
// @Success 204 "Eliminada"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "No encontrada"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /activities/{id} [delete]
func (h *Handlers) DeleteActivity(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	if err := coord.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetParticipants godoc
// @Summary Participantes de una actividad
// @Description Resuelve cada ID contra el padrón. Los IDs sin registro se devuelven con found=false.
// @Tags activities
// @Produce json
// @Param id path string true "ID de la actividad"
// @Security BearerAuth
// @Success 200 {array} models.ParticipantView "Participantes"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "No encontrada"
// @Router /activities/{id}/participants [get]
func (h *Handlers) GetParticipants(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	views, err := coord.ResolveParticipants(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// DrawRaffle godoc
// @Summary Sortear ganador
// @Description Elige un participante al azar con probabilidad uniforme y cierra la rifa.
// @Tags raffles
// @Produce json
// @Param id path string true "ID de la rifa"
// @Security BearerAuth
// @Success 200 {object} models.Raffle "Rifa sorteada"
// @Failure 400 {object} ErrorResponse "No es una rifa o no tiene participantes"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "No encontrada"
// @Failure 409 {object} ErrorResponse "Rifa ya sorteada"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /raffles/{id}/draw [post]
func (h *Handlers) DrawRaffle(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	row, err := coord.DrawRaffleWinner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row.Raffle())
}
