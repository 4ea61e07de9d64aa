package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/geocoding"
)

// PickRequest is a point on the location picker map
type PickRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

func parseCoordinate(c *gin.Context) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || !geocoding.ValidCoordinate(lat, lng) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid coordinates"})
		return 0, 0, false
	}
	return lat, lng, true
}

// ReverseGeocode godoc
// @Summary Dirección de un punto
// @Description Devuelve la dirección del punto. Si el servicio falla se devuelve un texto de reemplazo.
// @Tags geocoding
// @Produce json
// @Param lat query number true "Latitud"
// @Param lng query number true "Longitud"
// @Security BearerAuth
// @Success 200 {object} geocoding.Location "Punto con su dirección"
// @Failure 400 {object} ErrorResponse "Coordenadas inválidas"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /geocode/reverse [get]
func (h *Handlers) ReverseGeocode(c *gin.Context) {
	lat, lng, ok := parseCoordinate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, geocoding.Resolve(c.Request.Context(), h.geocoder, lat, lng))
}

// PickLocation godoc
// @Summary Mover el selector de ubicación
// @Description Registra el punto; la dirección se resuelve tras un breve intervalo sin movimiento y solo para el último punto.
// @Tags geocoding
// @Accept json
// @Param point body PickRequest true "Punto"
// @Security BearerAuth
// @Success 202 "Punto aceptado"
// @Failure 400 {object} ErrorResponse "Coordenadas inválidas"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /location/pick [post]
func (h *Handlers) PickLocation(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	var req PickRequest
	if err := c.ShouldBindJSON(&req); err != nil || !geocoding.ValidCoordinate(*req.Lat, *req.Lng) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid coordinates"})
		return
	}
	coord.PickLocation(*req.Lat, *req.Lng)
	c.Status(http.StatusAccepted)
}

// GetPickedLocation godoc
// @Summary Ubicación seleccionada
// @Description Último punto resuelto por el selector de ubicación.
// @Tags geocoding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} geocoding.Location "Punto con su dirección"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "Aún no hay ubicación"
// @Router /location/pick [get]
func (h *Handlers) GetPickedLocation(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	loc, found := coord.PickedLocation()
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no location picked"})
		return
	}
	c.JSON(http.StatusOK, loc)
}
