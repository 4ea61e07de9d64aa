package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
)

// NutritionRequest selects the nutrition-program members
type NutritionRequest struct {
	BeneficiaryIDs []string `json:"beneficiary_ids"`
}

// ListBeneficiaries godoc
// @Summary Listar adultos mayores
// @Description Lista filtrada por nombre o cédula (q) y por estado. Los filtros quedan guardados en la sesión.
// @Tags beneficiaries
// @Produce json
// @Param q query string false "Texto a buscar en nombre o cédula"
// @Param status query string false "Filtro de estado" Enums(all, active, inactive)
// @Security BearerAuth
// @Success 200 {array} models.Beneficiary "Adultos mayores"
// @Failure 400 {object} ErrorResponse "Filtro inválido"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /beneficiaries [get]
func (h *Handlers) ListBeneficiaries(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	if term, present := c.GetQuery("q"); present {
		coord.SetSearchTerm(term)
	}
	if status, present := c.GetQuery("status"); present {
		if err := coord.SetFilterStatus(models.StatusFilter(status)); err != nil {
			respondError(c, err)
			return
		}
	}
	_ = coord.SetView(models.ViewBeneficiaries)
	c.JSON(http.StatusOK, coord.FilteredBeneficiaries())
}

// GetBeneficiary godoc
// @Summary Obtener un adulto mayor
// @Tags beneficiaries
// @Produce json
// @Param id path string true "ID del adulto mayor"
// @Security BearerAuth
// @Success 200 {object} models.Beneficiary "Adulto mayor"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "No encontrado"
// @Router /beneficiaries/{id} [get]
func (h *Handlers) GetBeneficiary(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	b, err := coord.Beneficiary(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handlers) saveBeneficiary(c *gin.Context, id string, created int) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}

	ctx, span := utils.TraceInputParsing(c.Request.Context(), "beneficiary_form")
	var form models.BeneficiaryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		span.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	span.End()

	row, err := coord.CreateOrUpdateBeneficiary(ctx, id, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(created, row)
}

// CreateBeneficiary godoc
// @Summary Registrar adulto mayor
// @Description Crea un registro. Nombre, edad y cédula son obligatorios; el estado por defecto es activo.
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Param beneficiary body models.BeneficiaryForm true "Datos del adulto mayor"
// @Security BearerAuth
// @Success 201 {object} models.Beneficiary "Registro creado"
// @Failure 400 {object} ErrorResponse "Campos obligatorios faltantes"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /beneficiaries [post]
func (h *Handlers) CreateBeneficiary(c *gin.Context) {
	h.saveBeneficiary(c, "", http.StatusCreated)
}

// UpdateBeneficiary godoc
// @Summary Actualizar adulto mayor
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Param id path string true "ID del adulto mayor"
// @Param beneficiary body models.BeneficiaryForm true "Datos del adulto mayor"
// @Security BearerAuth
// @Success 200 {object} models.Beneficiary "Registro actualizado"
// @Failure 400 {object} ErrorResponse "Campos obligatorios faltantes"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "No encontrado"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /beneficiaries/{id} [put]
func (h *Handlers) UpdateBeneficiary(c *gin.Context) {
	h.saveBeneficiary(c, c.Param("id"), http.StatusOK)
}

// DeleteBeneficiary godoc
// @Summary Eliminar adulto mayor
// @Description Elimina el registro. Las actividades conservan la referencia, que se muestra como participante no encontrado.
// @Tags beneficiaries
// @Param id path string true "ID del adulto mayor"
// @Security BearerAuth
// @Success 204 "Eliminado"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 404 {object} ErrorResponse "No encontrado"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /beneficiaries/{id} [delete]
func (h *Handlers) DeleteBeneficiary(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	if err := coord.DeleteBeneficiary(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListHealthRecords godoc
// @Summary Fichas de salud
// @Description Adultos mayores con alguna patología o discapacidad registrada.
// @Tags beneficiaries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Beneficiary "Fichas de salud"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /health-records [get]
func (h *Handlers) ListHealthRecords(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	_ = coord.SetView(models.ViewHealth)
	c.JSON(http.StatusOK, coord.BeneficiariesWithConditions())
}

// GetNutrition godoc
// @Summary Programa de nutrición
// @Description Adultos mayores inscritos y no inscritos en el programa de nutrición.
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.NutritionView "Inscritos y no inscritos"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Router /nutrition [get]
func (h *Handlers) GetNutrition(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	_ = coord.SetView(models.ViewNutrition)
	c.JSON(http.StatusOK, coord.NutritionSplit())
}

// UpdateNutrition godoc
// @Summary Asignar beneficiarios de nutrición
// @Description Deja inscritos exactamente los IDs indicados. Si una de las dos actualizaciones falla, la otra no se revierte.
// @Tags nutrition
// @Accept json
// @Produce json
// @Param selection body NutritionRequest true "IDs seleccionados"
// @Security BearerAuth
// @Success 200 {object} models.NutritionView "Asignación guardada"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido"
// @Failure 401 {object} ErrorResponse "Sin sesión"
// @Failure 502 {object} ErrorResponse "Error del almacenamiento"
// @Router /nutrition [put]
func (h *Handlers) UpdateNutrition(c *gin.Context) {
	coord, ok := sessionCoordinator(c)
	if !ok {
		return
	}
	var req NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := coord.SetNutritionBeneficiaries(c.Request.Context(), req.BeneficiaryIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, coord.NutritionSplit())
}
