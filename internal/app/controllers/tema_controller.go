package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plantilla/apiestudiantes/internal/app/models"
	"github.com/plantilla/apiestudiantes/internal/app/models/dto"
	"github.com/plantilla/apiestudiantes/internal/app/services"
	"github.com/plantilla/apiestudiantes/internal/middleware"
)

// TemaController handles tema-related operations
type TemaController struct {
	temaService services.TemaService
}

// NewTemaController creates a new TemaController
func NewTemaController(temaService services.TemaService) *TemaController {
	return &TemaController{temaService: temaService}
}

// CrearTema handles tema creation
// @Summary Create a new tema
// @Tags temas
// @Accept json
// @Produce json
// @Param request body models.Tema true "Tema information"
// @Success 201 {object} dto.Response{data=dto.TemaDto} "Tema created"
// @Failure 400 {object} dto.Response "Business-rule violation"
// @Router /creartema [post]
func (c *TemaController) CrearTema(ctx *gin.Context) {
	var tema models.Tema
	if err := ctx.ShouldBindJSON(&tema); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationErrorsMessage, middleware.FieldErrors(err)))
		return
	}

	response, err := c.temaService.SaveTema(ctx.Request.Context(), &tema)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// ConsultarTemas lists all temas. The response is the raw record list, not
// wrapped in the envelope.
// @Summary List all temas
// @Tags temas
// @Produce json
// @Success 200 {array} models.Tema "All temas"
// @Router /consultar/temas [get]
func (c *TemaController) ConsultarTemas(ctx *gin.Context) {
	temas, err := c.temaService.FindAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, temas)
}

// ConsultarTema retrieves one tema by ID. The response is the raw record, or
// a null body when the id does not resolve.
// @Summary Get tema by ID
// @Tags temas
// @Produce json
// @Param id path int true "Tema ID"
// @Success 200 {object} models.Tema "Tema, or null when absent"
// @Router /consultar/tema/{id} [get]
func (c *TemaController) ConsultarTema(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	tema, err := c.temaService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tema)
}
