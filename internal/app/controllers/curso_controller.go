package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plantilla/apiestudiantes/internal/app/models"
	"github.com/plantilla/apiestudiantes/internal/app/models/dto"
	"github.com/plantilla/apiestudiantes/internal/app/services"
	"github.com/plantilla/apiestudiantes/internal/middleware"
	"github.com/plantilla/apiestudiantes/internal/pkg/helpers"
)

const (
	validationErrorsMessage      = "Errores de validación"
	paramValidationErrorsMessage = "Errores de validación en los parámetros"
)

// CursoController handles curso-related operations
type CursoController struct {
	cursoService services.CursoService
}

// NewCursoController creates a new CursoController
func NewCursoController(cursoService services.CursoService) *CursoController {
	return &CursoController{cursoService: cursoService}
}

// CrearCurso handles curso creation
// @Summary Create a new curso
// @Description Validates name uniqueness and modality, then persists the curso
// @Tags cursos
// @Accept json
// @Produce json
// @Param request body models.Curso true "Curso information"
// @Success 201 {object} dto.Response{data=dto.CursoDto} "Curso created"
// @Failure 400 {object} dto.Response "Validation failure"
// @Failure 500 {object} dto.Response "Store failure"
// @Router /curso/crear [post]
func (c *CursoController) CrearCurso(ctx *gin.Context) {
	var curso models.Curso
	if err := ctx.ShouldBindJSON(&curso); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationErrorsMessage, middleware.FieldErrors(err)))
		return
	}

	response, err := c.cursoService.SaveCurso(ctx.Request.Context(), &curso)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// ListarCursos retrieves one page of cursos
// @Summary List cursos
// @Description Retrieves cursos page by page; page index is 0-based
// @Tags cursos
// @Produce json
// @Param page query int false "Page number (0-based)" minimum(0) default(0)
// @Param size query int false "Page size" minimum(0) default(10)
// @Success 200 {object} dto.Response{data=dto.CursoPageDto} "Page of cursos"
// @Failure 400 {object} dto.Response "Invalid pagination parameters"
// @Router /cursos/listar [get]
func (c *CursoController) ListarCursos(ctx *gin.Context) {
	paramErrors := make(map[string]string)

	page, err := strconv.Atoi(ctx.DefaultQuery("page", strconv.Itoa(helpers.DefaultPage)))
	if err != nil || page < 0 {
		paramErrors["page"] = "page debe ser un entero mayor o igual a 0"
	}

	size, err := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(helpers.DefaultPageSize)))
	if err != nil || size < 0 {
		paramErrors["size"] = "size debe ser un entero mayor o igual a 0"
	}

	if len(paramErrors) > 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(paramValidationErrorsMessage, paramErrors))
		return
	}

	response, err := c.cursoService.GetCursos(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ObtenerCurso retrieves a curso by ID
// @Summary Get curso by ID
// @Tags cursos
// @Produce json
// @Param id path int true "Curso ID"
// @Success 200 {object} dto.Response{data=dto.CursoDto} "Curso retrieved"
// @Failure 400 {object} dto.Response "Invalid curso ID"
// @Failure 404 {object} dto.Response "Curso not found"
// @Router /curso/mostrar/{id} [get]
func (c *CursoController) ObtenerCurso(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	response, err := c.cursoService.GetCurso(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ModificarCursoModalidad overwrites only the modality of a curso
// @Summary Partially update a curso
// @Description Overwrites the modality with the value supplied as query param
// @Tags cursos
// @Produce json
// @Param id path int true "Curso ID"
// @Param modalidad query string true "New modality"
// @Success 200 {object} dto.Response{data=dto.CursoDto} "Curso updated"
// @Failure 400 {object} dto.Response "Blank modality or invalid ID"
// @Failure 404 {object} dto.Response "Curso not found"
// @Router /curso/modificar/{id} [patch]
func (c *CursoController) ModificarCursoModalidad(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	nuevaModalidad := ctx.Query("modalidad")
	if strings.TrimSpace(nuevaModalidad) == "" {
		paramErrors := map[string]string{"modalidad": "La modalidad no puede estar en blanco"}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(paramValidationErrorsMessage, paramErrors))
		return
	}

	response, err := c.cursoService.EditCursoModalidad(ctx.Request.Context(), id, nuevaModalidad)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ModificarCurso replaces a curso from the DTO in the body
// @Summary Fully update a curso
// @Description Replace semantics, fields absent from the body are blanked
// @Tags cursos
// @Accept json
// @Produce json
// @Param request body dto.CursoDto true "Curso data, id required"
// @Success 200 {object} dto.Response{data=dto.CursoDto} "Curso updated"
// @Failure 400 {object} dto.Response "Validation failure"
// @Failure 404 {object} dto.Response "Curso not found"
// @Router /curso/modificar [put]
func (c *CursoController) ModificarCurso(ctx *gin.Context) {
	var cursoDto dto.CursoDto
	if err := ctx.ShouldBindJSON(&cursoDto); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationErrorsMessage, middleware.FieldErrors(err)))
		return
	}

	if cursoDto.FechaFinalizacion != nil && !cursoDto.FechaFinalizacion.After(time.Now()) {
		fieldErrors := map[string]string{"fecha_finalizacion": "La fecha de finalización debe ser futura"}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationErrorsMessage, fieldErrors))
		return
	}

	response, err := c.cursoService.EditCurso(ctx.Request.Context(), cursoDto)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// parseIDParam parses the id path parameter, answering the request itself
// when the value is not a valid number.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		paramErrors := map[string]string{"id": "El id debe ser un número válido"}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(paramValidationErrorsMessage, paramErrors))
		return 0, false
	}
	return id, true
}
