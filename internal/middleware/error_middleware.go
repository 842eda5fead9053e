package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plantilla/apiestudiantes/internal/app/models/dto"
	"github.com/plantilla/apiestudiantes/internal/pkg/apperrors"
	"github.com/plantilla/apiestudiantes/internal/pkg/dberrors"
	"github.com/plantilla/apiestudiantes/internal/pkg/logger"
)

// HandleAPIError translates a domain error into the status code and uniform
// envelope of the API. Store failures are logged with their full entity
// context; only the user-safe message leaves the server.
func HandleAPIError(c *gin.Context, err error) {
	var dbErr *apperrors.DataBaseError

	switch {
	case errors.Is(err, apperrors.ErrCursoNotFound):
		logger.Error().Err(err).Msg("Curso no encontrado")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error(), nil))

	case errors.Is(err, apperrors.ErrCursoInvalid):
		logger.Error().Err(err).Msg("Curso inválido")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))

	case errors.Is(err, apperrors.ErrTemaInvalid):
		logger.Error().Err(err).Msg("Error en el tema")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))

	case errors.As(err, &dbErr):
		event := logger.Error().
			Str("entity", dbErr.Entity).
			Str("entityName", dbErr.EntityName).
			Str("operation", dbErr.Operation).
			AnErr("rootCause", dbErr.Cause)
		if dbErr.EntityID != nil {
			event = event.Int64("entityId", *dbErr.EntityID)
		}
		if dberrors.IsUniqueViolation(dbErr.Cause) {
			event = event.Str("constraint", dberrors.ConstraintName(dbErr.Cause))
		}
		event.Msg("Error al acceder a la base de datos")

		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dbErr.Message, nil))

	default:
		logger.Error().Err(err).Msg("Error inesperado")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Ha ocurrido un error inesperado", nil))
	}
}
