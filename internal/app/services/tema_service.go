package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/plantilla/apiestudiantes/internal/app/models"
	"github.com/plantilla/apiestudiantes/internal/app/models/dto"
	"github.com/plantilla/apiestudiantes/internal/pkg/apperrors"
)

// TemaService defines the interface for tema-related operations.
type TemaService interface {
	SaveTema(ctx context.Context, tema *models.Tema) (*dto.Response, error)
	FindAll(ctx context.Context) ([]models.Tema, error)
	FindByID(ctx context.Context, id int64) (*models.Tema, error)
}

// temaServiceImpl implements the TemaService interface
type temaServiceImpl struct {
	temaRepo TemaRepository
}

// NewTemaService creates a new tema service instance
func NewTemaService(temaRepo TemaRepository) TemaService {
	return &temaServiceImpl{temaRepo: temaRepo}
}

// SaveTema creates a new tema. Descripcion must be present and non-blank at
// creation time even though the column is nullable; that business rule is
// intentional (see DESIGN.md).
func (s *temaServiceImpl) SaveTema(ctx context.Context, tema *models.Tema) (*dto.Response, error) {
	if err := validNoEmptyTema(tema); err != nil {
		return nil, err
	}
	if err := s.validateNameNotExist(ctx, tema.Nombre); err != nil {
		return nil, err
	}

	// Accept the owning curso either as a nested reference or as a plain id.
	if tema.CursoID == nil && tema.Curso != nil {
		tema.CursoID = &tema.Curso.ID
	}

	if err := s.temaRepo.Save(ctx, tema); err != nil {
		return nil, fmt.Errorf("error saving tema: %w", err)
	}

	temaDto := buildTemaDto(tema)
	return dto.NewResponse("Se ha guardado correctamente", temaDto), nil
}

// FindAll retrieves all tema records, unfiltered and unpaginated.
func (s *temaServiceImpl) FindAll(ctx context.Context) ([]models.Tema, error) {
	return s.temaRepo.FindAll(ctx)
}

// FindByID retrieves a tema or nil when the id does not resolve; no error
// is raised for the absent case at this layer.
func (s *temaServiceImpl) FindByID(ctx context.Context, id int64) (*models.Tema, error) {
	return s.temaRepo.FindByID(ctx, id)
}

func validNoEmptyTema(tema *models.Tema) error {
	if tema == nil {
		return apperrors.NewCursoInvalidError("El tema no puede ser nulo.")
	}

	if tema.Descripcion == nil || strings.TrimSpace(*tema.Descripcion) == "" {
		return apperrors.NewCursoInvalidError("El nombre del tema no puede estar vacío.")
	}

	return nil
}

func (s *temaServiceImpl) validateNameNotExist(ctx context.Context, nombre string) error {
	exists, err := s.temaRepo.ExistsByNombre(ctx, nombre)
	if err != nil {
		return fmt.Errorf("error checking tema nombre: %w", err)
	}

	if exists {
		return apperrors.NewTemaError("El nombre del tema YA existe")
	}

	return nil
}

func buildTemaDto(tema *models.Tema) dto.TemaDto {
	return dto.TemaDto{
		IDTema:      tema.ID,
		Nombre:      tema.Nombre,
		Descripcion: tema.Descripcion,
		IDCurso:     tema.CursoID,
	}
}
