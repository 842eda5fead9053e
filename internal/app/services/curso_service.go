package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/plantilla/apiestudiantes/internal/app/models"
	"github.com/plantilla/apiestudiantes/internal/app/models/dto"
	"github.com/plantilla/apiestudiantes/internal/app/repositories"
	"github.com/plantilla/apiestudiantes/internal/pkg/apperrors"
	"github.com/plantilla/apiestudiantes/internal/pkg/helpers"
	"github.com/plantilla/apiestudiantes/internal/pkg/messages"
)

// CursoService defines the interface for curso-related operations. Every
// method returns the full response envelope so the success message, resolved
// for the request locale, travels with the data.
type CursoService interface {
	SaveCurso(ctx context.Context, curso *models.Curso) (*dto.Response, error)
	GetCursos(ctx context.Context, page, size int) (*dto.Response, error)
	GetCurso(ctx context.Context, id int64) (*dto.Response, error)
	EditCursoModalidad(ctx context.Context, id int64, nuevaModalidad string) (*dto.Response, error)
	EditCurso(ctx context.Context, cursoDto dto.CursoDto) (*dto.Response, error)
}

// cursoServiceImpl implements the CursoService interface
type cursoServiceImpl struct {
	cursoRepo CursoRepository
	temaRepo  TemaRepository
	messages  messages.Resolver
}

// NewCursoService creates a new curso service instance
func NewCursoService(cursoRepo CursoRepository, temaRepo TemaRepository, resolver messages.Resolver) CursoService {
	return &cursoServiceImpl{
		cursoRepo: cursoRepo,
		temaRepo:  temaRepo,
		messages:  resolver,
	}
}

// SaveCurso creates a new curso after checking name uniqueness and modality.
// The name/modality checks run strictly before the write; concurrent
// duplicate creates are left to the store's unique constraint, which
// surfaces here as a DataBaseError rather than a clean validation failure.
func (s *cursoServiceImpl) SaveCurso(ctx context.Context, curso *models.Curso) (*dto.Response, error) {
	locale := messages.LocaleFrom(ctx)

	if err := s.validateNameNotExist(ctx, curso.Nombre); err != nil {
		return nil, err
	}
	if err := s.validateModality(ctx, curso.Modalidad); err != nil {
		return nil, err
	}

	if err := s.cursoRepo.Save(ctx, curso); err != nil {
		userMessage := s.messages.Resolve("curso.save.error", []interface{}{curso.Nombre}, locale)

		var entityID *int64
		if curso.ID != 0 {
			entityID = &curso.ID
		}
		return nil, apperrors.NewDataBaseError(userMessage, "Curso", entityID, curso.Nombre, "Save", err)
	}

	// A freshly created curso has no temas, so the create DTO omits the list.
	cursoDto := buildCursoDtoCreate(curso)

	successMessage := s.messages.Resolve("curso.save.success", []interface{}{curso.Nombre}, locale)
	return dto.NewResponse(successMessage, cursoDto), nil
}

// GetCursos retrieves one 0-based page of cursos with pagination metadata
// sourced from the store.
func (s *cursoServiceImpl) GetCursos(ctx context.Context, page, size int) (*dto.Response, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	cursos, total, err := s.cursoRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cursos: %w", err)
	}

	content := make([]dto.CursoDto, 0, len(cursos))
	for i := range cursos {
		cursoDto, err := s.buildCursoDto(ctx, &cursos[i])
		if err != nil {
			return nil, err
		}
		content = append(content, cursoDto)
	}

	pageDto := dto.CursoPageDto{
		Content:        content,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}

	userMessage := s.messages.Resolve("curso.getAll.success", nil, messages.LocaleFrom(ctx))
	return dto.NewResponse(userMessage, pageDto), nil
}

// GetCurso retrieves a single curso including its tema-id list.
func (s *cursoServiceImpl) GetCurso(ctx context.Context, id int64) (*dto.Response, error) {
	curso, err := s.findByIDCurso(ctx, id)
	if err != nil {
		return nil, err
	}

	cursoDto, err := s.buildCursoDto(ctx, curso)
	if err != nil {
		return nil, err
	}

	userMessage := s.messages.Resolve("curso.get.success", []interface{}{curso.Nombre}, messages.LocaleFrom(ctx))
	return dto.NewResponse(userMessage, cursoDto), nil
}

// EditCursoModalidad overwrites only the modality of an existing curso. The
// new value is persisted exactly as supplied; this path intentionally skips
// the allowed-modality check (see DESIGN.md).
func (s *cursoServiceImpl) EditCursoModalidad(ctx context.Context, id int64, nuevaModalidad string) (*dto.Response, error) {
	curso, err := s.findByIDCurso(ctx, id)
	if err != nil {
		return nil, err
	}

	curso.Modalidad = nuevaModalidad

	if err := s.updateCurso(ctx, curso); err != nil {
		return nil, err
	}

	cursoDto, err := s.buildCursoDto(ctx, curso)
	if err != nil {
		return nil, err
	}

	userMessage := s.messages.Resolve("curso.update.success", []interface{}{curso.Nombre}, messages.LocaleFrom(ctx))
	return dto.NewResponse(userMessage, cursoDto), nil
}

// EditCurso replaces nombre, modalidad and fecha_finalizacion of an existing
// curso with the DTO values. Fields absent from the DTO are written as their
// zero value: this is deliberate replace semantics, not a merge.
func (s *cursoServiceImpl) EditCurso(ctx context.Context, cursoDto dto.CursoDto) (*dto.Response, error) {
	if cursoDto.ID == nil {
		userMessage := s.messages.Resolve("curso.validate.id", nil, messages.LocaleFrom(ctx))
		return nil, apperrors.NewCursoNotFoundError(userMessage)
	}

	curso, err := s.findByIDCurso(ctx, *cursoDto.ID)
	if err != nil {
		return nil, err
	}

	curso.Nombre = cursoDto.Nombre
	curso.Modalidad = cursoDto.Modalidad
	curso.FechaFinalizacion = time.Time{}
	if cursoDto.FechaFinalizacion != nil {
		curso.FechaFinalizacion = *cursoDto.FechaFinalizacion
	}

	if err := s.updateCurso(ctx, curso); err != nil {
		return nil, err
	}

	updatedDto, err := s.buildCursoDto(ctx, curso)
	if err != nil {
		return nil, err
	}

	userMessage := s.messages.Resolve("curso.update.success", []interface{}{curso.Nombre}, messages.LocaleFrom(ctx))
	return dto.NewResponse(userMessage, updatedDto), nil
}

// findByIDCurso validates the id resolves to a record and returns it.
func (s *cursoServiceImpl) findByIDCurso(ctx context.Context, id int64) (*models.Curso, error) {
	curso, err := s.cursoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving curso: %w", err)
	}

	if curso == nil {
		userMessage := s.messages.Resolve("curso.validate.id", nil, messages.LocaleFrom(ctx))
		return nil, apperrors.NewCursoNotFoundError(userMessage)
	}

	return curso, nil
}

func (s *cursoServiceImpl) updateCurso(ctx context.Context, curso *models.Curso) error {
	err := s.cursoRepo.Update(ctx, curso)
	if err == nil {
		return nil
	}

	if errors.Is(err, repositories.ErrCursoNotFound) {
		userMessage := s.messages.Resolve("curso.validate.id", nil, messages.LocaleFrom(ctx))
		return apperrors.NewCursoNotFoundError(userMessage)
	}

	return fmt.Errorf("error updating curso: %w", err)
}

func (s *cursoServiceImpl) validateNameNotExist(ctx context.Context, nombre string) error {
	existing, err := s.cursoRepo.FindByNombreIgnoreCase(ctx, nombre)
	if err != nil {
		return fmt.Errorf("error checking curso nombre: %w", err)
	}

	if existing != nil {
		userMessage := s.messages.Resolve("curso.validate.name", []interface{}{nombre}, messages.LocaleFrom(ctx))
		return apperrors.NewCursoInvalidError(userMessage)
	}

	return nil
}

func (s *cursoServiceImpl) validateModality(ctx context.Context, modalidad string) error {
	locale := messages.LocaleFrom(ctx)

	if modalidad == "" {
		userMessage := s.messages.Resolve("curso.validate.modality.empty", nil, locale)
		return apperrors.NewCursoInvalidError(userMessage)
	}

	if !strings.EqualFold(modalidad, "Presencial") && !strings.EqualFold(modalidad, "Virtual") {
		userMessage := s.messages.Resolve("curso.validate.modality.error", []interface{}{modalidad}, locale)
		return apperrors.NewCursoInvalidError(userMessage)
	}

	return nil
}

// buildCursoDtoCreate builds the create-response DTO, without the tema list.
func buildCursoDtoCreate(curso *models.Curso) dto.CursoDto {
	fecha := curso.FechaFinalizacion
	return dto.CursoDto{
		ID:                &curso.ID,
		Nombre:            curso.Nombre,
		Modalidad:         curso.Modalidad,
		FechaFinalizacion: &fecha,
	}
}

// buildCursoDto builds the full DTO, projecting the curso's temas to their
// ids with an explicit foreign-key query.
func (s *cursoServiceImpl) buildCursoDto(ctx context.Context, curso *models.Curso) (dto.CursoDto, error) {
	temas, err := s.temaRepo.FindByCursoID(ctx, curso.ID)
	if err != nil {
		return dto.CursoDto{}, fmt.Errorf("error retrieving temas for curso %d: %w", curso.ID, err)
	}

	cursoDto := buildCursoDtoCreate(curso)
	cursoDto.ListaTemasID = extractTemaIDs(temas)
	return cursoDto, nil
}

// extractTemaIDs projects a tema list to its ids.
func extractTemaIDs(temas []models.Tema) []int64 {
	if len(temas) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(temas))
	for _, tema := range temas {
		ids = append(ids, tema.ID)
	}
	return ids
}
