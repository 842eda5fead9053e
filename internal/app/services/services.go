package services

import (
	"context"

	"github.com/plantilla/apiestudiantes/internal/app/models"
)

// Services defined in this package:
// - CursoService: validation, persistence orchestration and DTO shaping for cursos
// - TemaService: validation, persistence orchestration and DTO shaping for temas

// CursoRepository is the store contract the curso service depends on. The
// pgx implementation lives in internal/app/repositories; tests substitute
// in-memory fakes.
type CursoRepository interface {
	Save(ctx context.Context, curso *models.Curso) error
	Update(ctx context.Context, curso *models.Curso) error
	FindByID(ctx context.Context, id int64) (*models.Curso, error)
	FindByNombreIgnoreCase(ctx context.Context, nombre string) (*models.Curso, error)
	FindAll(ctx context.Context, offset uint64, limit int) ([]models.Curso, int64, error)
}

// TemaRepository is the store contract the tema service and the curso DTO
// builder depend on.
type TemaRepository interface {
	Save(ctx context.Context, tema *models.Tema) error
	FindAll(ctx context.Context) ([]models.Tema, error)
	FindByID(ctx context.Context, id int64) (*models.Tema, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
	FindByCursoID(ctx context.Context, cursoID int64) ([]models.Tema, error)
	FindAllByIDs(ctx context.Context, ids []int64) ([]models.Tema, error)
	FindNombresByCursoID(ctx context.Context, cursoID int64) ([]string, error)
}
