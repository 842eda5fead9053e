package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plantilla/apiestudiantes/internal/app/models"
)

// Curso error types
var (
	ErrCursoNotFound = errors.New("curso not found")
)

var cursoColumns = []string{"id", "nombre", "modalidad", "fecha_finalizacion", "habilitado", "fecha_creacion", "fecha_ultima_modificacion"}

// CursoRepository handles database operations for cursos
type CursoRepository struct {
	db *pgxpool.Pool
}

// NewCursoRepository creates a new curso repository
func NewCursoRepository(db *pgxpool.Pool) *CursoRepository {
	return &CursoRepository{db: db}
}

// Save inserts a new curso. The store assigns id and both timestamps, which
// are written back into the given model.
func (r *CursoRepository) Save(ctx context.Context, curso *models.Curso) error {
	query := squirrel.Insert("curso").
		Columns("nombre", "modalidad", "fecha_finalizacion", "habilitado").
		Values(curso.Nombre, curso.Modalidad, curso.FechaFinalizacion, curso.Habilitado).
		Suffix("RETURNING id, fecha_creacion, fecha_ultima_modificacion").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&curso.ID,
		&curso.FechaCreacion,
		&curso.FechaUltimaModificacion,
	)
	if err != nil {
		return err
	}

	return nil
}

// Update overwrites nombre, modalidad and fecha_finalizacion of an existing
// curso and refreshes fecha_ultima_modificacion.
func (r *CursoRepository) Update(ctx context.Context, curso *models.Curso) error {
	query := squirrel.Update("curso").
		Set("nombre", curso.Nombre).
		Set("modalidad", curso.Modalidad).
		Set("fecha_finalizacion", curso.FechaFinalizacion).
		Set("fecha_ultima_modificacion", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", curso.ID).
		Suffix("RETURNING fecha_ultima_modificacion").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&curso.FechaUltimaModificacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCursoNotFound
		}
		return err
	}

	return nil
}

// FindByID retrieves a curso by ID. Returns nil without error when no row
// matches.
func (r *CursoRepository) FindByID(ctx context.Context, id int64) (*models.Curso, error) {
	query := squirrel.Select(cursoColumns...).
		From("curso").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var curso models.Curso
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&curso.ID,
		&curso.Nombre,
		&curso.Modalidad,
		&curso.FechaFinalizacion,
		&curso.Habilitado,
		&curso.FechaCreacion,
		&curso.FechaUltimaModificacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving curso: %w", err)
	}

	return &curso, nil
}

// FindByNombreIgnoreCase retrieves a curso by name, comparing case
// insensitively. Returns nil without error when no row matches.
func (r *CursoRepository) FindByNombreIgnoreCase(ctx context.Context, nombre string) (*models.Curso, error) {
	query := squirrel.Select(cursoColumns...).
		From("curso").
		Where("LOWER(nombre) = LOWER(?)", nombre).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var curso models.Curso
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&curso.ID,
		&curso.Nombre,
		&curso.Modalidad,
		&curso.FechaFinalizacion,
		&curso.Habilitado,
		&curso.FechaCreacion,
		&curso.FechaUltimaModificacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving curso by nombre: %w", err)
	}

	return &curso, nil
}

// FindAll retrieves one page of cursos ordered by id, together with the
// total row count.
func (r *CursoRepository) FindAll(ctx context.Context, offset uint64, limit int) ([]models.Curso, int64, error) {
	query := squirrel.Select(cursoColumns...).
		From("curso").
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	countQuery := query.Column("COUNT(*) OVER()")
	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var cursos []models.Curso
	var total int64

	for rows.Next() {
		var curso models.Curso
		err := rows.Scan(
			&curso.ID,
			&curso.Nombre,
			&curso.Modalidad,
			&curso.FechaFinalizacion,
			&curso.Habilitado,
			&curso.FechaCreacion,
			&curso.FechaUltimaModificacion,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		cursos = append(cursos, curso)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// An empty page still needs the real total for the pagination metadata.
	if cursos == nil {
		count := squirrel.Select("COUNT(*)").From("curso").PlaceholderFormat(squirrel.Dollar)
		sql, args, err := count.ToSql()
		if err != nil {
			return nil, 0, fmt.Errorf("error building SQL: %w", err)
		}
		if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("error counting cursos: %w", err)
		}
	}

	return cursos, total, nil
}
