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

var temaColumns = []string{"id", "nombre", "descripcion", "curso_id", "fecha_creacion", "fecha_ultima_modificacion"}

// TemaRepository handles database operations for temas
type TemaRepository struct {
	db *pgxpool.Pool
}

// NewTemaRepository creates a new tema repository
func NewTemaRepository(db *pgxpool.Pool) *TemaRepository {
	return &TemaRepository{db: db}
}

func scanTema(row pgx.Row) (*models.Tema, error) {
	var tema models.Tema
	err := row.Scan(
		&tema.ID,
		&tema.Nombre,
		&tema.Descripcion,
		&tema.CursoID,
		&tema.FechaCreacion,
		&tema.FechaUltimaModificacion,
	)
	if err != nil {
		return nil, err
	}
	return &tema, nil
}

func (r *TemaRepository) queryTemas(ctx context.Context, query squirrel.SelectBuilder) ([]models.Tema, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var temas []models.Tema
	for rows.Next() {
		tema, err := scanTema(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		temas = append(temas, *tema)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return temas, nil
}

// Save inserts a new tema. The store assigns id and both timestamps, which
// are written back into the given model.
func (r *TemaRepository) Save(ctx context.Context, tema *models.Tema) error {
	query := squirrel.Insert("tema").
		Columns("nombre", "descripcion", "curso_id").
		Values(tema.Nombre, tema.Descripcion, tema.CursoID).
		Suffix("RETURNING id, fecha_creacion, fecha_ultima_modificacion").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tema.ID,
		&tema.FechaCreacion,
		&tema.FechaUltimaModificacion,
	)
	if err != nil {
		return err
	}

	return nil
}

// FindAll retrieves all temas, unfiltered and unpaginated.
func (r *TemaRepository) FindAll(ctx context.Context) ([]models.Tema, error) {
	query := squirrel.Select(temaColumns...).
		From("tema").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTemas(ctx, query)
}

// FindByID retrieves a tema by ID. Returns nil without error when no row
// matches.
func (r *TemaRepository) FindByID(ctx context.Context, id int64) (*models.Tema, error) {
	query := squirrel.Select(temaColumns...).
		From("tema").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	tema, err := scanTema(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving tema: %w", err)
	}

	return tema, nil
}

// ExistsByNombre checks if a tema with the exact given name exists. The
// comparison is case-sensitive, unlike the curso name check.
func (r *TemaRepository) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tema WHERE nombre = $1)`,
		nombre).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking tema existence: %w", err)
	}

	return exists, nil
}

// FindByCursoID retrieves all temas owned by the given curso.
func (r *TemaRepository) FindByCursoID(ctx context.Context, cursoID int64) ([]models.Tema, error) {
	query := squirrel.Select(temaColumns...).
		From("tema").
		Where("curso_id = ?", cursoID).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTemas(ctx, query)
}

// FindAllByIDs retrieves the temas whose ids are in the given set.
func (r *TemaRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]models.Tema, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := squirrel.Select(temaColumns...).
		From("tema").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTemas(ctx, query)
}

// FindNombresByCursoID retrieves the names of the temas owned by the given
// curso.
func (r *TemaRepository) FindNombresByCursoID(ctx context.Context, cursoID int64) ([]string, error) {
	query := squirrel.Select("nombre").
		From("tema").
		Where("curso_id = ?", cursoID).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var nombres []string
	for rows.Next() {
		var nombre string
		if err := rows.Scan(&nombre); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		nombres = append(nombres, nombre)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return nombres, nil
}
