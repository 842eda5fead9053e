package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CursoRepository *CursoRepository
	TemaRepository  *TemaRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CursoRepository: NewCursoRepository(db),
		TemaRepository:  NewTemaRepository(db),
	}
}
