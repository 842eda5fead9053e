package models

import "time"

// Tema represents a topic, optionally owned by one curso. Nombre is unique
// across temas (case-sensitive). Descripcion is nullable at the column level
// although the service requires it on create.
type Tema struct {
	ID                      int64     `json:"id"`
	Nombre                  string    `json:"nombre"`
	Descripcion             *string   `json:"descripcion"`
	CursoID                 *int64    `json:"cursoId,omitempty"`
	FechaCreacion           time.Time `json:"fechaCreacion"`
	FechaUltimaModificacion time.Time `json:"fechaUltimaModificacion"`

	// Relations (populated when needed)
	Curso *Curso `json:"curso,omitempty"`
}
