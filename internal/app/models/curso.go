package models

import "time"

// Curso represents a course. Nombre is unique across cursos ignoring case;
// Modalidad is constrained by the service layer to Presencial or Virtual.
// Timestamps are store-assigned, never client-supplied.
type Curso struct {
	ID                      int64     `json:"id"`
	Nombre                  string    `json:"nombre" binding:"required"`
	Modalidad               string    `json:"modalidad" binding:"required"`
	FechaFinalizacion       time.Time `json:"fecha_finalizacion" binding:"required"`
	Habilitado              bool      `json:"habilitado"`
	FechaCreacion           time.Time `json:"fechaCreacion"`
	FechaUltimaModificacion time.Time `json:"fechaUltimaModificacion"`
}
