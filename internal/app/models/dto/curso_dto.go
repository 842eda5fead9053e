package dto

import "time"

// CursoDto is the external shape of a curso. The create response leaves
// ListaTemasID out (a new curso has no temas yet); get, edit and list
// responses carry the tema-id projection.
// The binding tags apply on the full-replace PUT, which requires id, nombre,
// modalidad and fecha_finalizacion to be present.
type CursoDto struct {
	ID                *int64     `json:"id" binding:"required"`
	Nombre            string     `json:"nombre" binding:"required"`
	Modalidad         string     `json:"modalidad" binding:"required"`
	FechaFinalizacion *time.Time `json:"fecha_finalizacion" binding:"required"`
	ListaTemasID      []int64    `json:"listaTemasId,omitempty"`
}

// CursoPageDto represents one page of cursos plus pagination metadata
type CursoPageDto struct {
	Content []CursoDto `json:"content"`
	PaginationInfo
}
