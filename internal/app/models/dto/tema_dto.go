package dto

// TemaDto is the external shape of a tema. IDCurso is null when the tema
// has no owning curso.
type TemaDto struct {
	IDTema      int64   `json:"id_Tema"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	IDCurso     *int64  `json:"idCurso"`
}
