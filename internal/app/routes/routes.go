package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/plantilla/apiestudiantes/internal/app/controllers"
)

// SetupRouter configures all application routes. The paths are the public
// contract of the API and keep their historical (mixed) naming.
func SetupRouter(
	router *gin.Engine,
	cursoController *controllers.CursoController,
	temaController *controllers.TemaController,
) {
	// Curso routes
	router.POST("/curso/crear", cursoController.CrearCurso)
	router.GET("/cursos/listar", cursoController.ListarCursos)
	router.GET("/curso/mostrar/:id", cursoController.ObtenerCurso)
	router.PATCH("/curso/modificar/:id", cursoController.ModificarCursoModalidad)
	router.PUT("/curso/modificar", cursoController.ModificarCurso)

	// Tema routes
	router.POST("/creartema", temaController.CrearTema)
	router.GET("/consultar/temas", temaController.ConsultarTemas)
	router.GET("/consultar/tema/:id", temaController.ConsultarTema)
}
