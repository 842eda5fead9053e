package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantilla/apiestudiantes/internal/app/controllers"
	"github.com/plantilla/apiestudiantes/internal/app/models"
	"github.com/plantilla/apiestudiantes/internal/app/models/dto"
	"github.com/plantilla/apiestudiantes/internal/app/routes"
	"github.com/plantilla/apiestudiantes/internal/app/services"
	"github.com/plantilla/apiestudiantes/internal/pkg/apperrors"
)

// stubCursoService is a function-field stub for the CursoService contract.
type stubCursoService struct {
	saveCursoFn          func(ctx context.Context, curso *models.Curso) (*dto.Response, error)
	getCursosFn          func(ctx context.Context, page, size int) (*dto.Response, error)
	getCursoFn           func(ctx context.Context, id int64) (*dto.Response, error)
	editCursoModalidadFn func(ctx context.Context, id int64, nuevaModalidad string) (*dto.Response, error)
	editCursoFn          func(ctx context.Context, cursoDto dto.CursoDto) (*dto.Response, error)
}

func (s *stubCursoService) SaveCurso(ctx context.Context, curso *models.Curso) (*dto.Response, error) {
	if s.saveCursoFn != nil {
		return s.saveCursoFn(ctx, curso)
	}
	return dto.NewResponse("ok", nil), nil
}

func (s *stubCursoService) GetCursos(ctx context.Context, page, size int) (*dto.Response, error) {
	if s.getCursosFn != nil {
		return s.getCursosFn(ctx, page, size)
	}
	return dto.NewResponse("ok", nil), nil
}

func (s *stubCursoService) GetCurso(ctx context.Context, id int64) (*dto.Response, error) {
	if s.getCursoFn != nil {
		return s.getCursoFn(ctx, id)
	}
	return dto.NewResponse("ok", nil), nil
}

func (s *stubCursoService) EditCursoModalidad(ctx context.Context, id int64, nuevaModalidad string) (*dto.Response, error) {
	if s.editCursoModalidadFn != nil {
		return s.editCursoModalidadFn(ctx, id, nuevaModalidad)
	}
	return dto.NewResponse("ok", nil), nil
}

func (s *stubCursoService) EditCurso(ctx context.Context, cursoDto dto.CursoDto) (*dto.Response, error) {
	if s.editCursoFn != nil {
		return s.editCursoFn(ctx, cursoDto)
	}
	return dto.NewResponse("ok", nil), nil
}

// stubTemaService is the TemaService counterpart.
type stubTemaService struct {
	saveTemaFn func(ctx context.Context, tema *models.Tema) (*dto.Response, error)
	findAllFn  func(ctx context.Context) ([]models.Tema, error)
	findByIDFn func(ctx context.Context, id int64) (*models.Tema, error)
}

func (s *stubTemaService) SaveTema(ctx context.Context, tema *models.Tema) (*dto.Response, error) {
	if s.saveTemaFn != nil {
		return s.saveTemaFn(ctx, tema)
	}
	return dto.NewResponse("ok", nil), nil
}

func (s *stubTemaService) FindAll(ctx context.Context) ([]models.Tema, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubTemaService) FindByID(ctx context.Context, id int64) (*models.Tema, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

// envelope mirrors dto.Response with the data left raw for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(cursoSvc services.CursoService, temaSvc services.TemaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router, controllers.NewCursoController(cursoSvc), controllers.NewTemaController(temaSvc))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

func TestCrearCursoCreated(t *testing.T) {
	cursoSvc := &stubCursoService{
		saveCursoFn: func(ctx context.Context, curso *models.Curso) (*dto.Response, error) {
			id := int64(1)
			return dto.NewResponse(
				fmt.Sprintf("El curso %s se ha guardado correctamente", curso.Nombre),
				dto.CursoDto{ID: &id, Nombre: curso.Nombre, Modalidad: curso.Modalidad},
			), nil
		},
	}
	router := newTestRouter(cursoSvc, &stubTemaService{})

	body := gin.H{
		"nombre":             "Go Avanzado",
		"modalidad":          "Virtual",
		"fecha_finalizacion": time.Now().AddDate(0, 6, 0).Format(time.RFC3339),
	}
	recorder := doJSON(t, router, http.MethodPost, "/curso/crear", body)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.True(t, env.Success)
	assert.Equal(t, "El curso Go Avanzado se ha guardado correctamente", env.Message)

	var cursoDto dto.CursoDto
	require.NoError(t, json.Unmarshal(env.Data, &cursoDto))
	require.NotNil(t, cursoDto.ID)
	assert.Equal(t, int64(1), *cursoDto.ID)
}

func TestCrearCursoMissingFields(t *testing.T) {
	router := newTestRouter(&stubCursoService{}, &stubTemaService{})

	recorder := doJSON(t, router, http.MethodPost, "/curso/crear", gin.H{"modalidad": "Virtual"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.False(t, env.Success)
	assert.Equal(t, "Errores de validación", env.Message)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Contains(t, fieldErrors, "Nombre")
	assert.Contains(t, fieldErrors, "FechaFinalizacion")
}

func TestCrearCursoBusinessRuleViolation(t *testing.T) {
	cursoSvc := &stubCursoService{
		saveCursoFn: func(ctx context.Context, curso *models.Curso) (*dto.Response, error) {
			return nil, apperrors.NewCursoInvalidError("El curso Go Avanzado ya se encuentra registrado")
		},
	}
	router := newTestRouter(cursoSvc, &stubTemaService{})

	body := gin.H{
		"nombre":             "Go Avanzado",
		"modalidad":          "Virtual",
		"fecha_finalizacion": time.Now().AddDate(0, 6, 0).Format(time.RFC3339),
	}
	recorder := doJSON(t, router, http.MethodPost, "/curso/crear", body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.False(t, env.Success)
	assert.Equal(t, "El curso Go Avanzado ya se encuentra registrado", env.Message)
}

func TestCrearCursoStoreFailure(t *testing.T) {
	cursoSvc := &stubCursoService{
		saveCursoFn: func(ctx context.Context, curso *models.Curso) (*dto.Response, error) {
			return nil, apperrors.NewDataBaseError(
				"No se pudo guardar el curso Go Avanzado", "Curso", nil, curso.Nombre, "Save",
				fmt.Errorf("connection reset"),
			)
		},
	}
	router := newTestRouter(cursoSvc, &stubTemaService{})

	body := gin.H{
		"nombre":             "Go Avanzado",
		"modalidad":          "Virtual",
		"fecha_finalizacion": time.Now().AddDate(0, 6, 0).Format(time.RFC3339),
	}
	recorder := doJSON(t, router, http.MethodPost, "/curso/crear", body)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.False(t, env.Success)
	// Only the user-safe message leaves the server.
	assert.Equal(t, "No se pudo guardar el curso Go Avanzado", env.Message)
}

func TestListarCursosDefaults(t *testing.T) {
	var gotPage, gotSize int
	cursoSvc := &stubCursoService{
		getCursosFn: func(ctx context.Context, page, size int) (*dto.Response, error) {
			gotPage, gotSize = page, size
			return dto.NewResponse("Cursos recuperados correctamente", dto.CursoPageDto{}), nil
		},
	}
	router := newTestRouter(cursoSvc, &stubTemaService{})

	recorder := doJSON(t, router, http.MethodGet, "/cursos/listar", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0, gotPage)
	assert.Equal(t, 10, gotSize)
}

func TestListarCursosInvalidParams(t *testing.T) {
	router := newTestRouter(&stubCursoService{}, &stubTemaService{})

	tests := []struct {
		name   string
		target string
		field  string
	}{
		{name: "negative page", target: "/cursos/listar?page=-1", field: "page"},
		{name: "non-numeric size", target: "/cursos/listar?size=abc", field: "size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doJSON(t, router, http.MethodGet, tt.target, nil)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			env := decodeEnvelope(t, recorder)
			assert.Equal(t, "Errores de validación en los parámetros", env.Message)

			var fieldErrors map[string]string
			require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
			assert.Contains(t, fieldErrors, tt.field)
		})
	}
}

func TestObtenerCursoNotFound(t *testing.T) {
	cursoSvc := &stubCursoService{
		getCursoFn: func(ctx context.Context, id int64) (*dto.Response, error) {
			return nil, apperrors.NewCursoNotFoundError("El ID del curso no existe")
		},
	}
	router := newTestRouter(cursoSvc, &stubTemaService{})

	recorder := doJSON(t, router, http.MethodGet, "/curso/mostrar/99", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.False(t, env.Success)
	assert.Equal(t, "El ID del curso no existe", env.Message)
}

func TestObtenerCursoInvalidID(t *testing.T) {
	router := newTestRouter(&stubCursoService{}, &stubTemaService{})

	recorder := doJSON(t, router, http.MethodGet, "/curso/mostrar/abc", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Equal(t, "El id debe ser un número válido", fieldErrors["id"])
}

func TestModificarCursoModalidadPassesValueThrough(t *testing.T) {
	var gotID int64
	var gotModalidad string
	cursoSvc := &stubCursoService{
		editCursoModalidadFn: func(ctx context.Context, id int64, nuevaModalidad string) (*dto.Response, error) {
			gotID, gotModalidad = id, nuevaModalidad
			return dto.NewResponse("ok", nil), nil
		},
	}
	router := newTestRouter(cursoSvc, &stubTemaService{})

	recorder := doJSON(t, router, http.MethodPatch, "/curso/modificar/3?modalidad=Remoto", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(3), gotID)
	assert.Equal(t, "Remoto", gotModalidad)
}

func TestModificarCursoModalidadBlank(t *testing.T) {
	router := newTestRouter(&stubCursoService{}, &stubTemaService{})

	recorder := doJSON(t, router, http.MethodPatch, "/curso/modificar/3?modalidad=+", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Equal(t, "La modalidad no puede estar en blanco", fieldErrors["modalidad"])
}

func TestModificarCursoOK(t *testing.T) {
	var got dto.CursoDto
	cursoSvc := &stubCursoService{
		editCursoFn: func(ctx context.Context, cursoDto dto.CursoDto) (*dto.Response, error) {
			got = cursoDto
			return dto.NewResponse("El curso Go Básico se ha actualizado correctamente", cursoDto), nil
		},
	}
	router := newTestRouter(cursoSvc, &stubTemaService{})

	body := gin.H{
		"id":                 3,
		"nombre":             "Go Básico",
		"modalidad":          "Presencial",
		"fecha_finalizacion": time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
	}
	recorder := doJSON(t, router, http.MethodPut, "/curso/modificar", body)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, got.ID)
	assert.Equal(t, int64(3), *got.ID)
	assert.Equal(t, "Go Básico", got.Nombre)
}

func TestModificarCursoMissingID(t *testing.T) {
	router := newTestRouter(&stubCursoService{}, &stubTemaService{})

	body := gin.H{
		"nombre":             "Go Básico",
		"modalidad":          "Presencial",
		"fecha_finalizacion": time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
	}
	recorder := doJSON(t, router, http.MethodPut, "/curso/modificar", body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Contains(t, fieldErrors, "ID")
}

func TestModificarCursoPastDate(t *testing.T) {
	router := newTestRouter(&stubCursoService{}, &stubTemaService{})

	body := gin.H{
		"id":                 3,
		"nombre":             "Go Básico",
		"modalidad":          "Presencial",
		"fecha_finalizacion": time.Now().AddDate(-1, 0, 0).Format(time.RFC3339),
	}
	recorder := doJSON(t, router, http.MethodPut, "/curso/modificar", body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Equal(t, "La fecha de finalización debe ser futura", fieldErrors["fecha_finalizacion"])
}
