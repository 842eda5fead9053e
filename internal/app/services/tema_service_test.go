package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantilla/apiestudiantes/internal/app/models"
	"github.com/plantilla/apiestudiantes/internal/app/models/dto"
	"github.com/plantilla/apiestudiantes/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestSaveTemaSuccess(t *testing.T) {
	temaRepo := &fakeTemaRepo{
		saveFn: func(ctx context.Context, tema *models.Tema) error {
			tema.ID = 5
			return nil
		},
	}
	service := NewTemaService(temaRepo)

	cursoID := int64(3)
	tema := &models.Tema{Nombre: "Punteros", Descripcion: strPtr("Punteros y memoria"), CursoID: &cursoID}
	response, err := service.SaveTema(context.Background(), tema)

	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Se ha guardado correctamente", response.Message)

	temaDto, ok := response.Data.(dto.TemaDto)
	require.True(t, ok)
	assert.Equal(t, int64(5), temaDto.IDTema)
	assert.Equal(t, "Punteros", temaDto.Nombre)
	require.NotNil(t, temaDto.IDCurso)
	assert.Equal(t, int64(3), *temaDto.IDCurso)
}

func TestSaveTemaDerivesCursoIDFromNestedCurso(t *testing.T) {
	var saved *models.Tema
	temaRepo := &fakeTemaRepo{
		saveFn: func(ctx context.Context, tema *models.Tema) error {
			saved = tema
			return nil
		},
	}
	service := NewTemaService(temaRepo)

	tema := &models.Tema{
		Nombre:      "Punteros",
		Descripcion: strPtr("Punteros y memoria"),
		Curso:       &models.Curso{ID: 9},
	}
	_, err := service.SaveTema(context.Background(), tema)

	require.NoError(t, err)
	require.NotNil(t, saved.CursoID)
	assert.Equal(t, int64(9), *saved.CursoID)
}

func TestSaveTemaNil(t *testing.T) {
	service := NewTemaService(&fakeTemaRepo{})

	_, err := service.SaveTema(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCursoInvalid)
	assert.Equal(t, "El tema no puede ser nulo.", err.Error())
}

func TestSaveTemaBlankDescripcion(t *testing.T) {
	service := NewTemaService(&fakeTemaRepo{})

	tests := []struct {
		name string
		tema *models.Tema
	}{
		{name: "nil descripcion", tema: &models.Tema{Nombre: "Punteros"}},
		{name: "empty descripcion", tema: &models.Tema{Nombre: "Punteros", Descripcion: strPtr("")}},
		{name: "whitespace descripcion", tema: &models.Tema{Nombre: "Punteros", Descripcion: strPtr("   ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SaveTema(context.Background(), tt.tema)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrCursoInvalid)
			assert.Equal(t, "El nombre del tema no puede estar vacío.", err.Error())
		})
	}
}

func TestSaveTemaDuplicateName(t *testing.T) {
	temaRepo := &fakeTemaRepo{
		existsByNombreFn: func(ctx context.Context, nombre string) (bool, error) {
			return nombre == "Punteros", nil
		},
	}
	service := NewTemaService(temaRepo)

	tema := &models.Tema{Nombre: "Punteros", Descripcion: strPtr("Punteros y memoria")}
	_, err := service.SaveTema(context.Background(), tema)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTemaInvalid)
	assert.Equal(t, "El nombre del tema YA existe", err.Error())
}

func TestSaveTemaNameCheckIsCaseSensitive(t *testing.T) {
	temaRepo := &fakeTemaRepo{
		existsByNombreFn: func(ctx context.Context, nombre string) (bool, error) {
			return nombre == "Punteros", nil
		},
	}
	service := NewTemaService(temaRepo)

	// Different case is a different name at this layer.
	tema := &models.Tema{Nombre: "PUNTEROS", Descripcion: strPtr("Punteros y memoria")}
	_, err := service.SaveTema(context.Background(), tema)

	assert.NoError(t, err)
}

func TestFindAllTemasPassThrough(t *testing.T) {
	temaRepo := &fakeTemaRepo{
		findAllFn: func(ctx context.Context) ([]models.Tema, error) {
			return []models.Tema{{ID: 1, Nombre: "Punteros"}, {ID: 2, Nombre: "Slices"}}, nil
		},
	}
	service := NewTemaService(temaRepo)

	temas, err := service.FindAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, temas, 2)
}

func TestFindTemaByIDAbsentIsNilNil(t *testing.T) {
	service := NewTemaService(&fakeTemaRepo{})

	tema, err := service.FindByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, tema)
}
