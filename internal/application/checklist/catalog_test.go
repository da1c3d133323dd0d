package checklist_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
)

func TestCatalogGetIntegradas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tpl, err := f.catalog.Get(ctx, "tpl-001")
	require.NoError(t, err)
	assert.Equal(t, "Curso básico", tpl.Name)
	assert.Equal(t, "Primeros Auxilios", tpl.CourseType)
	require.Len(t, tpl.Lines, 3)
	assert.Equal(t, "SKU-BOTI", tpl.Lines[0].SKU)

	tpl, err = f.catalog.Get(ctx, "tpl-002")
	require.NoError(t, err)
	assert.Equal(t, "Prevención", tpl.Name)
	require.Len(t, tpl.Lines, 2)

	_, err = f.catalog.Get(ctx, "tpl-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogListMezclaIntegradasYUsuario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	propia, err := f.catalog.Create(ctx, &entity.ChecklistTemplate{
		Name:       "Rescate urbano",
		CourseType: "Rescate",
		Lines: []entity.TemplateLine{
			{Item: "Cuerdas", Unit: "rollo", QtyPerAttendee: decimal.NewFromFloat(0.25)},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, propia.ID)

	list, err := f.catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Integradas primero, luego las de usuario
	assert.Equal(t, "tpl-001", list[0].ID)
	assert.Equal(t, "tpl-002", list[1].ID)
	assert.Equal(t, propia.ID, list[2].ID)
}

func TestCatalogCreateValidaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.Create(ctx, &entity.ChecklistTemplate{Name: "", CourseType: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.catalog.Create(ctx, &entity.ChecklistTemplate{
		Name:       "Negativa",
		CourseType: "X",
		Lines: []entity.TemplateLine{
			{Item: "Y", QtyPerAttendee: decimal.NewFromInt(-1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// Los IDs integrados están reservados
	_, err = f.catalog.Create(ctx, &entity.ChecklistTemplate{
		ID: "tpl-001", Name: "Pirata", CourseType: "X",
	})
	assert.ErrorIs(t, err, domain.ErrBuiltinTemplate)
}

func TestCatalogIntegradasInmutables(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.Update(ctx, &entity.ChecklistTemplate{
		ID: "tpl-001", Name: "Modificada", CourseType: "X",
	})
	assert.ErrorIs(t, err, domain.ErrBuiltinTemplate)

	assert.ErrorIs(t, f.catalog.Delete(ctx, "tpl-002"), domain.ErrBuiltinTemplate)
}

func TestCatalogUpdateYDeleteUsuario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tpl, err := f.catalog.Create(ctx, &entity.ChecklistTemplate{
		Name:       "Editable",
		CourseType: "X",
	})
	require.NoError(t, err)

	tpl.Name = "Editada"
	updated, err := f.catalog.Update(ctx, tpl)
	require.NoError(t, err)
	assert.Equal(t, "Editada", updated.Name)

	require.NoError(t, f.catalog.Delete(ctx, tpl.ID))
	_, err = f.catalog.Get(ctx, tpl.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Sobre una inexistente
	_, err = f.catalog.Update(ctx, &entity.ChecklistTemplate{ID: "nope", Name: "X", CourseType: "Y"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.catalog.Delete(ctx, "nope"), domain.ErrNotFound)
}

func TestCatalogPlantillaEnUso(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tpl, err := f.catalog.Create(ctx, &entity.ChecklistTemplate{
		Name:       "En uso",
		CourseType: "X",
	})
	require.NoError(t, err)

	require.NoError(t, f.store.CourseRepository().Create(&entity.Course{
		ID:         "C-1",
		Name:       "Curso que la usa",
		Type:       "X",
		TemplateID: tpl.ID,
	}))

	tpl.Name = "Cambio"
	_, err = f.catalog.Update(ctx, tpl)
	assert.ErrorIs(t, err, domain.ErrTemplateInUse)
	assert.ErrorIs(t, f.catalog.Delete(ctx, tpl.ID), domain.ErrTemplateInUse)
}
