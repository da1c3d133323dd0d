package course_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ong-capacita/logistica-api/internal/application/checklist"
	"github.com/ong-capacita/logistica-api/internal/application/course"
	"github.com/ong-capacita/logistica-api/internal/application/inventory"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/infrastructure/memory"
)

type fixture struct {
	store  *memory.Store
	items  *checklist.ItemUseCase
	course *course.UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	adjustUC := inventory.NewAdjustStockUseCase(store, store.MovementRepository())
	catalog := checklist.NewTemplateCatalog(store.TemplateRepository(), store.CourseRepository())
	generator := checklist.NewGeneratorUseCase(catalog, store.ChecklistItemRepository())
	items := checklist.NewItemUseCase(store.ChecklistItemRepository(), store, adjustUC)
	return &fixture{
		store:  store,
		items:  items,
		course: course.NewUseCase(store.CourseRepository(), generator, items, catalog),
	}
}

func TestCreateCursoConPlantillaGeneraChecklist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	co, err := f.course.Create(ctx, course.CreateInput{
		Name:        "Primeros Auxilios Abril",
		Type:        "Primeros Auxilios",
		Date:        time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC),
		Place:       "Sede Norte",
		Attendees:   18,
		Responsible: "coordinador@ong.cl",
		TemplateID:  "tpl-001",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, co.ID)
	assert.True(t, co.Active)
	assert.Equal(t, "tpl-001", co.TemplateID)

	items, err := f.items.ListByCourse(ctx, co.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 18, items[0].PlannedQty)
	assert.Equal(t, entity.StatusPendiente, items[0].Status)
}

func TestCreateCursoSinPlantilla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	co, err := f.course.Create(ctx, course.CreateInput{
		Name: "Charla libre", Type: "Otro", Attendees: 10,
	})
	require.NoError(t, err)

	items, err := f.items.ListByCourse(ctx, co.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateCursoPlantillaInexistente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.course.Create(ctx, course.CreateInput{
		Name: "Huérfano", Type: "X", TemplateID: "tpl-999",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	// La plantilla se valida antes de persistir: no queda curso a medias
	cursos, err := f.course.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cursos)
}

func TestCreateCursoValidaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.course.Create(ctx, course.CreateInput{Name: "", Type: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.course.Create(ctx, course.CreateInput{Name: "X", Type: "Y", Attendees: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestUpdateCursoNoRegeneraChecklist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	co, err := f.course.Create(ctx, course.CreateInput{
		Name: "Prevención Mayo", Type: "Prevención de Riesgos",
		Attendees: 10, TemplateID: "tpl-002",
	})
	require.NoError(t, err)

	antes, err := f.items.ListByCourse(ctx, co.ID)
	require.NoError(t, err)

	asistentes := 40
	updated, err := f.course.Update(ctx, co.ID, course.UpdateInput{Attendees: &asistentes})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Attendees)

	despues, err := f.items.ListByCourse(ctx, co.ID)
	require.NoError(t, err)
	require.Len(t, despues, len(antes))
	for i := range antes {
		assert.Equal(t, antes[i].PlannedQty, despues[i].PlannedQty)
	}

	inactivo := false
	updated, err = f.course.Update(ctx, co.ID, course.UpdateInput{Active: &inactivo})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = f.course.Update(ctx, "nope", course.UpdateInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCursoEliminaChecklistEnCascada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	co, err := f.course.Create(ctx, course.CreateInput{
		Name: "A borrar", Type: "Primeros Auxilios",
		Attendees: 5, TemplateID: "tpl-001",
	})
	require.NoError(t, err)

	require.NoError(t, f.course.Delete(ctx, co.ID))

	_, err = f.course.Get(ctx, co.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	items, err := f.items.ListByCourse(ctx, co.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, f.course.Delete(ctx, co.ID), domain.ErrNotFound)
}
