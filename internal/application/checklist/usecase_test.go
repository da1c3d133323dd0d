package checklist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ong-capacita/logistica-api/internal/application/checklist"
	"github.com/ong-capacita/logistica-api/internal/application/inventory"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

func seedStock(t *testing.T, f *fixture, sku string, stock int) {
	t.Helper()
	_, err := f.invUC.Create(context.Background(), inventory.CreateInput{
		SKU: sku, Name: sku, Stock: stock, StockMin: 1,
	})
	require.NoError(t, err)
}

func crearItemBodega(t *testing.T, f *fixture, sku string, qty int) *entity.ChecklistItem {
	t.Helper()
	item, err := f.items.Create(context.Background(), checklist.CreateItemInput{
		CourseID:   "C-1",
		SKU:        sku,
		Item:       "Material " + sku,
		Unit:       "unidad",
		PlannedQty: qty,
	})
	require.NoError(t, err)
	return item
}

func TestCreateItemDerivaOrigenYEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conSKU := crearItemBodega(t, f, "SKU-BOTI", 5)
	assert.Equal(t, entity.OriginBodega, conSKU.Origin)
	assert.Equal(t, entity.StatusPendiente, conSKU.Status)
	assert.NotEmpty(t, conSKU.ID)

	sinSKU, err := f.items.Create(ctx, checklist.CreateItemInput{
		CourseID: "C-1", Item: "Colación", Unit: "caja", PlannedQty: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OriginCompra, sinSKU.Origin)

	_, err = f.items.Create(ctx, checklist.CreateItemInput{CourseID: "", Item: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.items.Create(ctx, checklist.CreateItemInput{
		CourseID: "C-1", Item: "X", Origin: "donación",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.items.Create(ctx, checklist.CreateItemInput{
		CourseID: "C-1", Item: "X", Status: "cancelado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransitionAvanzaDeAUnPaso(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := crearItemBodega(t, f, "", 1)

	paso, err := f.items.Transition(ctx, item.ID, entity.StatusListo, "coordinador@ong.cl")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusListo, paso.Status)

	paso, err = f.items.Transition(ctx, paso.ID, entity.StatusEntregado, "coordinador@ong.cl")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregado, paso.Status)
}

func TestTransitionRechazaSaltosYRetrocesos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := crearItemBodega(t, f, "", 1)

	// Salto pendiente -> entregado
	_, err := f.items.Transition(ctx, item.ID, entity.StatusEntregado, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.items.Transition(ctx, item.ID, entity.StatusListo, "u")
	require.NoError(t, err)

	// Retroceso listo -> pendiente
	_, err = f.items.Transition(ctx, item.ID, entity.StatusPendiente, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Estado desconocido
	_, err = f.items.Transition(ctx, item.ID, "cancelado", "u")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Ítem inexistente
	_, err = f.items.Transition(ctx, "nope", entity.StatusListo, "u")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntregaDescuentaStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedStock(t, f, "SKU-BOTI", 25)
	item := crearItemBodega(t, f, "SKU-BOTI", 10)

	_, err := f.items.Transition(ctx, item.ID, entity.StatusListo, "coordinador@ong.cl")
	require.NoError(t, err)
	entregado, err := f.items.Transition(ctx, item.ID, entity.StatusEntregado, "coordinador@ong.cl")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregado, entregado.Status)

	record, err := f.invUC.Get(ctx, "SKU-BOTI")
	require.NoError(t, err)
	assert.Equal(t, 15, record.Stock)

	// La salida queda anotada con referencia al curso
	movs, err := f.adjustUC.ListMovements(ctx, repository.MovementFilter{
		SKU: "SKU-BOTI", Type: entity.MovementTypeSalida,
	})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, 10, movs[0].Quantity)
	assert.Equal(t, "Curso C-1", movs[0].Reference)
	assert.Equal(t, "coordinador@ong.cl", movs[0].User)
}

func TestEntregaSinStockNoCambiaNada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedStock(t, f, "SKU-BOTI", 5)
	item := crearItemBodega(t, f, "SKU-BOTI", 10)

	_, err := f.items.Transition(ctx, item.ID, entity.StatusListo, "u")
	require.NoError(t, err)
	_, err = f.items.Transition(ctx, item.ID, entity.StatusEntregado, "u")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ni el estado, ni el stock, ni el libro cambian
	actual, err := f.items.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusListo, actual.Status)

	record, err := f.invUC.Get(ctx, "SKU-BOTI")
	require.NoError(t, err)
	assert.Equal(t, 5, record.Stock)

	movs, err := f.adjustUC.ListMovements(ctx, repository.MovementFilter{
		SKU: "SKU-BOTI", Type: entity.MovementTypeSalida,
	})
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestEntregaItemCompraNoTocaInventario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.items.Create(ctx, checklist.CreateItemInput{
		CourseID: "C-1", Item: "Colación", Unit: "caja", PlannedQty: 20,
	})
	require.NoError(t, err)

	_, err = f.items.Transition(ctx, item.ID, entity.StatusListo, "u")
	require.NoError(t, err)
	entregado, err := f.items.Transition(ctx, item.ID, entity.StatusEntregado, "u")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregado, entregado.Status)

	movs, err := f.adjustUC.ListMovements(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, movs, "un ítem de compra no genera movimientos")
}

func TestUpdateItemAplicaCamposYDelegaEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedStock(t, f, "SKU-BOTI", 25)
	item := crearItemBodega(t, f, "SKU-BOTI", 10)

	notas := "revisar vencimientos"
	qty := 8
	updated, err := f.items.Update(ctx, item.ID, checklist.UpdateItemInput{
		Notes:      &notas,
		PlannedQty: &qty,
	})
	require.NoError(t, err)
	assert.Equal(t, "revisar vencimientos", updated.Notes)
	assert.Equal(t, 8, updated.PlannedQty)
	assert.Equal(t, entity.StatusPendiente, updated.Status)

	// Cantidad editada y entrega en la misma petición: descuenta la nueva cantidad
	listo := entity.StatusListo
	_, err = f.items.Update(ctx, item.ID, checklist.UpdateItemInput{Status: &listo})
	require.NoError(t, err)

	entregado := entity.StatusEntregado
	qtyFinal := 6
	res, err := f.items.Update(ctx, item.ID, checklist.UpdateItemInput{
		Status:     &entregado,
		PlannedQty: &qtyFinal,
		User:       "coordinador@ong.cl",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregado, res.Status)

	record, err := f.invUC.Get(ctx, "SKU-BOTI")
	require.NoError(t, err)
	assert.Equal(t, 19, record.Stock, "descuenta la cantidad recién editada")

	negativa := -1
	_, err = f.items.Update(ctx, item.ID, checklist.UpdateItemInput{PlannedQty: &negativa})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestDeleteItemYLimpiezaPorCurso(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := crearItemBodega(t, f, "", 1)
	b := crearItemBodega(t, f, "", 2)
	otro, err := f.items.Create(ctx, checklist.CreateItemInput{
		CourseID: "C-2", Item: "Ajeno", PlannedQty: 1,
	})
	require.NoError(t, err)

	require.NoError(t, f.items.Delete(ctx, a.ID))
	assert.ErrorIs(t, f.items.Delete(ctx, a.ID), domain.ErrNotFound)

	require.NoError(t, f.items.DeleteAllForCourse(ctx, "C-1"))

	_, err = f.items.Get(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El checklist de otro curso no se ve afectado
	quedan, err := f.items.List(ctx)
	require.NoError(t, err)
	require.Len(t, quedan, 1)
	assert.Equal(t, otro.ID, quedan[0].ID)
}
