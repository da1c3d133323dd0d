package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ong-capacita/logistica-api/internal/application/inventory"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
	"github.com/ong-capacita/logistica-api/internal/infrastructure/memory"
)

func newAdjustFixture(t *testing.T) (*memory.Store, *inventory.InventoryUseCase, *inventory.AdjustStockUseCase) {
	t.Helper()
	store := memory.NewStore()
	invUC := inventory.NewInventoryUseCase(store.InventoryRepository(), store)
	adjustUC := inventory.NewAdjustStockUseCase(store, store.MovementRepository())
	return store, invUC, adjustUC
}

func seedBotiquin(t *testing.T, invUC *inventory.InventoryUseCase) {
	t.Helper()
	_, err := invUC.Create(context.Background(), inventory.CreateInput{
		SKU:      "SKU-BOTI",
		Name:     "Botiquín",
		Stock:    25,
		StockMin: 10,
		Location: "Bodega Central",
	})
	require.NoError(t, err)
}

func TestAdjustSalida(t *testing.T) {
	_, invUC, adjustUC := newAdjustFixture(t)
	seedBotiquin(t, invUC)
	ctx := context.Background()

	res, err := adjustUC.Adjust(ctx, inventory.AdjustInput{
		SKU:       "SKU-BOTI",
		Quantity:  10,
		Type:      entity.MovementTypeSalida,
		Reference: "Curso C-1",
		User:      "coordinador@ong.cl",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, res.Record.Stock)
	require.NotNil(t, res.Movement)
	assert.Equal(t, entity.MovementTypeSalida, res.Movement.Type)
	assert.Equal(t, 10, res.Movement.Quantity)
	assert.Equal(t, "Curso C-1", res.Movement.Reference)
	assert.NotZero(t, res.Movement.ID)

	record, err := invUC.Get(ctx, "SKU-BOTI")
	require.NoError(t, err)
	assert.Equal(t, 15, record.Stock)
}

func TestAdjustEntrada(t *testing.T) {
	_, invUC, adjustUC := newAdjustFixture(t)
	seedBotiquin(t, invUC)

	res, err := adjustUC.Adjust(context.Background(), inventory.AdjustInput{
		SKU:      "SKU-BOTI",
		Quantity: 5,
		Type:     entity.MovementTypeEntrada,
		User:     "bodeguero@ong.cl",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, res.Record.Stock)
}

func TestAdjustStockInsuficiente(t *testing.T) {
	_, invUC, adjustUC := newAdjustFixture(t)
	seedBotiquin(t, invUC)
	ctx := context.Background()

	// Una salida mayor al stock falla sin ningún efecto
	_, err := adjustUC.Adjust(ctx, inventory.AdjustInput{
		SKU:      "SKU-BOTI",
		Quantity: 30,
		Type:     entity.MovementTypeSalida,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	record, err := invUC.Get(ctx, "SKU-BOTI")
	require.NoError(t, err)
	assert.Equal(t, 25, record.Stock, "el stock no debe cambiar")

	movs, err := adjustUC.ListMovements(ctx, repository.MovementFilter{Type: entity.MovementTypeSalida})
	require.NoError(t, err)
	assert.Empty(t, movs, "la salida rechazada no deja movimiento")
}

func TestAdjustVaciarStock(t *testing.T) {
	_, invUC, adjustUC := newAdjustFixture(t)
	seedBotiquin(t, invUC)

	// Salida exacta deja el stock en cero, no es insuficiencia
	res, err := adjustUC.Adjust(context.Background(), inventory.AdjustInput{
		SKU:      "SKU-BOTI",
		Quantity: 25,
		Type:     entity.MovementTypeSalida,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Record.Stock)
}

func TestAdjustCantidadInvalida(t *testing.T) {
	_, invUC, adjustUC := newAdjustFixture(t)
	seedBotiquin(t, invUC)
	ctx := context.Background()

	for _, qty := range []int{0, -5} {
		_, err := adjustUC.Adjust(ctx, inventory.AdjustInput{
			SKU:      "SKU-BOTI",
			Quantity: qty,
			Type:     entity.MovementTypeEntrada,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestAdjustTipoInvalido(t *testing.T) {
	_, invUC, adjustUC := newAdjustFixture(t)
	seedBotiquin(t, invUC)

	_, err := adjustUC.Adjust(context.Background(), inventory.AdjustInput{
		SKU:      "SKU-BOTI",
		Quantity: 1,
		Type:     "ajuste",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustSKUInexistente(t *testing.T) {
	_, _, adjustUC := newAdjustFixture(t)

	_, err := adjustUC.Adjust(context.Background(), inventory.AdjustInput{
		SKU:      "SKU-FANTASMA",
		Quantity: 1,
		Type:     entity.MovementTypeEntrada,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLibroCompletoTrasAjustes(t *testing.T) {
	_, invUC, adjustUC := newAdjustFixture(t)
	seedBotiquin(t, invUC)
	ctx := context.Background()

	ajustes := []inventory.AdjustInput{
		{SKU: "SKU-BOTI", Quantity: 10, Type: entity.MovementTypeSalida, Reference: "Curso C-1"},
		{SKU: "SKU-BOTI", Quantity: 8, Type: entity.MovementTypeEntrada, Reference: "Reposición"},
		{SKU: "SKU-BOTI", Quantity: 6, Type: entity.MovementTypeSalida, Reference: "Curso C-2"},
	}
	for _, in := range ajustes {
		_, err := adjustUC.Adjust(ctx, in)
		require.NoError(t, err)
	}

	// 25 - 10 + 8 - 6 = 17
	record, err := invUC.Get(ctx, "SKU-BOTI")
	require.NoError(t, err)
	assert.Equal(t, 17, record.Stock)

	// El movimiento de creación más los tres ajustes
	movs, err := adjustUC.ListMovements(ctx, repository.MovementFilter{SKU: "SKU-BOTI"})
	require.NoError(t, err)
	require.Len(t, movs, 4)
}

func TestListMovementsOrdenYFiltros(t *testing.T) {
	store, _, adjustUC := newAdjustFixture(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	movRepo := store.MovementRepository()
	require.NoError(t, movRepo.Create(&entity.Movement{Date: base, Type: entity.MovementTypeEntrada, SKU: "SKU-A", Quantity: 5}))
	require.NoError(t, movRepo.Create(&entity.Movement{Date: base.Add(time.Hour), Type: entity.MovementTypeSalida, SKU: "SKU-A", Quantity: 2}))
	require.NoError(t, movRepo.Create(&entity.Movement{Date: base.Add(2 * time.Hour), Type: entity.MovementTypeSalida, SKU: "SKU-B", Quantity: 1}))

	// Más recientes primero
	movs, err := adjustUC.ListMovements(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, movs, 3)
	assert.Equal(t, "SKU-B", movs[0].SKU)
	assert.Equal(t, "SKU-A", movs[2].SKU)
	assert.Equal(t, entity.MovementTypeEntrada, movs[2].Type)

	// Filtro por tipo
	salidas, err := adjustUC.ListMovements(ctx, repository.MovementFilter{Type: entity.MovementTypeSalida})
	require.NoError(t, err)
	assert.Len(t, salidas, 2)

	// Filtro por SKU
	deA, err := adjustUC.ListMovements(ctx, repository.MovementFilter{SKU: "SKU-A"})
	require.NoError(t, err)
	assert.Len(t, deA, 2)

	// Rango de fechas
	desde := base.Add(30 * time.Minute)
	enRango, err := adjustUC.ListMovements(ctx, repository.MovementFilter{From: &desde})
	require.NoError(t, err)
	assert.Len(t, enRango, 2)

	// Paginación
	pagina, err := adjustUC.ListMovements(ctx, repository.MovementFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, pagina, 1)
	assert.Equal(t, entity.MovementTypeSalida, pagina[0].Type)
	assert.Equal(t, "SKU-A", pagina[0].SKU)

	// Tipo desconocido en el filtro
	_, err = adjustUC.ListMovements(ctx, repository.MovementFilter{Type: "ajuste"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
