package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"pendiente a listo", entity.StatusPendiente, entity.StatusListo, true},
		{"listo a entregado", entity.StatusListo, entity.StatusEntregado, true},
		{"salto pendiente a entregado", entity.StatusPendiente, entity.StatusEntregado, false},
		{"retroceso listo a pendiente", entity.StatusListo, entity.StatusPendiente, false},
		{"retroceso entregado a listo", entity.StatusEntregado, entity.StatusListo, false},
		{"entregado es terminal", entity.StatusEntregado, entity.StatusEntregado, false},
		{"mismo estado", entity.StatusPendiente, entity.StatusPendiente, false},
		{"estado desconocido", entity.StatusPendiente, "cancelado", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, entity.CanTransition(tc.from, tc.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, entity.ValidStatus(entity.StatusPendiente))
	assert.True(t, entity.ValidStatus(entity.StatusListo))
	assert.True(t, entity.ValidStatus(entity.StatusEntregado))
	assert.False(t, entity.ValidStatus(""))
	assert.False(t, entity.ValidStatus("cancelado"))
}

func TestDrawsFromStock(t *testing.T) {
	conSKU := &entity.ChecklistItem{Origin: entity.OriginBodega, SKU: "SKU-BOTI"}
	assert.True(t, conSKU.DrawsFromStock())

	compra := &entity.ChecklistItem{Origin: entity.OriginCompra, SKU: ""}
	assert.False(t, compra.DrawsFromStock())

	// Bodega sin SKU no puede descontar nada
	sinSKU := &entity.ChecklistItem{Origin: entity.OriginBodega, SKU: ""}
	assert.False(t, sinSKU.DrawsFromStock())
}

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypeEntrada))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeSalida))
	assert.False(t, entity.ValidMovementType("ajuste"))
	assert.False(t, entity.ValidMovementType(""))
}
