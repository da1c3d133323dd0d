package dto

import (
	"time"

	"github.com/ong-capacita/logistica-api/internal/domain/entity"
)

// CreateInventoryRequest body para POST /api/inventario.
type CreateInventoryRequest struct {
	SKU      string `json:"sku"`
	Name     string `json:"nombre"`
	Size     string `json:"talla,omitempty"`
	Color    string `json:"color,omitempty"`
	Stock    int    `json:"stock"`
	StockMin int    `json:"stock_min"`
	Location string `json:"ubicacion,omitempty"`
}

// UpdateInventoryRequest body para PUT /api/inventario/:sku. Campos ausentes
// no cambian. El stock no se acepta aquí: solo vía /api/inventario/ajustar.
type UpdateInventoryRequest struct {
	Name     *string `json:"nombre,omitempty"`
	Size     *string `json:"talla,omitempty"`
	Color    *string `json:"color,omitempty"`
	StockMin *int    `json:"stock_min,omitempty"`
	Location *string `json:"ubicacion,omitempty"`
}

// InventoryResponse representación HTTP de un ítem de bodega.
type InventoryResponse struct {
	SKU       string    `json:"sku"`
	Name      string    `json:"nombre"`
	Size      string    `json:"talla,omitempty"`
	Color     string    `json:"color,omitempty"`
	Stock     int       `json:"stock"`
	StockMin  int       `json:"stock_min"`
	Location  string    `json:"ubicacion,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewInventoryResponse mapea la entidad al DTO.
func NewInventoryResponse(r *entity.InventoryRecord) InventoryResponse {
	return InventoryResponse{
		SKU:       r.SKU,
		Name:      r.Name,
		Size:      r.Size,
		Color:     r.Color,
		Stock:     r.Stock,
		StockMin:  r.StockMin,
		Location:  r.Location,
		UpdatedAt: r.UpdatedAt,
	}
}

// AdjustStockRequest body para POST /api/inventario/ajustar.
type AdjustStockRequest struct {
	SKU       string `json:"sku"`
	Quantity  int    `json:"cantidad"`
	Type      string `json:"tipo"` // entrada | salida
	Reference string `json:"referencia,omitempty"`
	User      string `json:"usuario,omitempty"`
}

// MovementResponse representación HTTP de un movimiento del libro.
type MovementResponse struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"fecha"`
	Type      string    `json:"tipo"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"cantidad"`
	Reference string    `json:"referencia,omitempty"`
	User      string    `json:"usuario"`
}

// NewMovementResponse mapea la entidad al DTO.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		Date:      m.Date,
		Type:      m.Type,
		SKU:       m.SKU,
		Quantity:  m.Quantity,
		Reference: m.Reference,
		User:      m.User,
	}
}

// AdjustStockResponse resultado de un ajuste: ítem y movimiento creados juntos.
type AdjustStockResponse struct {
	Inventory InventoryResponse `json:"inventario"`
	Movement  MovementResponse  `json:"movimiento"`
}
