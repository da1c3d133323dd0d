package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicateSKU      = errors.New("el SKU ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrTemplateInUse     = errors.New("la plantilla está en uso por un curso")
	ErrBuiltinTemplate   = errors.New("las plantillas integradas no se pueden modificar")
)
