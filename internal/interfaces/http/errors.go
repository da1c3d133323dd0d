package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ong-capacita/logistica-api/internal/application/dto"
	"github.com/ong-capacita/logistica-api/internal/domain"
)

// mapDomainError traduce errores de dominio a respuestas HTTP. Único punto de
// mapeo: los casos de uso devuelven errores tipados, nunca códigos HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicateSKU):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: "el SKU ya está registrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "cantidad inválida"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado inválida"})
	case errors.Is(err, domain.ErrTemplateInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TEMPLATE_IN_USE", Message: "la plantilla está en uso por un curso"})
	case errors.Is(err, domain.ErrBuiltinTemplate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BUILTIN_TEMPLATE", Message: "las plantillas integradas no se pueden modificar"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// requestUser identifica al usuario que opera. No hay autenticación real:
// el rol es cosmético en el origen; se acepta la cabecera X-User o el campo
// usuario del body, con fallback al usuario de sistema.
func requestUser(c *fiber.Ctx, bodyUser string) string {
	if bodyUser != "" {
		return bodyUser
	}
	if u := c.Get("X-User"); u != "" {
		return u
	}
	return "system@ong.cl"
}
