package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ong-capacita/logistica-api/internal/application/checklist"
	"github.com/ong-capacita/logistica-api/internal/application/course"
	"github.com/ong-capacita/logistica-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.InventoryUseCase
	AdjustUC    *inventory.AdjustStockUseCase
	Catalog     *checklist.TemplateCatalog
	ItemsUC     *checklist.ItemUseCase
	GeneratorUC *checklist.GeneratorUseCase
	CourseUC    *course.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario y libro de movimientos
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.AdjustUC)
	inv := api.Group("/inventario")
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Create)
	inv.Post("/ajustar", inventoryHandler.Adjust)
	inv.Get("/alertas", inventoryHandler.LowStock)
	inv.Get("/:sku", inventoryHandler.Get)
	inv.Put("/:sku", inventoryHandler.Update)
	inv.Delete("/:sku", inventoryHandler.Delete)

	movementHandler := NewMovementHandler(deps.AdjustUC)
	api.Get("/movimientos", movementHandler.List)

	// Catálogo de plantillas
	templateHandler := NewTemplateHandler(deps.Catalog)
	tpl := api.Group("/plantillas")
	tpl.Get("/", templateHandler.List)
	tpl.Post("/", templateHandler.Create)
	tpl.Get("/:id", templateHandler.Get)
	tpl.Put("/:id", templateHandler.Update)
	tpl.Delete("/:id", templateHandler.Delete)

	// Checklist por curso
	checklistHandler := NewChecklistHandler(deps.ItemsUC, deps.GeneratorUC)
	cl := api.Group("/checklist-items")
	cl.Get("/", checklistHandler.List)
	cl.Post("/", checklistHandler.Create)
	cl.Delete("/", checklistHandler.DeleteByCourse)
	cl.Post("/generate", checklistHandler.Generate)
	cl.Put("/:id", checklistHandler.Update)
	cl.Delete("/:id", checklistHandler.Delete)

	// Cursos
	courseHandler := NewCourseHandler(deps.CourseUC)
	cursos := api.Group("/cursos")
	cursos.Get("/", courseHandler.List)
	cursos.Post("/", courseHandler.Create)
	cursos.Get("/:id", courseHandler.Get)
	cursos.Put("/:id", courseHandler.Update)
	cursos.Delete("/:id", courseHandler.Delete)
}
