package checklist

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// GeneratorUseCase instancia una plantilla en ítems concretos de checklist
// para un curso, dimensionados por cantidad de asistentes.
type GeneratorUseCase struct {
	catalog  *TemplateCatalog
	itemRepo repository.ChecklistItemRepository
}

// NewGeneratorUseCase construye el generador.
func NewGeneratorUseCase(catalog *TemplateCatalog, itemRepo repository.ChecklistItemRepository) *GeneratorUseCase {
	return &GeneratorUseCase{catalog: catalog, itemRepo: itemRepo}
}

// plannedQty deriva la cantidad planificada de una línea: techo de
// cantidad_por_persona * asistentes, con piso de 1 unidad. El piso evita
// ítems de cantidad cero incluso con 0 asistentes.
func plannedQty(qtyPerAttendee decimal.Decimal, attendees int) int {
	qty := int(qtyPerAttendee.Mul(decimal.NewFromInt(int64(attendees))).Ceil().IntPart())
	if qty < 1 {
		return 1
	}
	return qty
}

// Generate expande la plantilla en ítems de checklist, en el orden de la
// plantilla, y los persiste. Es aditivo: regenerar sobre un checklist
// existente agrega ítems; quien quiera reemplazar debe limpiar primero.
func (uc *GeneratorUseCase) Generate(ctx context.Context, courseID, templateID string, attendees int) ([]*entity.ChecklistItem, error) {
	template, err := uc.catalog.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.ChecklistItem, 0, len(template.Lines))
	for _, line := range template.Lines {
		origin := entity.OriginCompra
		if line.SKU != "" {
			origin = entity.OriginBodega
		}
		perAttendee := line.QtyPerAttendee
		item := &entity.ChecklistItem{
			CourseID:       courseID,
			SKU:            line.SKU,
			Item:           line.Item,
			Unit:           line.Unit,
			PlannedQty:     plannedQty(line.QtyPerAttendee, attendees),
			QtyPerAttendee: &perAttendee,
			Origin:         origin,
			Status:         entity.StatusPendiente,
		}
		if err := uc.itemRepo.Create(item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
