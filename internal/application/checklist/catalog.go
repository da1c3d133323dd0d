package checklist

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// builtinTemplates es el set integrado del catálogo. Se sirve junto a las
// plantillas de usuario como un único catálogo direccionable; sus IDs están
// reservados y no se pueden editar ni borrar.
var builtinTemplates = []*entity.ChecklistTemplate{
	{
		ID:         "tpl-001",
		Name:       "Curso básico",
		CourseType: "Primeros Auxilios",
		Lines: []entity.TemplateLine{
			{Item: "Botiquines", Unit: "unidad", QtyPerAttendee: decimal.NewFromInt(1), SKU: "SKU-BOTI"},
			{Item: "Agua 1L", Unit: "botella", QtyPerAttendee: decimal.NewFromInt(1)},
			{Item: "Chalecos reflectantes", Unit: "unidad", QtyPerAttendee: decimal.NewFromInt(1), SKU: "SKU-CHALECO"},
		},
	},
	{
		ID:         "tpl-002",
		Name:       "Prevención",
		CourseType: "Prevención de Riesgos",
		Lines: []entity.TemplateLine{
			{Item: "Señalética", Unit: "set", QtyPerAttendee: decimal.NewFromFloat(0.1)},
			{Item: "Extintor 5kg", Unit: "unidad", QtyPerAttendee: decimal.NewFromFloat(0.05)},
		},
	},
}

// TemplateCatalog expone las plantillas integradas y las de usuario como un
// catálogo único. El set de usuario vive en el repositorio; el integrado es
// estático.
type TemplateCatalog struct {
	tplRepo    repository.TemplateRepository
	courseRepo repository.CourseRepository
}

// NewTemplateCatalog construye el catálogo.
func NewTemplateCatalog(tplRepo repository.TemplateRepository, courseRepo repository.CourseRepository) *TemplateCatalog {
	return &TemplateCatalog{tplRepo: tplRepo, courseRepo: courseRepo}
}

func builtinByID(id string) *entity.ChecklistTemplate {
	for _, tpl := range builtinTemplates {
		if tpl.ID == id {
			return tpl
		}
	}
	return nil
}

// Get resuelve una plantilla por ID, integrada o de usuario.
func (c *TemplateCatalog) Get(ctx context.Context, id string) (*entity.ChecklistTemplate, error) {
	if tpl := builtinByID(id); tpl != nil {
		copia := *tpl
		return &copia, nil
	}
	tpl, err := c.tplRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}
	return tpl, nil
}

// List devuelve el catálogo completo: integradas primero, luego las de usuario.
func (c *TemplateCatalog) List(ctx context.Context) ([]*entity.ChecklistTemplate, error) {
	userTpls, err := c.tplRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ChecklistTemplate, 0, len(builtinTemplates)+len(userTpls))
	for _, tpl := range builtinTemplates {
		copia := *tpl
		out = append(out, &copia)
	}
	return append(out, userTpls...), nil
}

// Create registra una plantilla de usuario.
func (c *TemplateCatalog) Create(ctx context.Context, tpl *entity.ChecklistTemplate) (*entity.ChecklistTemplate, error) {
	if tpl.Name == "" || tpl.CourseType == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range tpl.Lines {
		if line.QtyPerAttendee.IsNegative() {
			return nil, domain.ErrInvalidQuantity
		}
	}
	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	if builtinByID(tpl.ID) != nil {
		return nil, domain.ErrBuiltinTemplate
	}
	if err := c.tplRepo.Create(tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Update edita una plantilla de usuario. Falla si está en uso por un curso.
func (c *TemplateCatalog) Update(ctx context.Context, tpl *entity.ChecklistTemplate) (*entity.ChecklistTemplate, error) {
	if builtinByID(tpl.ID) != nil {
		return nil, domain.ErrBuiltinTemplate
	}
	existing, err := c.tplRepo.GetByID(tpl.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	inUse, err := c.courseRepo.ExistsByTemplate(tpl.ID)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, domain.ErrTemplateInUse
	}
	if err := c.tplRepo.Update(tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Delete elimina una plantilla de usuario. Falla si está en uso por un curso.
func (c *TemplateCatalog) Delete(ctx context.Context, id string) error {
	if builtinByID(id) != nil {
		return domain.ErrBuiltinTemplate
	}
	existing, err := c.tplRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	inUse, err := c.courseRepo.ExistsByTemplate(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrTemplateInUse
	}
	return c.tplRepo.Delete(id)
}
