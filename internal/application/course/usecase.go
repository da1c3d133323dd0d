package course

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ong-capacita/logistica-api/internal/application/checklist"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

// UseCase administra el ciclo de vida de los cursos y su acople con el
// checklist: crear con plantilla genera el checklist, borrar lo elimina en
// cascada.
type UseCase struct {
	courseRepo repository.CourseRepository
	generator  *checklist.GeneratorUseCase
	items      *checklist.ItemUseCase
	catalog    *checklist.TemplateCatalog
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	courseRepo repository.CourseRepository,
	generator *checklist.GeneratorUseCase,
	items *checklist.ItemUseCase,
	catalog *checklist.TemplateCatalog,
) *UseCase {
	return &UseCase{courseRepo: courseRepo, generator: generator, items: items, catalog: catalog}
}

// CreateInput entrada para crear un curso.
type CreateInput struct {
	Name        string
	Type        string
	Date        time.Time
	Place       string
	Attendees   int
	Responsible string
	TemplateID  string
}

// Create registra el curso y, si referencia una plantilla, genera su checklist
// dimensionado por asistentes. La plantilla se resuelve antes de persistir
// para no dejar cursos sin checklist por una referencia inválida.
func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*entity.Course, error) {
	if input.Name == "" || input.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Attendees < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.TemplateID != "" {
		if _, err := uc.catalog.Get(ctx, input.TemplateID); err != nil {
			return nil, err
		}
	}

	course := &entity.Course{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Type:        input.Type,
		Date:        input.Date,
		Place:       input.Place,
		Attendees:   input.Attendees,
		Responsible: input.Responsible,
		Active:      true,
		TemplateID:  input.TemplateID,
		CreatedAt:   time.Now(),
	}
	if err := uc.courseRepo.Create(course); err != nil {
		return nil, err
	}

	if course.TemplateID != "" {
		if _, err := uc.generator.Generate(ctx, course.ID, course.TemplateID, course.Attendees); err != nil {
			return nil, err
		}
	}
	return course, nil
}

// Get obtiene un curso por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.ErrNotFound
	}
	return course, nil
}

// UpdateInput edición parcial de un curso. Nil = sin cambio.
type UpdateInput struct {
	Name        *string
	Type        *string
	Date        *time.Time
	Place       *string
	Attendees   *int
	Responsible *string
	Active      *bool
}

// Update edita los datos del curso. No regenera el checklist: un cambio de
// asistentes después de generado se resuelve limpiando y regenerando
// explícitamente.
func (uc *UseCase) Update(ctx context.Context, id string, input UpdateInput) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.ErrNotFound
	}

	if input.Name != nil {
		course.Name = *input.Name
	}
	if input.Type != nil {
		course.Type = *input.Type
	}
	if input.Date != nil {
		course.Date = *input.Date
	}
	if input.Place != nil {
		course.Place = *input.Place
	}
	if input.Attendees != nil {
		if *input.Attendees < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		course.Attendees = *input.Attendees
	}
	if input.Responsible != nil {
		course.Responsible = *input.Responsible
	}
	if input.Active != nil {
		course.Active = *input.Active
	}

	if err := uc.courseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete elimina el curso y su checklist en cascada.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	course, err := uc.courseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if course == nil {
		return domain.ErrNotFound
	}
	if err := uc.items.DeleteAllForCourse(ctx, id); err != nil {
		return err
	}
	return uc.courseRepo.Delete(id)
}

// List devuelve todos los cursos.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Course, error) {
	return uc.courseRepo.List()
}
