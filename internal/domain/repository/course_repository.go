package repository

import "github.com/ong-capacita/logistica-api/internal/domain/entity"

// CourseRepository define el puerto de persistencia para cursos.
type CourseRepository interface {
	Create(course *entity.Course) error
	GetByID(id string) (*entity.Course, error)
	Update(course *entity.Course) error
	Delete(id string) error
	List() ([]*entity.Course, error)
	// ExistsByTemplate indica si algún curso referencia la plantilla dada.
	ExistsByTemplate(templateID string) (bool, error)
}
