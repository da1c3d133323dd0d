package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.CourseRepository = (*CourseRepo)(nil)

const courseColumns = "id, name, type, date, place, attendees, responsible, active, template_id, created_at"

// CourseRepo implementación de CourseRepository sobre PostgreSQL.
type CourseRepo struct {
	q Querier
}

// NewCourseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCourseRepository(q Querier) *CourseRepo {
	return &CourseRepo{q: q}
}

// Create inserta un curso.
func (r *CourseRepo) Create(course *entity.Course) error {
	query := `
		INSERT INTO courses (id, name, type, date, place, attendees, responsible, active, template_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		course.ID, course.Name, course.Type, course.Date, nullable(course.Place),
		course.Attendees, nullable(course.Responsible), course.Active,
		nullable(course.TemplateID), course.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// GetByID obtiene un curso; (nil, nil) si no existe.
func (r *CourseRepo) GetByID(id string) (*entity.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	course, err := scanCourse(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// Update reemplaza los datos del curso.
func (r *CourseRepo) Update(course *entity.Course) error {
	query := `
		UPDATE courses
		SET name = $2, type = $3, date = $4, place = $5, attendees = $6, responsible = $7, active = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		course.ID, course.Name, course.Type, course.Date, nullable(course.Place),
		course.Attendees, nullable(course.Responsible), course.Active,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el curso. La cascada del checklist la maneja el caso de uso.
func (r *CourseRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los cursos, los más antiguos primero.
func (r *CourseRepo) List() ([]*entity.Course, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+courseColumns+` FROM courses ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		list = append(list, course)
	}
	return list, rows.Err()
}

// ExistsByTemplate indica si algún curso referencia la plantilla.
func (r *CourseRepo) ExistsByTemplate(templateID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM courses WHERE template_id = $1)`, templateID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by template: %w", err)
	}
	return exists, nil
}

func scanCourse(row pgx.Row) (*entity.Course, error) {
	var course entity.Course
	var place, responsible, templateID *string
	err := row.Scan(&course.ID, &course.Name, &course.Type, &course.Date, &place,
		&course.Attendees, &responsible, &course.Active, &templateID, &course.CreatedAt)
	if err != nil {
		return nil, err
	}
	course.Place = fromNullable(place)
	course.Responsible = fromNullable(responsible)
	course.TemplateID = fromNullable(templateID)
	return &course, nil
}
