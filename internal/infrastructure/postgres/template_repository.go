package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementación de TemplateRepository sobre PostgreSQL.
// Las líneas se guardan como JSONB, igual que el origen (una plantilla es una
// unidad: siempre se lee y escribe completa, en orden).
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

// Create inserta una plantilla de usuario.
func (r *TemplateRepo) Create(template *entity.ChecklistTemplate) error {
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	lines, err := json.Marshal(template.Lines)
	if err != nil {
		return fmt.Errorf("marshal template lines: %w", err)
	}
	query := `
		INSERT INTO checklist_templates (id, name, course_type, lines)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(context.Background(), query, template.ID, template.Name, template.CourseType, lines); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla; (nil, nil) si no existe.
func (r *TemplateRepo) GetByID(id string) (*entity.ChecklistTemplate, error) {
	query := `SELECT id, name, course_type, lines FROM checklist_templates WHERE id = $1`
	tpl, err := scanTemplate(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return tpl, nil
}

// Update reemplaza la plantilla completa, líneas incluidas.
func (r *TemplateRepo) Update(template *entity.ChecklistTemplate) error {
	lines, err := json.Marshal(template.Lines)
	if err != nil {
		return fmt.Errorf("marshal template lines: %w", err)
	}
	query := `UPDATE checklist_templates SET name = $2, course_type = $3, lines = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, template.ID, template.Name, template.CourseType, lines)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una plantilla de usuario.
func (r *TemplateRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM checklist_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las plantillas de usuario.
func (r *TemplateRepo) List() ([]*entity.ChecklistTemplate, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, course_type, lines FROM checklist_templates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChecklistTemplate
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, tpl)
	}
	return list, rows.Err()
}

func scanTemplate(row pgx.Row) (*entity.ChecklistTemplate, error) {
	var tpl entity.ChecklistTemplate
	var lines []byte
	if err := row.Scan(&tpl.ID, &tpl.Name, &tpl.CourseType, &lines); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &tpl.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal template lines: %w", err)
	}
	return &tpl, nil
}
