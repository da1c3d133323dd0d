package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/ong-capacita/logistica-api/internal/domain"
	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.ChecklistItemRepository = (*ChecklistItemRepo)(nil)

const checklistItemColumns = "id, course_id, sku, item, unit, planned_qty, qty_per_attendee, origin, status, notes"

// ChecklistItemRepo implementación de ChecklistItemRepository sobre PostgreSQL.
type ChecklistItemRepo struct {
	q Querier
}

// NewChecklistItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChecklistItemRepository(q Querier) *ChecklistItemRepo {
	return &ChecklistItemRepo{q: q}
}

// Create inserta un ítem; asigna ID si viene vacío.
func (r *ChecklistItemRepo) Create(item *entity.ChecklistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO checklist_items (id, course_id, sku, item, unit, planned_qty, qty_per_attendee, origin, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CourseID, nullable(item.SKU), item.Item, item.Unit,
		item.PlannedQty, item.QtyPerAttendee, item.Origin, item.Status, nullable(item.Notes),
	)
	if err != nil {
		return fmt.Errorf("create checklist item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem; (nil, nil) si no existe.
func (r *ChecklistItemRepo) GetByID(id string) (*entity.ChecklistItem, error) {
	query := `SELECT ` + checklistItemColumns + ` FROM checklist_items WHERE id = $1`
	item, err := scanChecklistItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checklist item: %w", err)
	}
	return item, nil
}

// Update reemplaza los campos mutables del ítem.
func (r *ChecklistItemRepo) Update(item *entity.ChecklistItem) error {
	query := `
		UPDATE checklist_items
		SET planned_qty = $2, status = $3, notes = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.PlannedQty, item.Status, nullable(item.Notes))
	if err != nil {
		return fmt.Errorf("update checklist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem.
func (r *ChecklistItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM checklist_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete checklist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los ítems en orden de inserción.
func (r *ChecklistItemRepo) List() ([]*entity.ChecklistItem, error) {
	query := `SELECT ` + checklistItemColumns + ` FROM checklist_items ORDER BY created_seq`
	return r.list(query)
}

// ListByCourse devuelve los ítems de un curso en orden de inserción.
func (r *ChecklistItemRepo) ListByCourse(courseID string) ([]*entity.ChecklistItem, error) {
	query := `SELECT ` + checklistItemColumns + ` FROM checklist_items WHERE course_id = $1 ORDER BY created_seq`
	return r.list(query, courseID)
}

// DeleteByCourse elimina el checklist completo de un curso (cascada).
func (r *ChecklistItemRepo) DeleteByCourse(courseID string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM checklist_items WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("delete checklist items by course: %w", err)
	}
	return nil
}

func (r *ChecklistItemRepo) list(query string, args ...any) ([]*entity.ChecklistItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChecklistItem
	for rows.Next() {
		item, err := scanChecklistItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checklist item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanChecklistItem(row pgx.Row) (*entity.ChecklistItem, error) {
	var item entity.ChecklistItem
	var sku, notes *string
	var qtyPerAttendee *decimal.Decimal
	err := row.Scan(&item.ID, &item.CourseID, &sku, &item.Item, &item.Unit,
		&item.PlannedQty, &qtyPerAttendee, &item.Origin, &item.Status, &notes)
	if err != nil {
		return nil, err
	}
	item.SKU = fromNullable(sku)
	item.Notes = fromNullable(notes)
	item.QtyPerAttendee = qtyPerAttendee
	return &item, nil
}
