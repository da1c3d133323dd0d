package postgres

import (
	"context"
	"fmt"

	"github.com/ong-capacita/logistica-api/internal/domain/entity"
	"github.com/ong-capacita/logistica-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL.
// La tabla es append-only; el ID secuencial lo asigna un BIGSERIAL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste el movimiento y devuelve el ID asignado.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (date, type, sku, quantity, reference, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.Date, movement.Type, movement.SKU, movement.Quantity,
		nullable(movement.Reference), movement.User,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve movimientos filtrados, más recientes primero.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT id, date, type, sku, quantity, reference, created_by
		FROM movements WHERE 1=1`
	var args []any
	pos := 1
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.SKU != "" {
		query += fmt.Sprintf(" AND sku = $%d", pos)
		args = append(args, filter.SKU)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += " ORDER BY date DESC, id DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, filter.Limit)
		pos++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", pos)
		args = append(args, filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var reference *string
		if err := rows.Scan(&m.ID, &m.Date, &m.Type, &m.SKU, &m.Quantity, &reference, &m.User); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Reference = fromNullable(reference)
		list = append(list, &m)
	}
	return list, rows.Err()
}
