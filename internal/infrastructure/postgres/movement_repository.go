package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
	"github.com/follacamiones24/gestora-uni/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (tabla historial). El historial es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento del historial.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO historial (id, tipo_movimiento, producto_id, cantidad, fecha, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.Type, movement.ProductID,
		movement.Quantity, movement.Date, movement.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListAll devuelve el historial completo ordenado por fecha descendente, con
// el nombre del producto desnormalizado (LEFT JOIN: nil si la referencia
// quedó colgando tras borrar el producto).
func (r *MovementRepo) ListAll(ctx context.Context) ([]entity.Movement, error) {
	query := `
		SELECT h.id, h.tipo_movimiento, h.producto_id, h.cantidad, h.fecha, h.observaciones, p.nombre
		FROM historial h
		LEFT JOIN productos p ON p.id = h.producto_id
		ORDER BY h.fecha DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Type, &m.ProductID, &m.Quantity,
			&m.Date, &m.Notes, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
