package repository

import (
	"context"

	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el historial.
// El historial es append-only: no hay Update ni Delete.
// ListAll devuelve los movimientos ordenados por fecha descendente, con el
// nombre del producto desnormalizado (LEFT JOIN) para presentación.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	ListAll(ctx context.Context) ([]entity.Movement, error)
}
