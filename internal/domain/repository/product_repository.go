package repository

import (
	"context"

	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// ListAll devuelve el catálogo completo: el tablero trabaja sobre snapshots
// íntegros en memoria, no sobre páginas.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]entity.Product, error)
}
