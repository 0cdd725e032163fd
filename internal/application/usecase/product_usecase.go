package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/follacamiones24/gestora-uni/internal/application/dto"
	appinventory "github.com/follacamiones24/gestora-uni/internal/application/inventory"
	"github.com/follacamiones24/gestora-uni/internal/domain"
	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
	"github.com/follacamiones24/gestora-uni/internal/domain/inventory"
	"github.com/follacamiones24/gestora-uni/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo (editor de catálogo).
// Cada mutación exitosa dispara una recarga completa del snapshot de
// productos (fire-and-reload); nunca se parcha el snapshot in place. Si la
// mutación falla, la recarga se omite y queda visible el estado previo.
type ProductUseCase struct {
	repo      repository.ProductRepository
	snapshots *appinventory.SnapshotLoader
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, snapshots *appinventory.SnapshotLoader) *ProductUseCase {
	return &ProductUseCase{repo: repo, snapshots: snapshots}
}

// Create crea un producto nuevo. Solo valida lo mínimo (nombre presente y
// stock no negativo); el resto lo decide storage.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Stock:       in.Stock,
		Price:       in.Price,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	_ = uc.snapshots.ReloadProducts(ctx)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID (para precargar el formulario de edición
// con el registro completo).
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto in place: aplica solo los campos presentes
// sobre el registro existente (no borra-y-recrea).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = in.Category
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Price != nil {
		product.Price = in.Price
	}
	if in.Description != nil {
		product.Description = in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	_ = uc.snapshots.ReloadProducts(ctx)
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. El historial que lo referencia queda
// con la referencia colgando; los listados degradan a una etiqueta de
// respaldo, nunca fallan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = uc.snapshots.ReloadProducts(ctx)
	return nil
}

// List refresca el snapshot de productos y devuelve las filas cuyo nombre
// contiene query (substring, sin distinguir mayúsculas). Si la recarga falla
// se sirve el snapshot retenido; el error ya quedó en el log.
func (uc *ProductUseCase) List(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	_ = uc.snapshots.ReloadProducts(ctx)
	filtered := inventory.FilterByName(uc.snapshots.Current().Products, query)
	items := make([]dto.ProductResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, *toProductResponse(&filtered[i]))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Stock:       p.Stock,
		Price:       p.Price,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
