package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/follacamiones24/gestora-uni/internal/application/dto"
	"github.com/follacamiones24/gestora-uni/internal/domain"
	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
	"github.com/follacamiones24/gestora-uni/internal/domain/repository"
)

// MovementUseCase registra movimientos del historial y lo lista.
// El historial es append-only: no expone Update ni Delete.
type MovementUseCase struct {
	repo      repository.MovementRepository
	snapshots *SnapshotLoader
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository, snapshots *SnapshotLoader) *MovementUseCase {
	return &MovementUseCase{repo: repo, snapshots: snapshots}
}

// Register inserta un movimiento nuevo. Valida tipo y cantidad positiva; la
// existencia del producto la decide storage (pass-through). Tras un insert
// exitoso recarga el snapshot del historial.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeIngreso && in.Type != entity.MovementTypeSalida {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	movement := &entity.Movement{
		ID:        uuid.New().String(),
		Type:      in.Type,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Date:      date,
		Notes:     in.Notes,
	}
	if err := uc.repo.Create(ctx, movement); err != nil {
		return nil, err
	}
	// Recarga fire-and-reload; si falla queda el snapshot anterior y el
	// historial se verá en la próxima carga.
	_ = uc.snapshots.ReloadMovements(ctx)
	return toMovementResponse(movement), nil
}

// List devuelve el historial completo, ordenado por fecha descendente, con el
// nombre del producto desnormalizado para presentación.
func (uc *MovementUseCase) List(ctx context.Context) (*dto.MovementListResponse, error) {
	items, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(items))
	for i := range items {
		out = append(out, *toMovementResponse(&items[i]))
	}
	return &dto.MovementListResponse{Items: out, Total: len(out)}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		Type:        m.Type,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Date:        m.Date,
		Notes:       m.Notes,
	}
}
