// Package inventory contiene la carga de snapshots y el registro de
// movimientos del historial.
package inventory

import (
	"context"
	"sync"

	"github.com/follacamiones24/gestora-uni/internal/domain"
	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
	"github.com/follacamiones24/gestora-uni/internal/domain/repository"
	"github.com/follacamiones24/gestora-uni/pkg/logger"
)

// Snapshots es el par de colecciones vigentes en memoria: el catálogo
// completo y el historial ordenado por fecha descendente.
type Snapshots struct {
	Products  []entity.Product
	Movements []entity.Movement
}

// SnapshotLoader carga los dos snapshots desde storage y conserva el último
// snapshot bueno de cada colección.
//
// Las dos lecturas se emiten en paralelo y se espera a ambas (join, no
// carrera). Una lectura fallida se registra en el log y deja vigente el
// snapshot anterior (vacío en la primera carga); nunca tumba el proceso.
// Un snapshot nuevo reemplaza al anterior completo, jamás se muta in place.
type SnapshotLoader struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	log          *logger.Logger

	mu        sync.RWMutex
	products  []entity.Product
	movements []entity.Movement
}

// NewSnapshotLoader construye el loader con snapshots iniciales vacíos.
func NewSnapshotLoader(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	log *logger.Logger,
) *SnapshotLoader {
	return &SnapshotLoader{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		log:          log,
		products:     []entity.Product{},
		movements:    []entity.Movement{},
	}
}

// Load refresca ambos snapshots y devuelve los vigentes.
//
// El error devuelto es domain.ErrSnapshotUnavailable si alguna de las dos
// lecturas de esta invocación falló. El tablero puede ignorarlo y renderizar
// con los snapshots retenidos; el generador de reportes no debe invocarse
// cuando hay error (requiere ambas cargas frescas).
func (l *SnapshotLoader) Load(ctx context.Context) (Snapshots, error) {
	type productsResult struct {
		items []entity.Product
		err   error
	}
	type movementsResult struct {
		items []entity.Movement
		err   error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		items, err := l.productRepo.ListAll(ctx)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := l.movementRepo.ListAll(ctx)
		movementsCh <- movementsResult{items, err}
	}()

	products := <-productsCh
	movements := <-movementsCh

	l.mu.Lock()
	if products.err != nil {
		l.log.Warn().Err(products.err).Msg("carga de productos fallida, se conserva el snapshot anterior")
	} else {
		l.products = normalizeProducts(products.items)
	}
	if movements.err != nil {
		l.log.Warn().Err(movements.err).Msg("carga de historial fallida, se conserva el snapshot anterior")
	} else {
		l.movements = normalizeMovements(movements.items)
	}
	current := Snapshots{Products: l.products, Movements: l.movements}
	l.mu.Unlock()

	if products.err != nil || movements.err != nil {
		return current, domain.ErrSnapshotUnavailable
	}
	return current, nil
}

// ReloadProducts refresca solo el snapshot de productos. Lo invoca el editor
// de catálogo tras una mutación exitosa (fire-and-reload, nunca parche
// incremental).
func (l *SnapshotLoader) ReloadProducts(ctx context.Context) error {
	items, err := l.productRepo.ListAll(ctx)
	if err != nil {
		l.log.Warn().Err(err).Msg("recarga de productos fallida, se conserva el snapshot anterior")
		return err
	}
	l.mu.Lock()
	l.products = normalizeProducts(items)
	l.mu.Unlock()
	return nil
}

// ReloadMovements refresca solo el snapshot del historial, tras registrar un
// movimiento nuevo.
func (l *SnapshotLoader) ReloadMovements(ctx context.Context) error {
	items, err := l.movementRepo.ListAll(ctx)
	if err != nil {
		l.log.Warn().Err(err).Msg("recarga de historial fallida, se conserva el snapshot anterior")
		return err
	}
	l.mu.Lock()
	l.movements = normalizeMovements(items)
	l.mu.Unlock()
	return nil
}

// Current devuelve los snapshots vigentes sin tocar storage.
func (l *SnapshotLoader) Current() Snapshots {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Snapshots{Products: l.products, Movements: l.movements}
}

func normalizeProducts(items []entity.Product) []entity.Product {
	if items == nil {
		return []entity.Product{}
	}
	return items
}

func normalizeMovements(items []entity.Movement) []entity.Movement {
	if items == nil {
		return []entity.Movement{}
	}
	return items
}
