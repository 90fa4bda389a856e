package repository

import (
	"context"

	"github.com/jhoicas/abaya-api/internal/domain/entity"
)

// OrderFilter criterios opcionales para listar pedidos.
type OrderFilter struct {
	Search    string // subcadena sobre cliente, teléfono o código (sin distinguir mayúsculas)
	Delivered *bool  // nil = todos
	Ascending bool   // por defecto created_at DESC
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	// Update reemplaza el registro completo; domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, order *entity.Order) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id string) error
}
