package repository

import (
	"context"

	"github.com/jhoicas/abaya-api/internal/domain/entity"
)

// DesignFilter criterios opcionales para listar diseños.
type DesignFilter struct {
	Search    string // subcadena sobre el código
	Ascending bool
}

// DesignRepository define el puerto de persistencia para Design.
// La unicidad de Code se garantiza en la base (índice único) y se traduce a domain.ErrDuplicate.
type DesignRepository interface {
	Create(ctx context.Context, design *entity.Design) error
	GetByID(ctx context.Context, id string) (*entity.Design, error)
	GetByCode(ctx context.Context, code string) (*entity.Design, error)
	List(ctx context.Context, filter DesignFilter) ([]*entity.Design, error)
	Update(ctx context.Context, design *entity.Design) error
	Delete(ctx context.Context, id string) error
}
