package repository

import (
	"context"

	"github.com/jhoicas/abaya-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve domain.ErrDuplicate si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByID y GetByUsername devuelven (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
