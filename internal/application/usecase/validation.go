package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/domain"
	"github.com/shopspring/decimal"
)

// requireText valida que los campos obligatorios no queden vacíos tras recortar espacios.
// fields es una lista de pares nombre/valor.
func requireText(fields ...[2]string) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: campos obligatorios: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

func requireNonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, name)
	}
	return nil
}

// parseSort traduce el parámetro sort; vacío → más recientes primero.
func parseSort(sort string) (ascending bool, err error) {
	switch strings.TrimSpace(sort) {
	case "", dto.SortCreatedAtDesc:
		return false, nil
	case dto.SortCreatedAtAsc:
		return true, nil
	default:
		return false, fmt.Errorf("%w: sort debe ser %s o %s", domain.ErrInvalidInput, dto.SortCreatedAtAsc, dto.SortCreatedAtDesc)
	}
}

func notFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, entity, id)
}
