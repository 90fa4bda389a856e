package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// snapshot pedidos y diseños leídos en paralelo. No es una lectura transaccional:
// un diseño borrado entre ambas consultas cae en el grupo "Other / Deleted Design".
type snapshot struct {
	orders  []*entity.Order
	designs []*entity.Design
}

func loadSnapshot(ctx context.Context, orders repository.OrderRepository, designs repository.DesignRepository) (*snapshot, error) {
	var s snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := orders.List(gctx, repository.OrderFilter{})
		if err != nil {
			return fmt.Errorf("cargar pedidos: %w", err)
		}
		s.orders = list
		return nil
	})
	g.Go(func() error {
		list, err := designs.List(gctx, repository.DesignFilter{})
		if err != nil {
			return fmt.Errorf("cargar diseños: %w", err)
		}
		s.designs = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}
