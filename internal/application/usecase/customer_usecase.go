package usecase

import (
	"context"

	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"github.com/jhoicas/abaya-api/internal/domain/sales"
)

// CustomerUseCase vista de clientes derivada de los pedidos (no hay tabla de clientes).
type CustomerUseCase struct {
	orders repository.OrderRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(orders repository.OrderRepository) *CustomerUseCase {
	return &CustomerUseCase{orders: orders}
}

// List devuelve los nombres distintos, en el orden en que aparecen empezando por el pedido más reciente.
func (uc *CustomerUseCase) List(ctx context.Context) (*dto.CustomersResponse, error) {
	orders, err := uc.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, err
	}
	names := sales.DistinctCustomers(orders)
	return &dto.CustomersResponse{Customers: names, Total: len(names)}, nil
}
