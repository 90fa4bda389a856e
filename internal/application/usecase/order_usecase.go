package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/domain"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/order"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase casos de uso CRUD para pedidos.
// El estado guardado solo cambia por la regla de entrega; displayStatus se calcula al responder.
type OrderUseCase struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderUseCase construye el caso de uso. now nil → time.Now.
func NewOrderUseCase(repo repository.OrderRepository, now func() time.Time) *OrderUseCase {
	if now == nil {
		now = time.Now
	}
	return &OrderUseCase{repo: repo, now: now}
}

// Create valida y persiste un pedido nuevo.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Price == nil {
		return nil, fmt.Errorf("%w: campos obligatorios: price", domain.ErrInvalidInput)
	}
	deposit := decimal.Zero
	if in.Deposit != nil {
		deposit = *in.Deposit
	}
	now := uc.now().UTC()
	createdAt := now
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		createdAt = in.CreatedAt.UTC()
	}

	o := &entity.Order{
		ID:               uuid.New().String(),
		CustomerName:     strings.TrimSpace(in.CustomerName),
		Phone:            strings.TrimSpace(in.Phone),
		AbayaCode:        strings.TrimSpace(in.AbayaCode),
		Length:           strings.TrimSpace(in.Length),
		Width:            strings.TrimSpace(in.Width),
		SleeveLength:     strings.TrimSpace(in.SleeveLength),
		DeliveryLocation: strings.TrimSpace(in.DeliveryLocation),
		Price:            *in.Price,
		Deposit:          deposit,
		Notes:            in.Notes,
		CreatedAt:        createdAt,
	}
	order.ApplyDelivery(o, in.IsDelivered)
	if err := validateOrder(o); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o, now), nil
}

// GetByID obtiene un pedido; ErrNotFound si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o, uc.now()), nil
}

// List lista pedidos con búsqueda, filtro de entrega y orden.
func (uc *OrderUseCase) List(ctx context.Context, q dto.OrderListQuery) ([]dto.OrderResponse, error) {
	filter := repository.OrderFilter{Search: strings.TrimSpace(q.Q)}
	asc, err := parseSort(q.Sort)
	if err != nil {
		return nil, err
	}
	filter.Ascending = asc
	if v := strings.TrimSpace(q.Delivered); v != "" {
		delivered, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: delivered debe ser true o false", domain.ErrInvalidInput)
		}
		filter.Delivered = &delivered
	}

	orders, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *ToOrderResponse(o, now))
	}
	return out, nil
}

// Update aplica los campos presentes. Si llega isDelivered, el estado guardado se reescribe
// (Delivered o New) sin importar la antigüedad del pedido.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	setText(&o.CustomerName, in.CustomerName)
	setText(&o.Phone, in.Phone)
	setText(&o.AbayaCode, in.AbayaCode)
	setText(&o.Length, in.Length)
	setText(&o.Width, in.Width)
	setText(&o.SleeveLength, in.SleeveLength)
	setText(&o.DeliveryLocation, in.DeliveryLocation)
	if in.Notes != nil {
		o.Notes = *in.Notes
	}
	if in.Price != nil {
		o.Price = *in.Price
	}
	if in.Deposit != nil {
		o.Deposit = *in.Deposit
	}
	if in.IsDelivered != nil {
		order.ApplyDelivery(o, *in.IsDelivered)
	}
	if err := validateOrder(o); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o, uc.now()), nil
}

// Delete elimina un pedido; ErrNotFound si no existe.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *OrderUseCase) find(ctx context.Context, id string) (*entity.Order, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, notFound("pedido", id)
	}
	return o, nil
}

func validateOrder(o *entity.Order) error {
	if err := requireText(
		[2]string{"customerName", o.CustomerName},
		[2]string{"phone", o.Phone},
		[2]string{"abayaCode", o.AbayaCode},
		[2]string{"length", o.Length},
		[2]string{"width", o.Width},
		[2]string{"sleeveLength", o.SleeveLength},
		[2]string{"deliveryLocation", o.DeliveryLocation},
	); err != nil {
		return err
	}
	if err := requireNonNegative("price", o.Price); err != nil {
		return err
	}
	return requireNonNegative("deposit", o.Deposit)
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// ToOrderResponse convierte la entidad y calcula displayStatus al instante now.
func ToOrderResponse(o *entity.Order, now time.Time) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		Phone:            o.Phone,
		AbayaCode:        o.AbayaCode,
		Length:           o.Length,
		Width:            o.Width,
		SleeveLength:     o.SleeveLength,
		DeliveryLocation: o.DeliveryLocation,
		Price:            o.Price,
		Deposit:          o.Deposit,
		Notes:            o.Notes,
		IsDelivered:      o.IsDelivered,
		Status:           o.Status,
		DisplayStatus:    order.ResolveStatus(o, now),
		CreatedAt:        o.CreatedAt,
	}
}
