package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/abaya-api/internal/domain"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, customer_name, phone, abaya_code, length, width, sleeve_length,
	delivery_location, price, deposit, notes, is_delivered, status, created_at`

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CustomerName, o.Phone, o.AbayaCode, o.Length, o.Width, o.SleeveLength,
		o.DeliveryLocation, o.Price, o.Deposit, o.Notes, o.IsDelivered, o.Status, o.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	row := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List lista pedidos aplicando búsqueda, filtro de entrega y orden por fecha.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var (
		where []string
		args  []any
	)
	if term := strings.TrimSpace(filter.Search); term != "" {
		args = append(args, likePattern(term))
		p := placeholder(len(args))
		where = append(where, "(customer_name ILIKE "+p+" OR phone ILIKE "+p+" OR abaya_code ILIKE "+p+")")
	}
	if filter.Delivered != nil {
		args = append(args, *filter.Delivered)
		where = append(where, "is_delivered = "+placeholder(len(args)))
	}
	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at " + orderDirection(filter.Ascending) + ", id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos editables del pedido.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders SET customer_name = $2, phone = $3, abaya_code = $4, length = $5, width = $6,
			sleeve_length = $7, delivery_location = $8, price = $9, deposit = $10, notes = $11,
			is_delivered = $12, status = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		o.ID, o.CustomerName, o.Phone, o.AbayaCode, o.Length, o.Width, o.SleeveLength,
		o.DeliveryLocation, o.Price, o.Deposit, o.Notes, o.IsDelivered, o.Status,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.Phone, &o.AbayaCode, &o.Length, &o.Width, &o.SleeveLength,
		&o.DeliveryLocation, &o.Price, &o.Deposit, &o.Notes, &o.IsDelivered, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
