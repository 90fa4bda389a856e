package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/abaya-api/internal/domain"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"gorm.io/gorm"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository con GORM.
type OrderRepo struct {
	db *gorm.DB
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if err := r.db.WithContext(ctx).Create(newOrderRecord(o)).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var rec orderRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return rec.toEntity(), nil
}

// List lista pedidos aplicando búsqueda, filtro de entrega y orden por fecha.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	q := r.db.WithContext(ctx).Model(&orderRecord{})
	if term := strings.TrimSpace(filter.Search); term != "" {
		p := likePattern(term)
		q = q.Where(`(customer_name LIKE ? ESCAPE '\' OR phone LIKE ? ESCAPE '\' OR abaya_code LIKE ? ESCAPE '\')`, p, p, p)
	}
	if filter.Delivered != nil {
		q = q.Where("is_delivered = ?", *filter.Delivered)
	}
	var recs []orderRecord
	if err := q.Order(orderClause(filter.Ascending)).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	list := make([]*entity.Order, 0, len(recs))
	for i := range recs {
		list = append(list, recs[i].toEntity())
	}
	return list, nil
}

// Update reemplaza todos los campos editables del pedido.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	res := r.db.WithContext(ctx).Model(&orderRecord{}).
		Where("id = ?", o.ID).
		Select("*").Omit("id", "created_at").
		Updates(newOrderRecord(o))
	if res.Error != nil {
		return fmt.Errorf("update order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
