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

var _ repository.DesignRepository = (*DesignRepo)(nil)

// DesignRepo implementación de DesignRepository con GORM.
type DesignRepo struct {
	db *gorm.DB
}

// Create persiste un diseño; código repetido → domain.ErrDuplicate.
func (r *DesignRepo) Create(ctx context.Context, d *entity.Design) error {
	if err := r.db.WithContext(ctx).Create(newDesignRecord(d)).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert design: %w", err)
	}
	return nil
}

// GetByID obtiene un diseño por ID.
func (r *DesignRepo) GetByID(ctx context.Context, id string) (*entity.Design, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByCode obtiene un diseño por código exacto.
func (r *DesignRepo) GetByCode(ctx context.Context, code string) (*entity.Design, error) {
	return r.first(ctx, "code = ?", code)
}

func (r *DesignRepo) first(ctx context.Context, cond string, arg any) (*entity.Design, error) {
	var rec designRecord
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get design: %w", err)
	}
	return rec.toEntity(), nil
}

// List lista diseños, opcionalmente filtrando por código.
func (r *DesignRepo) List(ctx context.Context, filter repository.DesignFilter) ([]*entity.Design, error) {
	q := r.db.WithContext(ctx).Model(&designRecord{})
	if term := strings.TrimSpace(filter.Search); term != "" {
		q = q.Where(`code LIKE ? ESCAPE '\'`, likePattern(term))
	}
	var recs []designRecord
	if err := q.Order(orderClause(filter.Ascending)).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	list := make([]*entity.Design, 0, len(recs))
	for i := range recs {
		list = append(list, recs[i].toEntity())
	}
	return list, nil
}

// Update reemplaza los campos editables del diseño.
func (r *DesignRepo) Update(ctx context.Context, d *entity.Design) error {
	res := r.db.WithContext(ctx).Model(&designRecord{}).
		Where("id = ?", d.ID).
		Select("*").Omit("id", "created_at").
		Updates(newDesignRecord(d))
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update design: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un diseño por ID. Los pedidos que lo referencian no se tocan.
func (r *DesignRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&designRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete design: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
