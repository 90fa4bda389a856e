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

var _ repository.DesignRepository = (*DesignRepo)(nil)

const designColumns = `id, code, cost_price, selling_price, notes, image, created_at, updated_at`

// DesignRepo implementación de DesignRepository sobre PostgreSQL.
type DesignRepo struct {
	q Querier
}

// NewDesignRepository construye el adaptador.
func NewDesignRepository(q Querier) *DesignRepo {
	return &DesignRepo{q: q}
}

// Create persiste un diseño; código repetido → domain.ErrDuplicate.
func (r *DesignRepo) Create(ctx context.Context, d *entity.Design) error {
	query := `INSERT INTO designs (` + designColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Code, d.CostPrice, d.SellingPrice, d.Notes, d.Image, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert design: %w", err)
	}
	return nil
}

// GetByID obtiene un diseño por ID.
func (r *DesignRepo) GetByID(ctx context.Context, id string) (*entity.Design, error) {
	return r.findOne(ctx, "id", id)
}

// GetByCode obtiene un diseño por código exacto.
func (r *DesignRepo) GetByCode(ctx context.Context, code string) (*entity.Design, error) {
	return r.findOne(ctx, "code", code)
}

func (r *DesignRepo) findOne(ctx context.Context, column, value string) (*entity.Design, error) {
	row := r.q.QueryRow(ctx, `SELECT `+designColumns+` FROM designs WHERE `+column+` = $1`, value)
	d, err := scanDesign(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get design by %s: %w", column, err)
	}
	return d, nil
}

// List lista diseños, opcionalmente filtrando por código.
func (r *DesignRepo) List(ctx context.Context, filter repository.DesignFilter) ([]*entity.Design, error) {
	query := `SELECT ` + designColumns + ` FROM designs`
	var args []any
	if term := strings.TrimSpace(filter.Search); term != "" {
		args = append(args, likePattern(term))
		query += " WHERE code ILIKE $1"
	}
	query += " ORDER BY created_at " + orderDirection(filter.Ascending) + ", id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Design, 0)
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan design: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update reemplaza los campos editables del diseño.
func (r *DesignRepo) Update(ctx context.Context, d *entity.Design) error {
	query := `
		UPDATE designs SET code = $2, cost_price = $3, selling_price = $4, notes = $5, image = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, d.ID, d.Code, d.CostPrice, d.SellingPrice, d.Notes, d.Image, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update design: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un diseño por ID. Los pedidos que lo referencian no se tocan.
func (r *DesignRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM designs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDesign(row pgx.Row) (*entity.Design, error) {
	var d entity.Design
	err := row.Scan(&d.ID, &d.Code, &d.CostPrice, &d.SellingPrice, &d.Notes, &d.Image, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
