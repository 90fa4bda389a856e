package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/domain"
	"github.com/jhoicas/abaya-api/internal/domain/access"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var errCostForbidden = fmt.Errorf("%w: costPrice solo lo puede modificar un administrador", domain.ErrForbidden)

// DesignUseCase casos de uso CRUD para el catálogo de diseños.
// costPrice se filtra por rol: solo admin lo ve y lo escribe.
type DesignUseCase struct {
	repo repository.DesignRepository
	now  func() time.Time
}

// NewDesignUseCase construye el caso de uso. now nil → time.Now.
func NewDesignUseCase(repo repository.DesignRepository, now func() time.Time) *DesignUseCase {
	if now == nil {
		now = time.Now
	}
	return &DesignUseCase{repo: repo, now: now}
}

// Create crea un diseño. Para role user el costo queda en 0 y enviarlo es ErrForbidden.
func (uc *DesignUseCase) Create(ctx context.Context, role string, in dto.CreateDesignRequest) (*dto.DesignResponse, error) {
	cost := decimal.Zero
	if access.CanSeeCost(role) {
		if in.CostPrice == nil {
			return nil, fmt.Errorf("%w: campos obligatorios: costPrice", domain.ErrInvalidInput)
		}
		cost = *in.CostPrice
	} else if in.CostPrice != nil {
		return nil, errCostForbidden
	}
	if in.SellingPrice == nil {
		return nil, fmt.Errorf("%w: campos obligatorios: sellingPrice", domain.ErrInvalidInput)
	}

	now := uc.now().UTC()
	d := &entity.Design{
		ID:           uuid.New().String(),
		Code:         strings.TrimSpace(in.Code),
		CostPrice:    cost,
		SellingPrice: *in.SellingPrice,
		Notes:        in.Notes,
		Image:        in.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validateDesign(d); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, d.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, duplicateCode(d.Code)
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, duplicateCode(d.Code)
		}
		return nil, err
	}
	return ToDesignResponse(d, role), nil
}

// GetByID obtiene un diseño; ErrNotFound si no existe.
func (uc *DesignUseCase) GetByID(ctx context.Context, role, id string) (*dto.DesignResponse, error) {
	d, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDesignResponse(d, role), nil
}

// List lista diseños, por defecto los más recientes primero.
func (uc *DesignUseCase) List(ctx context.Context, role string, q dto.DesignListQuery) ([]dto.DesignResponse, error) {
	asc, err := parseSort(q.Sort)
	if err != nil {
		return nil, err
	}
	designs, err := uc.repo.List(ctx, repository.DesignFilter{Search: strings.TrimSpace(q.Q), Ascending: asc})
	if err != nil {
		return nil, err
	}
	out := make([]dto.DesignResponse, 0, len(designs))
	for _, d := range designs {
		out = append(out, *ToDesignResponse(d, role))
	}
	return out, nil
}

// Update aplica los campos presentes; un cambio de código vuelve a verificar unicidad.
func (uc *DesignUseCase) Update(ctx context.Context, role, id string, in dto.UpdateDesignRequest) (*dto.DesignResponse, error) {
	if in.CostPrice != nil && !access.CanSeeCost(role) {
		return nil, errCostForbidden
	}
	d, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Code != nil {
		code := strings.TrimSpace(*in.Code)
		if code != d.Code {
			existing, err := uc.repo.GetByCode(ctx, code)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != d.ID {
				return nil, duplicateCode(code)
			}
		}
		d.Code = code
	}
	if in.CostPrice != nil {
		d.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		d.SellingPrice = *in.SellingPrice
	}
	if in.Notes != nil {
		d.Notes = *in.Notes
	}
	if in.Image != nil {
		d.Image = *in.Image
	}
	if err := validateDesign(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, d); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, duplicateCode(d.Code)
		}
		return nil, err
	}
	return ToDesignResponse(d, role), nil
}

// Delete elimina un diseño. Los pedidos que usan el código no se modifican.
func (uc *DesignUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *DesignUseCase) find(ctx context.Context, id string) (*entity.Design, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, notFound("diseño", id)
	}
	return d, nil
}

func validateDesign(d *entity.Design) error {
	if err := requireText([2]string{"code", d.Code}, [2]string{"image", d.Image}); err != nil {
		return err
	}
	if err := requireNonNegative("costPrice", d.CostPrice); err != nil {
		return err
	}
	return requireNonNegative("sellingPrice", d.SellingPrice)
}

func duplicateCode(code string) error {
	return fmt.Errorf("%w: el código %q ya existe", domain.ErrDuplicate, code)
}

// ToDesignResponse convierte la entidad; costPrice se omite si el rol no puede verlo.
func ToDesignResponse(d *entity.Design, role string) *dto.DesignResponse {
	out := &dto.DesignResponse{
		ID:           d.ID,
		Code:         d.Code,
		SellingPrice: d.SellingPrice,
		Notes:        d.Notes,
		Image:        d.Image,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if access.CanSeeCost(role) {
		cost := d.CostPrice
		out.CostPrice = &cost
	}
	return out
}
