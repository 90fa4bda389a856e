package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateDesignRequest entrada para crear un diseño. CostPrice solo lo puede enviar admin.
type CreateDesignRequest struct {
	Code         string           `json:"code"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	Notes        string           `json:"notes"`
	Image        string           `json:"image"`
}

// UnmarshalJSON acepta costPrice y sellingPrice vacíos ("") como no enviados.
func (r *CreateDesignRequest) UnmarshalJSON(data []byte) error {
	type plain CreateDesignRequest
	data, err := blankAmountsToNull(data, "costPrice", "sellingPrice")
	if err != nil {
		return err
	}
	return json.Unmarshal(data, (*plain)(r))
}

// UpdateDesignRequest actualización parcial de un diseño.
type UpdateDesignRequest struct {
	Code         *string          `json:"code"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	Notes        *string          `json:"notes"`
	Image        *string          `json:"image"`
}

// UnmarshalJSON acepta costPrice y sellingPrice vacíos ("") como no enviados.
func (r *UpdateDesignRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateDesignRequest
	data, err := blankAmountsToNull(data, "costPrice", "sellingPrice")
	if err != nil {
		return err
	}
	return json.Unmarshal(data, (*plain)(r))
}

// DesignListQuery filtros de GET /api/designs.
type DesignListQuery struct {
	Q    string `query:"q"`
	Sort string `query:"sort"`
}

// DesignResponse salida de un diseño. CostPrice es nil (se omite) para roles sin permiso de costo.
type DesignResponse struct {
	ID           string           `json:"id"`
	Code         string           `json:"code"`
	CostPrice    *decimal.Decimal `json:"costPrice,omitempty"`
	SellingPrice decimal.Decimal  `json:"sellingPrice"`
	Notes        string           `json:"notes"`
	Image        string           `json:"image"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}
