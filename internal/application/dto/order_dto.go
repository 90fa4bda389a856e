package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear un pedido. Status no se acepta del cliente.
type CreateOrderRequest struct {
	CustomerName     string           `json:"customerName"`
	Phone            string           `json:"phone"`
	AbayaCode        string           `json:"abayaCode"`
	Length           string           `json:"length"`
	Width            string           `json:"width"`
	SleeveLength     string           `json:"sleeveLength"`
	DeliveryLocation string           `json:"deliveryLocation"`
	Price            *decimal.Decimal `json:"price"`
	Deposit          *decimal.Decimal `json:"deposit"`
	Notes            string           `json:"notes"`
	IsDelivered      bool             `json:"isDelivered"`
	CreatedAt        *time.Time       `json:"createdAt"` // opcional; por defecto ahora
}

// UnmarshalJSON acepta price y deposit vacíos ("") como no enviados.
func (r *CreateOrderRequest) UnmarshalJSON(data []byte) error {
	type plain CreateOrderRequest
	data, err := blankAmountsToNull(data, "price", "deposit")
	if err != nil {
		return err
	}
	return json.Unmarshal(data, (*plain)(r))
}

// UpdateOrderRequest actualización parcial: solo se aplican los campos presentes.
type UpdateOrderRequest struct {
	CustomerName     *string          `json:"customerName"`
	Phone            *string          `json:"phone"`
	AbayaCode        *string          `json:"abayaCode"`
	Length           *string          `json:"length"`
	Width            *string          `json:"width"`
	SleeveLength     *string          `json:"sleeveLength"`
	DeliveryLocation *string          `json:"deliveryLocation"`
	Price            *decimal.Decimal `json:"price"`
	Deposit          *decimal.Decimal `json:"deposit"`
	Notes            *string          `json:"notes"`
	IsDelivered      *bool            `json:"isDelivered"`
}

// UnmarshalJSON acepta price y deposit vacíos ("") como no enviados.
func (r *UpdateOrderRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateOrderRequest
	data, err := blankAmountsToNull(data, "price", "deposit")
	if err != nil {
		return err
	}
	return json.Unmarshal(data, (*plain)(r))
}

// OrderListQuery filtros de GET /api/orders.
type OrderListQuery struct {
	Q         string `query:"q"`
	Delivered string `query:"delivered"` // "", "true", "false"
	Sort      string `query:"sort"`      // createdAt | -createdAt
}

// OrderResponse salida de un pedido. Status es el valor guardado; DisplayStatus se calcula al leer.
type OrderResponse struct {
	ID               string          `json:"id"`
	CustomerName     string          `json:"customerName"`
	Phone            string          `json:"phone"`
	AbayaCode        string          `json:"abayaCode"`
	Length           string          `json:"length"`
	Width            string          `json:"width"`
	SleeveLength     string          `json:"sleeveLength"`
	DeliveryLocation string          `json:"deliveryLocation"`
	Price            decimal.Decimal `json:"price"`
	Deposit          decimal.Decimal `json:"deposit"`
	Notes            string          `json:"notes"`
	IsDelivered      bool            `json:"isDelivered"`
	Status           string          `json:"status"`
	DisplayStatus    string          `json:"displayStatus"`
	CreatedAt        time.Time       `json:"createdAt"`
}
