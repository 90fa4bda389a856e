package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etiquetas de estado de un pedido.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusDelayed    = "Delayed"
	StatusDelivered  = "Delivered"
)

// Order representa un pedido de confección de un cliente.
// Status es una etiqueta cacheada que se sincroniza con IsDelivered al cambiar la entrega.
type Order struct {
	ID               string
	CustomerName     string
	Phone            string
	AbayaCode        string // referencia blanda a Design.Code
	Length           string // medidas libres, sin validación numérica
	Width            string
	SleeveLength     string
	DeliveryLocation string
	Price            decimal.Decimal
	Deposit          decimal.Decimal
	Notes            string
	IsDelivered      bool
	Status           string
	CreatedAt        time.Time
}
