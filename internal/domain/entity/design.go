package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Design representa un modelo del catálogo de abayas.
// Code es único; los pedidos lo referencian por texto (Order.AbayaCode) sin llave foránea.
type Design struct {
	ID           string
	Code         string          // único, sin espacios al inicio/fin
	CostPrice    decimal.Decimal // costo de confección (solo visible para admin)
	SellingPrice decimal.Decimal // precio de venta sugerido
	Notes        string
	Image        string // base64 o URL, opaco para el backend
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
