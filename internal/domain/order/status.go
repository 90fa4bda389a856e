// Package order contiene las reglas de estado de un pedido (servicio de dominio, sin I/O).
package order

import (
	"time"

	"github.com/jhoicas/abaya-api/internal/domain/entity"
)

const day = 24 * time.Hour

// Umbrales en días completos transcurridos desde CreatedAt.
const (
	newMaxDays        = 2
	inProgressMaxDays = 13
)

// ResolveStatus deriva la etiqueta visible del pedido a partir de la entrega y el tiempo transcurrido.
//
//	entregado         → Delivered
//	0..2 días         → New
//	3..13 días        → In Progress
//	14 días o más     → Delayed
//
// Un CreatedAt vacío se trata como recién creado.
func ResolveStatus(o *entity.Order, now time.Time) string {
	if o == nil {
		return entity.StatusNew
	}
	if o.IsDelivered {
		return entity.StatusDelivered
	}
	if o.CreatedAt.IsZero() {
		return entity.StatusNew
	}
	elapsed := ElapsedDays(o.CreatedAt, now)
	switch {
	case elapsed <= newMaxDays:
		return entity.StatusNew
	case elapsed <= inProgressMaxDays:
		return entity.StatusInProgress
	default:
		return entity.StatusDelayed
	}
}

// ElapsedDays devuelve floor((now - from) / 24h).
func ElapsedDays(from, now time.Time) int {
	d := now.Sub(from)
	days := int(d / day)
	if d < 0 && d%day != 0 {
		days--
	}
	return days
}

// ApplyDelivery cambia la bandera de entrega y sobrescribe el estado guardado:
// Delivered si se entregó, New si se revierte, sin mirar el tiempo transcurrido.
// Es la regla de escritura; puede diferir de ResolveStatus para pedidos viejos no entregados.
func ApplyDelivery(o *entity.Order, delivered bool) {
	o.IsDelivered = delivered
	if delivered {
		o.Status = entity.StatusDelivered
		return
	}
	o.Status = entity.StatusNew
}
