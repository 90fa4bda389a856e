// Package access define qué rol puede ejecutar cada operación del sistema.
// Es la única fuente de verdad del control de acceso; la capa HTTP la consulta en cada ruta.
package access

import "github.com/jhoicas/abaya-api/internal/domain/entity"

// Operation identifica una operación protegida.
type Operation string

const (
	OpListOrders    Operation = "orders:list"
	OpCreateOrder   Operation = "orders:create"
	OpUpdateOrder   Operation = "orders:update"
	OpDeleteOrder   Operation = "orders:delete"
	OpListDesigns   Operation = "designs:list"
	OpCreateDesign  Operation = "designs:create"
	OpUpdateDesign  Operation = "designs:update"
	OpDeleteDesign  Operation = "designs:delete"
	OpViewCost      Operation = "designs:cost"
	OpListCustomers Operation = "customers:list"
	OpViewDashboard Operation = "dashboard:view"
	OpViewSales     Operation = "sales:view"
	OpRegisterUser  Operation = "users:register"
)

var (
	everyone  = []string{entity.RoleAdmin, entity.RoleUser}
	adminOnly = []string{entity.RoleAdmin}
)

// policy lista blanca de roles por operación. Lo que no aparece aquí se deniega.
var policy = map[Operation][]string{
	OpListOrders:    everyone,
	OpCreateOrder:   everyone,
	OpUpdateOrder:   everyone,
	OpDeleteOrder:   adminOnly,
	OpListDesigns:   everyone,
	OpCreateDesign:  everyone,
	OpUpdateDesign:  everyone,
	OpDeleteDesign:  adminOnly,
	OpViewCost:      adminOnly,
	OpListCustomers: everyone,
	OpViewDashboard: adminOnly,
	OpViewSales:     adminOnly,
	OpRegisterUser:  adminOnly,
}

// AllowedRoles devuelve la lista blanca de la operación (nil si no existe).
func AllowedRoles(op Operation) []string {
	roles, ok := policy[op]
	if !ok {
		return nil
	}
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}

// Can informa si el rol puede ejecutar la operación.
func Can(role string, op Operation) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}

// CanSeeCost costPrice solo es visible y editable para admin.
func CanSeeCost(role string) bool {
	return Can(role, OpViewCost)
}
