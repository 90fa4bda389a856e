package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// IsValidRole informa si role es uno de los roles conocidos.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User representa una cuenta de acceso al sistema.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // admin, user
	CreatedAt    time.Time
}
