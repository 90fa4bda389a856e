package dto

// RegisterRequest entrada para registro; role vacío → user.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserSummary datos públicos de una cuenta (sin password).
type UserSummary struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RegisterResponse salida de POST /api/register.
type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT; el cliente envía el token como Bearer.
type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	ID       string `json:"id"`
	Token    string `json:"token"`
}
