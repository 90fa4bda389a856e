package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/domain"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"github.com/jhoicas/abaya-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

var (
	// errBadCredentials mismo mensaje para usuario inexistente y contraseña incorrecta.
	errBadCredentials = fmt.Errorf("%w: usuario o contraseña inválidos", domain.ErrUnauthorized)
	errAdminRequired  = fmt.Errorf("%w: solo un administrador puede crear cuentas admin", domain.ErrForbidden)
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	denylist TokenDenylist
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, denylist TokenDenylist, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, denylist: denylist, jwtCfg: jwtCfg}
}

// HashPassword genera el hash bcrypt de una contraseña en texto plano.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register crea una cuenta. Role vacío → user. callerRole es el rol del token de quien registra
// (vacío si es anónimo); una cuenta admin solo la puede crear otro admin.
// Devuelve ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, callerRole string, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son obligatorios", domain.ErrInvalidInput)
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.IsValidRole(role) {
		return nil, fmt.Errorf("%w: rol %q no válido", domain.ErrInvalidInput, role)
	}
	if role == entity.RoleAdmin && callerRole != entity.RoleAdmin {
		return nil, errAdminRequired
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el usuario ya existe", domain.ErrDuplicate)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: el usuario ya existe", domain.ErrDuplicate)
		}
		return nil, err
	}
	return &dto.RegisterResponse{
		Message: "User created",
		User:    dto.UserSummary{Username: user.Username, Role: user.Role},
	}, nil
}

// Login verifica credenciales y emite un JWT con el rol del usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, errBadCredentials
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, errBadCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Username: user.Username,
		Role:     user.Role,
		ID:       user.ID,
		Token:    token,
	}, nil
}

// Logout revoca el token hasta su expiración natural.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return fmt.Errorf("%w: token sin identificador", domain.ErrUnauthorized)
	}
	return uc.denylist.Revoke(ctx, claims.ID, claims.TTL(time.Now()))
}

// IsRevoked consulta la lista de revocación (lo usa el middleware de auth).
func (uc *AuthUseCase) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return uc.denylist.IsRevoked(ctx, jti)
}
