package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
	"github.com/jhoicas/pg-hostel-api/pkg/jwt"
	"github.com/jhoicas/pg-hostel-api/pkg/logger"
)

// MinPasswordLength longitud mínima de contraseña para cuentas nuevas.
const MinPasswordLength = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, auto-registro de residentes y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	metrics  ports.Recorder
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, metrics ports.Recorder, log *logger.Logger) *AuthUseCase {
	if metrics == nil {
		metrics = ports.NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, metrics: metrics, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// NormalizeEmail unifica el email para búsquedas y unicidad.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword valida la longitud mínima y devuelve el hash bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", domain.ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Login verifica email/password y que el rol reclamado sea el de la cuenta.
// Genera el JWT y devuelve el usuario con el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrMissingField
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrRoleMismatch
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Cuentas sin contraseña (alta por Admin) no pueden entrar hasta que se les asigne una.
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Role != in.Role {
		uc.log.Warn().Str("user_id", user.ID).Str("claimed_role", in.Role).Msg("login con rol incorrecto")
		return nil, domain.ErrRoleMismatch
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{UserResponse: dto.FromUser(user), Token: token}, nil
}

// Register auto-registro de un residente. El rol siempre es Resident, la
// habitación queda pendiente y no se inicia sesión.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := access.Authorize(access.SelfService(), access.CapRegister); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, domain.ErrMissingField
	}
	if in.ConfirmPassword != in.Password {
		return nil, domain.ErrPasswordMismatch
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleResident,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		EntryDate:    entity.DateOnly(now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.metrics.ResidentRegistered("self")
	uc.log.Info().Str("user_id", user.ID).Msg("residente registrado")
	out := dto.FromUser(user)
	return &out, nil
}

// Me devuelve el perfil del actor autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, actor access.Actor) (*dto.UserResponse, error) {
	if err := access.Authorize(actor, access.CapViewProfile); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}

// BootstrapAdmin crea la cuenta Admin si el email no existe. Los admins no se
// auto-registran; esta es la única vía de alta. Devuelve true si la creó.
func (uc *AuthUseCase) BootstrapAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return false, domain.ErrMissingField
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if existing.Role != entity.RoleAdmin {
			return false, fmt.Errorf("bootstrap admin: %s pertenece a un residente: %w", email, domain.ErrEmailAlreadyExists)
		}
		return false, nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(name) == "" {
		name = email
	}
	now := uc.now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		EntryDate:    entity.DateOnly(now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	uc.log.Info().Str("email", email).Msg("cuenta admin creada")
	return true, nil
}
