package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/application/validation"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
	"github.com/jhoicas/lager-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
// ExpMinutes <= 0 emite tokens sin expiración.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Recorder recibe los eventos de auth que interesan a las métricas.
type Recorder interface {
	UserRegistered()
	LoginFailed()
}

type nopRecorder struct{}

func (nopRecorder) UserRegistered() {}
func (nopRecorder) LoginFailed()    {}

// AuthUseCase casos de uso de autenticación: registro, login y verificación de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	jwtCfg   JWTConfig
	rec      Recorder

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth. rec puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, hasher PasswordHasher, jwtCfg JWTConfig, rec Recorder) *AuthUseCase {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, jwtCfg: jwtCfg, rec: rec}
}

// NormalizeEmail quita espacios alrededor y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register crea un usuario con el email normalizado y el rol por defecto "staff".
// La comprobación previa de duplicados es solo un atajo: la restricción UNIQUE del
// almacén decide, y su violación llega como domain.ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Email = NormalizeEmail(in.Email)
	in.Role = strings.TrimSpace(in.Role)
	if in.Role == "" {
		in.Role = entity.RoleStaff
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := uc.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.rec.UserRegistered()
	return &dto.UserResponse{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// Login verifica email/password y emite un token de sesión.
// Email desconocido y password incorrecta devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.compareDummy(ctx, in.Password)
		uc.rec.LoginFailed()
		return nil, domain.ErrUnauthorized
	}
	ok, err := uc.hasher.Compare(ctx, user.PasswordHash, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		uc.rec.LoginFailed()
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{Token: token}, nil
}

// compareDummy hace el mismo trabajo de bcrypt que un login con email conocido, así el
// tiempo de respuesta no revela si el email está registrado. El resultado se descarta.
func (uc *AuthUseCase) compareDummy(ctx context.Context, password string) {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = uc.hasher.Hash(context.WithoutCancel(ctx), "lager-api/unknown-user")
	})
	if uc.dummyHash != "" {
		_, _ = uc.hasher.Compare(ctx, uc.dummyHash, password)
	}
}

// VerifySession valida el token y devuelve la identidad que transporta.
// Cualquier fallo (vacío, malformado, firma ajena) es domain.ErrUnauthenticated.
func (uc *AuthUseCase) VerifySession(_ context.Context, token string) (*dto.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.UserID <= 0 {
		return nil, domain.ErrUnauthenticated
	}
	return &dto.Identity{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
