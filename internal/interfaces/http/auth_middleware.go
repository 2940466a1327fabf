package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/domain"
)

// LocalIdentity clave de c.Locals donde queda la identidad autenticada.
const LocalIdentity = "identity"

type identityKey struct{}

// SessionVerifier valida un token de sesión. Lo implementa *auth.AuthUseCase.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*dto.Identity, error)
}

// AuthMiddleware valida el Bearer Token y deja la identidad en c.Locals y en el
// contexto de la petición. Si el token falta o no es válido responde 401 y no
// llama al handler protegido.
func AuthMiddleware(verifier SessionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		identity, err := verifier.VerifySession(c.UserContext(), tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
			}
			return respondError(c, err, "")
		}
		c.Locals(LocalIdentity, identity)
		c.SetUserContext(context.WithValue(c.UserContext(), identityKey{}, identity))
		return c.Next()
	}
}

// GetIdentity devuelve la identidad de la petición (después del middleware de auth) o nil.
func GetIdentity(c *fiber.Ctx) *dto.Identity {
	identity, _ := c.Locals(LocalIdentity).(*dto.Identity)
	return identity
}

// IdentityFromContext devuelve la identidad guardada en el contexto por AuthMiddleware.
func IdentityFromContext(ctx context.Context) (*dto.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*dto.Identity)
	return identity, ok && identity != nil
}
