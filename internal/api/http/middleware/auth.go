package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/service/security"
	"github.com/medimind/backend/pkg/reqctx"
	"github.com/medimind/backend/pkg/token"
)

// AuthRequired verifies the bearer token and checks the session is
// still live in the registry, so a revoked session dies before the
// token does.
func AuthRequired(tokens *token.Manager, sessions security.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "missing authorization header")
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return unauthorized(c, "malformed authorization header")
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		if claims.SessionID != nil {
			active, err := sessions.SessionActive(c.Context(), claims.UserID, *claims.SessionID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).
					JSON(fiber.Map{"error": "session check failed"})
			}
			if !active {
				return unauthorized(c, "session revoked")
			}
			sessions.TouchSession(c.Context(), claims.UserID, *claims.SessionID)
		}

		c.Locals(token.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))

		return c.Next()
	}
}

func unauthorized(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
