package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/repo"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/pkg/token"
)

// RequireRole gates a route to accounts with the given role. Runs
// after AuthRequired.
func RequireRole(db *repo.Client, role entuser.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims := token.ClaimsFromFiber(c)
		if claims == nil {
			return unauthorized(c, "missing credentials")
		}

		u, err := db.User.Query().
			Where(entuser.ID(claims.UserID), entuser.DeletedAtIsNil()).
			Only(c.Context())
		if err != nil {
			return unauthorized(c, "unknown account")
		}
		if u.Role == nil || *u.Role != role {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"error": "forbidden"})
		}

		return c.Next()
	}
}
