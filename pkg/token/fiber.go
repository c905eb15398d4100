package token

import "github.com/gofiber/fiber/v3"

// CtxKeyClaims is the fiber locals key the auth middleware stores
// verified claims under.
const CtxKeyClaims = "auth.claims"

// ClaimsFromFiber returns the verified claims attached to the request,
// or nil when the request is unauthenticated.
func ClaimsFromFiber(c fiber.Ctx) *Claims {
	claims, ok := c.Locals(CtxKeyClaims).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
