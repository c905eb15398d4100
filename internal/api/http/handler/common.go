package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medimind/backend/pkg/token"
)

// currentUser returns the authenticated user's id and session.
func currentUser(c fiber.Ctx) (uuid.UUID, *uuid.UUID, bool) {
	claims := token.ClaimsFromFiber(c)
	if claims == nil {
		return uuid.Nil, nil, false
	}
	return claims.UserID, claims.SessionID, true
}
