package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/service/security"
	"github.com/medimind/backend/internal/service/user"
	"github.com/medimind/backend/pkg/token"
)

type AuthHandler struct {
	users    user.Service
	sessions security.Service
	tokens   *token.Manager
}

func NewAuthHandler(users user.Service, sessions security.Service, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, tokens: tokens}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrMissingEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, security.ErrSessionNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.users.EnsureUser(c.Context(), user.EnsureRequest{
		Email:    body.Email,
		FullName: body.FullName,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	sessionID, err := h.sessions.RegisterSession(c.Context(), u.ID, c.IP(), c.Get("User-Agent"))
	if err != nil {
		return mapAuthError(c, err)
	}

	signed, claims, err := h.tokens.Issue(u.ID, &sessionID)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"token":      signed,
		"expires_at": claims.ExpiresAt,
		"user":       u,
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	userID, sessionID, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	if sessionID != nil {
		err := h.sessions.RevokeSession(c.Context(), userID, *sessionID)
		if err != nil && !errors.Is(err, security.ErrSessionNotFound) {
			return mapAuthError(c, err)
		}
	}

	return noContent(c)
}
