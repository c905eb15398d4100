package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medimind/backend/internal/service/security"
)

type SecurityHandler struct {
	svc security.Service
}

func NewSecurityHandler(svc security.Service) *SecurityHandler {
	return &SecurityHandler{svc: svc}
}

func mapSecurityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, security.ErrSessionNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /security/sessions
func (h *SecurityHandler) Sessions(c fiber.Ctx) error {
	userID, sessionID, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	current := uuid.Nil
	if sessionID != nil {
		current = *sessionID
	}

	sessions, err := h.svc.ListSessions(c.Context(), userID, current)
	if err != nil {
		return mapSecurityError(c, err)
	}

	return ok(c, sessions)
}

// DELETE /security/sessions/:id
func (h *SecurityHandler) RevokeSession(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	if err := h.svc.RevokeSession(c.Context(), userID, sessionID); err != nil {
		return mapSecurityError(c, err)
	}

	return noContent(c)
}

// POST /security/sessions/revoke-others
func (h *SecurityHandler) RevokeOthers(c fiber.Ctx) error {
	userID, sessionID, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	current := uuid.Nil
	if sessionID != nil {
		current = *sessionID
	}

	revoked, err := h.svc.RevokeOtherSessions(c.Context(), userID, current)
	if err != nil {
		return mapSecurityError(c, err)
	}

	return ok(c, fiber.Map{"revoked": revoked})
}

// GET /security/activity
func (h *SecurityHandler) Activity(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.svc.ListActivity(c.Context(), userID, limit)
	if err != nil {
		return mapSecurityError(c, err)
	}

	return ok(c, entries)
}
