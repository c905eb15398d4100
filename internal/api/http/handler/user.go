package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medimind/backend/internal/service/prescription"
	"github.com/medimind/backend/internal/service/user"
)

type UserHandler struct {
	svc           user.Service
	prescriptions prescription.Service
}

func NewUserHandler(svc user.Service, prescriptions prescription.Service) *UserHandler {
	return &UserHandler{svc: svc, prescriptions: prescriptions}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidPhone),
		errors.Is(err, user.ErrMissingEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrRoleAlreadySet):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	u, err := h.svc.Me(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// POST /users/me/role
func (h *UserHandler) SelectRole(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.SelectRole(c.Context(), userID, body.Role)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /users/me/profile
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		FullName    *string `json:"full_name"`
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"`
		Specialty   *string `json:"specialty"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), userID, user.UpdateProfileRequest{
		FullName:    body.FullName,
		Phone:       body.Phone,
		DateOfBirth: body.DateOfBirth,
		Specialty:   body.Specialty,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// GET /users/me/prescriptions
func (h *UserHandler) MyPrescriptions(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	prescs, err := h.prescriptions.ListForPatient(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, prescs)
}
