package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medimind/backend/internal/service/conversation"
)

type ConversationHandler struct {
	svc conversation.Service
}

func NewConversationHandler(svc conversation.Service) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

func mapConversationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, conversation.ErrConversationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, conversation.ErrNotParticipant):
		return forbidden(c)
	case errors.Is(err, conversation.ErrEmptyMessage):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /conversations
func (h *ConversationHandler) List(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	convs, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return mapConversationError(c, err)
	}

	return ok(c, convs)
}

// GET /conversations/:id/messages
func (h *ConversationHandler) Messages(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	msgs, err := h.svc.ListMessages(c.Context(), userID, convID)
	if err != nil {
		return mapConversationError(c, err)
	}

	return ok(c, msgs)
}

// POST /conversations/:id/messages
func (h *ConversationHandler) Send(c fiber.Ctx) error {
	userID, _, authed := currentUser(c)
	if !authed {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.SendMessage(c.Context(), userID, conversation.SendMessageRequest{
		ConversationID: convID,
		Content:        body.Content,
	})
	if err != nil {
		return mapConversationError(c, err)
	}

	return created(c, msg)
}
