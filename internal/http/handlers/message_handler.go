package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stridewear/internal/apperr"
	"stridewear/internal/domain"
	applog "stridewear/internal/log"
	"stridewear/internal/services"
	"stridewear/internal/validate"
)

type MessageHandler struct {
	Inbox *services.InboxService
}

type messagePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /api/messages (public contact form)
func (h *MessageHandler) Create(c *fiber.Ctx) error {
	var p messagePayload
	if err := c.BodyParser(&p); err != nil {
		return fail(c, "messages.create.fail", apperr.Invalid("invalid request body"))
	}
	name, okName := validate.Required(p.Name)
	if !okName {
		return fail(c, "messages.create.fail", apperr.Invalid("name is required"))
	}
	email, okEmail := validate.Email(p.Email)
	if !okEmail {
		return fail(c, "messages.create.fail", apperr.Invalid("enter a valid email"))
	}
	body, okBody := validate.Required(p.Message)
	if !okBody {
		return fail(c, "messages.create.fail", apperr.Invalid("message is required"))
	}
	m, err := h.Inbox.Submit(c.UserContext(), domain.Message{Name: name, Email: email, Message: body})
	if err != nil {
		return fail(c, "messages.create.fail", err)
	}
	return created(c, m)
}

// GET /api/messages
func (h *MessageHandler) List(c *fiber.Ctx) error {
	msgs, err := h.Inbox.List(c.UserContext())
	if err != nil {
		return fail(c, "messages.list.fail", err)
	}
	return c.JSON(msgs)
}

// PUT /api/messages/:id/read
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	id, okID := validate.ObjectID(c.Params("id"))
	if !okID {
		return fail(c, "messages.read.fail", apperr.InvalidIdentifier())
	}
	if err := h.Inbox.MarkRead(c.UserContext(), id); err != nil {
		return fail(c, "messages.read.fail", err)
	}
	applog.Audit(c, "messages.read", map[string]any{"message_id": id.Hex()})
	return ok(c, "Message marked as read")
}

// DELETE /api/messages/:id
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ObjectID(c.Params("id"))
	if !okID {
		return fail(c, "messages.delete.fail", apperr.InvalidIdentifier())
	}
	if err := h.Inbox.Delete(c.UserContext(), id); err != nil {
		return fail(c, "messages.delete.fail", err)
	}
	applog.Audit(c, "messages.delete", map[string]any{"message_id": id.Hex()})
	return ok(c, "Message deleted successfully")
}
