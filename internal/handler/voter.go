package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/6ackpacks/who-is-bot/internal/middleware"
	"github.com/6ackpacks/who-is-bot/internal/model"
	"github.com/6ackpacks/who-is-bot/internal/repository"
	"github.com/6ackpacks/who-is-bot/internal/service"
	"github.com/6ackpacks/who-is-bot/pkg/hash"
)

type VoterHandler struct {
	svc *service.VoterService
}

func NewVoterHandler(svc *service.VoterService) *VoterHandler {
	return &VoterHandler{svc: svc}
}

// GetByID handles GET /api/voters/:voterId
func (h *VoterHandler) GetByID(c fiber.Ctx) error {
	voterID, errMsg := middleware.ValidateVoterID(c.Params("voterId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Lookup(c.Context(), voterID)
	if err != nil {
		if errors.Is(err, repository.ErrVoterNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Voter not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to lookup voter")
	}

	return c.JSON(resp)
}

// Link handles POST /api/voters/link. It attaches a registered uid to the
// guest account identified by the X-Guest-Token header, preserving its
// judgment history on the same row.
func (h *VoterHandler) Link(c fiber.Ctx) error {
	token, errMsg := middleware.ValidateGuestToken(c.Get("X-Guest-Token"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "MISSING_IDENTITY", errMsg)
	}

	var req model.LinkRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	uid, errMsg := middleware.ValidateUID(req.UID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.UID = uid
	req.Nickname = middleware.ValidateNickname(req.Nickname)
	if req.Nickname == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "nickname is required")
	}

	resp, err := h.svc.Link(c.Context(), hash.HashGuestToken(token), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUIDTaken):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "UID_TAKEN", "This uid is already linked to another account")
		case errors.Is(err, repository.ErrVoterNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No unlinked guest account for this token")
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to link account")
		}
	}

	return c.JSON(resp)
}
