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

type JudgmentHandler struct {
	svc    *service.JudgmentService
	ipSalt string
}

func NewJudgmentHandler(svc *service.JudgmentService, ipSalt string) *JudgmentHandler {
	return &JudgmentHandler{svc: svc, ipSalt: ipSalt}
}

// identityFromHeaders builds the caller identity from the X-Voter-ID or
// X-Guest-Token header. Registered identity wins when both are present.
func identityFromHeaders(c fiber.Ctx) (service.Identity, string) {
	return resolveIdentity(c.Get("X-Voter-ID"), c.Get("X-Guest-Token"))
}

// resolveIdentity validates the raw header values. A present-but-invalid
// guest token keeps its specific validation message so clients can tell
// a rejected token apart from a missing header.
func resolveIdentity(voterHeader, guestHeader string) (service.Identity, string) {
	if voterHeader != "" {
		voterID, errMsg := middleware.ValidateVoterID(voterHeader)
		if errMsg != "" {
			return service.Identity{}, errMsg
		}
		return service.Identity{VoterID: voterID}, ""
	}

	if guestHeader == "" {
		return service.Identity{}, "X-Voter-ID or X-Guest-Token header is required"
	}
	token, errMsg := middleware.ValidateGuestToken(guestHeader)
	if errMsg != "" {
		return service.Identity{}, errMsg
	}
	return service.Identity{GuestHash: hash.HashGuestToken(token)}, ""
}

// Submit handles POST /api/judgments
func (h *JudgmentHandler) Submit(c fiber.Ctx) error {
	var req model.SubmitJudgmentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	contentID, errMsg := middleware.ValidateContentID(req.ContentID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.ContentID = contentID

	choice, errMsg := middleware.ValidateChoice(req.Choice)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Choice = choice

	identity, errMsg := identityFromHeaders(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "MISSING_IDENTITY", errMsg)
	}
	identity.IPHash = hash.HashIP(c.IP(), h.ipSalt)

	resp, err := h.svc.Submit(c.Context(), identity, req)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownVoter) {
			// Upstream auth leaked an id that references nothing. Worth noticing.
			middleware.Logger.Error().Str("voterId", identity.VoterID).Msg("authenticated voter id has no account row")
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "AUTH_MISMATCH", "Voter account not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit judgment")
	}

	if resp.Accepted {
		judgmentsTotalInc(req.Choice, *resp.Correct)
	}
	return c.JSON(resp)
}

// History handles GET /api/voters/:voterId/judgments
func (h *JudgmentHandler) History(c fiber.Ctx) error {
	voterID, errMsg := middleware.ValidateVoterID(c.Params("voterId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	limit := fiber.Query[int](c, "limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	entries, err := h.svc.History(c.Context(), voterID, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch judgment history")
	}
	if entries == nil {
		entries = []model.JudgmentHistoryEntry{}
	}

	return c.JSON(entries)
}
