package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/6ackpacks/who-is-bot/internal/middleware"
	"github.com/6ackpacks/who-is-bot/internal/model"
	"github.com/6ackpacks/who-is-bot/internal/service"
)

type AchievementHandler struct {
	svc *service.AchievementService
}

func NewAchievementHandler(svc *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{svc: svc}
}

// GetForVoter handles GET /api/achievements/:voterId
func (h *AchievementHandler) GetForVoter(c fiber.Ctx) error {
	voterID, errMsg := middleware.ValidateVoterID(c.Params("voterId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	achievements, err := h.svc.ListForVoter(c.Context(), voterID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch achievements")
	}
	if achievements == nil {
		achievements = []model.VoterAchievement{}
	}

	return c.JSON(achievements)
}
