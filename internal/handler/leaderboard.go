package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/6ackpacks/who-is-bot/internal/middleware"
	"github.com/6ackpacks/who-is-bot/internal/service"
)

type LeaderboardHandler struct {
	svc *service.LeaderboardService
}

func NewLeaderboardHandler(svc *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// Get handles GET /api/leaderboard
func (h *LeaderboardHandler) Get(c fiber.Ctx) error {
	limit := fiber.Query[int](c, "limit", service.DefaultLeaderboardSize)

	entries, err := h.svc.Top(c.Context(), limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch leaderboard")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    entries,
	})
}
