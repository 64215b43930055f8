package handler

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/6ackpacks/who-is-bot/internal/middleware"
	"github.com/6ackpacks/who-is-bot/internal/model"
	"github.com/6ackpacks/who-is-bot/internal/repository"
	"github.com/6ackpacks/who-is-bot/internal/service"
)

type ContentHandler struct {
	repo  *repository.ContentRepo
	cache *service.CacheService
}

func NewContentHandler(repo *repository.ContentRepo, cache *service.CacheService) *ContentHandler {
	return &ContentHandler{repo: repo, cache: cache}
}

// GetStats handles GET /api/content/:contentId/stats
func (h *ContentHandler) GetStats(c fiber.Ctx) error {
	contentID, errMsg := middleware.ValidateContentID(c.Params("contentId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if h.cache != nil {
		if data, err := h.cache.GetContent(c.Context(), contentID); err == nil && data != nil {
			var stats model.ContentStats
			if err := json.Unmarshal(data, &stats); err == nil {
				cacheHitInc()
				return c.JSON(stats)
			}
		}
		cacheMissInc()
	}

	counters, err := h.repo.GetCounters(c.Context(), contentID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Content not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch content stats")
	}

	stats := service.BuildContentStats(*counters)
	if h.cache != nil {
		if err := h.cache.SetContent(c.Context(), contentID, stats); err != nil {
			log.Printf("cache: set content error: %v", err)
		}
	}

	return c.JSON(stats)
}
