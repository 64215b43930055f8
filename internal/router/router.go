package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/6ackpacks/who-is-bot/internal/handler"
	"github.com/6ackpacks/who-is-bot/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Judgment    *handler.JudgmentHandler
	Voter       *handler.VoterHandler
	Content     *handler.ContentHandler
	Leaderboard *handler.LeaderboardHandler
	Achievement *handler.AchievementHandler
	Stats       *handler.StatsHandler
	Health      *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health and metrics (before API group, no rate limiting)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// Per-route rate limiters
	judgmentLimiter := middleware.NewJudgmentRateLimiter()
	profileLimiter := middleware.NewProfileRateLimiter()
	leaderboardLimiter := middleware.NewLeaderboardRateLimiter()
	statsLimiter := middleware.NewStatsRateLimiter()
	linkLimiter := middleware.NewLinkRateLimiter()

	// API routes
	api := app.Group("/api")

	// Judgment routes
	api.Post("/judgments", h.Judgment.Submit, judgmentLimiter.Handler())

	// Voter routes
	api.Post("/voters/link", h.Voter.Link, linkLimiter.Handler())
	api.Get("/voters/:voterId", h.Voter.GetByID, profileLimiter.Handler())
	api.Get("/voters/:voterId/judgments", h.Judgment.History, profileLimiter.Handler())

	// Content routes
	api.Get("/content/:contentId/stats", h.Content.GetStats, profileLimiter.Handler())

	// Leaderboard routes
	api.Get("/leaderboard", h.Leaderboard.Get, leaderboardLimiter.Handler())

	// Achievement routes
	api.Get("/achievements/:voterId", h.Achievement.GetForVoter, profileLimiter.Handler())

	// Stats routes
	api.Get("/stats", h.Stats.GetStats, statsLimiter.Handler())
}
