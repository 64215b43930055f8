package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/6ackpacks/who-is-bot/internal/config"
	"github.com/6ackpacks/who-is-bot/internal/db"
	"github.com/6ackpacks/who-is-bot/internal/handler"
	"github.com/6ackpacks/who-is-bot/internal/middleware"
	"github.com/6ackpacks/who-is-bot/internal/repository"
	"github.com/6ackpacks/who-is-bot/internal/router"
	"github.com/6ackpacks/who-is-bot/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "who-is-bot-api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.CreateSchema(ctx, pool); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	voterRepo := repository.NewVoterRepo(pool)
	contentRepo := repository.NewContentRepo(pool)
	judgmentRepo := repository.NewJudgmentRepo(pool)

	levelSvc := service.NewLevelService()
	achievementSvc := service.NewAchievementService(pool)
	judgmentSvc := service.NewJudgmentService(pool, voterRepo, contentRepo, judgmentRepo, levelSvc, cache, achievementSvc)
	voterSvc := service.NewVoterService(voterRepo, cache)
	leaderboardSvc := service.NewLeaderboardService(voterRepo, cache)

	handler.InitMetrics(pool)

	h := &router.Handlers{
		Judgment:    handler.NewJudgmentHandler(judgmentSvc, cfg.IPSalt),
		Voter:       handler.NewVoterHandler(voterSvc),
		Content:     handler.NewContentHandler(contentRepo, cache),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardSvc),
		Achievement: handler.NewAchievementHandler(achievementSvc),
		Stats:       handler.NewStatsHandler(voterSvc),
		Health:      handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "WhoIsBot API",
		ServerHeader: "WhoIsBot",
	})
	router.Setup(app, h, cfg.CORSOrigins)

	resetWorker := service.NewResetWorker(voterRepo, cache)
	go resetWorker.Start(ctx)

	go func() {
		<-ctx.Done()
		log.Println("shutdown signal received, draining connections")
		resetWorker.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("WhoIsBot backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
