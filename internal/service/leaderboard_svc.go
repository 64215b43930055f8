package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/6ackpacks/who-is-bot/internal/model"
	"github.com/6ackpacks/who-is-bot/internal/repository"
)

const DefaultLeaderboardSize = 50

// LeaderboardService serves the accuracy leaderboard, cache-aside.
// Judgment commits invalidate the cached board, so the TTL only covers
// missed invalidations.
type LeaderboardService struct {
	repo  *repository.VoterRepo
	cache *CacheService
}

func NewLeaderboardService(repo *repository.VoterRepo, cache *CacheService) *LeaderboardService {
	return &LeaderboardService{repo: repo, cache: cache}
}

// Top returns the leaderboard entries, from cache when possible.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 || limit > DefaultLeaderboardSize {
		limit = DefaultLeaderboardSize
	}

	if s.cache != nil {
		if data, err := s.cache.GetLeaderboard(ctx); err == nil && data != nil {
			var entries []model.LeaderboardEntry
			if err := json.Unmarshal(data, &entries); err == nil {
				if len(entries) > limit {
					entries = entries[:limit]
				}
				return entries, nil
			}
		}
	}

	voters, err := s.repo.Leaderboard(ctx, DefaultLeaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(voters))
	for _, v := range voters {
		entries = append(entries, model.LeaderboardEntry{
			ID:             v.ID,
			Nickname:       v.Nickname,
			Avatar:         v.Avatar,
			Level:          v.Level,
			LevelName:      LevelName(v.Level),
			Accuracy:       round1(v.Accuracy),
			TotalJudged:    v.TotalJudged,
			MaxStreak:      v.MaxStreak,
			WeeklyAccuracy: round1(v.WeeklyAccuracy),
		})
	}

	if s.cache != nil {
		if err := s.cache.SetLeaderboard(ctx, entries); err != nil {
			log.Printf("cache: set leaderboard error: %v", err)
		}
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
