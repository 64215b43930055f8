package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/6ackpacks/who-is-bot/internal/model"
	"github.com/6ackpacks/who-is-bot/internal/repository"
)

type VoterService struct {
	repo  *repository.VoterRepo
	cache *CacheService
}

func NewVoterService(repo *repository.VoterRepo, cache *CacheService) *VoterService {
	return &VoterService{repo: repo, cache: cache}
}

// Lookup returns the profile response for a voter, cache-aside.
func (s *VoterService) Lookup(ctx context.Context, voterID string) (*model.VoterResponse, error) {
	if s.cache != nil {
		if data, err := s.cache.GetVoter(ctx, voterID); err == nil && data != nil {
			var resp model.VoterResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	v, err := s.repo.FindByID(ctx, voterID)
	if err != nil {
		return nil, err
	}
	resp := voterResponse(v)

	if s.cache != nil {
		if err := s.cache.SetVoter(ctx, voterID, resp); err != nil {
			log.Printf("cache: set voter error: %v", err)
		}
	}
	return resp, nil
}

// Link attaches a registered identity to an existing guest account; the
// voter row (and with it every judgment and counter) stays the same.
func (s *VoterService) Link(ctx context.Context, guestHash string, req model.LinkRequest) (*model.VoterResponse, error) {
	v, err := s.repo.Link(ctx, guestHash, req.UID, req.Nickname, req.Avatar)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateVoter(ctx, v.ID); err != nil {
			log.Printf("cache: invalidate voter error: %v", err)
		}
	}
	return voterResponse(v), nil
}

// GetStats returns aggregate platform statistics.
func (s *VoterService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	return s.repo.GetStats(ctx)
}

func voterResponse(v *model.Voter) *model.VoterResponse {
	return &model.VoterResponse{
		ID:             v.ID,
		Nickname:       v.Nickname,
		Avatar:         v.Avatar,
		Level:          v.Level,
		LevelName:      LevelName(v.Level),
		Accuracy:       round1(v.Accuracy),
		TotalJudged:    v.TotalJudged,
		Streak:         v.Streak,
		MaxStreak:      v.MaxStreak,
		WeeklyJudged:   v.WeeklyJudged,
		WeeklyAccuracy: round1(v.WeeklyAccuracy),
		IsGuest:        v.UID == nil,
	}
}
