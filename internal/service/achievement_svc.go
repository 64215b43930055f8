package service

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/6ackpacks/who-is-bot/internal/model"
)

// AchievementService unlocks achievements from a voter's updated
// aggregates. It runs after a successful judgment commit and must be
// idempotent: the same totals can trigger it more than once (retries,
// concurrent submissions), so unlocks insert with ON CONFLICT DO NOTHING.
type AchievementService struct {
	pool *pgxpool.Pool
}

func NewAchievementService(pool *pgxpool.Pool) *AchievementService {
	return &AchievementService{pool: pool}
}

// MeetsRequirement reports whether the voter's aggregates satisfy an
// achievement requirement. Streak achievements key on the max streak
// ever reached, not the current one.
func MeetsRequirement(v *model.Voter, achievementType string, requirement float64) bool {
	switch achievementType {
	case model.AchievementJudgmentCount:
		return float64(v.TotalJudged) >= requirement
	case model.AchievementAccuracy:
		return v.Accuracy >= requirement
	case model.AchievementStreak:
		return float64(v.MaxStreak) >= requirement
	default:
		return false
	}
}

// CheckAndUnlock records every achievement the voter now qualifies for
// and returns the ones newly unlocked by this call.
func (s *AchievementService) CheckAndUnlock(ctx context.Context, v *model.Voter) ([]model.Achievement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, key, name, description, icon, type, requirement, points
		FROM achievements`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []model.Achievement
	for rows.Next() {
		var a model.Achievement
		if err := rows.Scan(&a.ID, &a.Key, &a.Name, &a.Description, &a.Icon, &a.Type, &a.Requirement, &a.Points); err != nil {
			return nil, err
		}
		if MeetsRequirement(v, a.Type, a.Requirement) {
			candidates = append(candidates, a)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var unlocked []model.Achievement
	for _, a := range candidates {
		tag, err := s.pool.Exec(ctx, `
			INSERT INTO voter_achievements (voter_id, achievement_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, v.ID, a.ID)
		if err != nil {
			return unlocked, err
		}
		if tag.RowsAffected() > 0 {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked, nil
}

// ListForVoter returns every achievement definition with the voter's
// unlock state.
func (s *AchievementService) ListForVoter(ctx context.Context, voterID string) ([]model.VoterAchievement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT a.id, a.key, a.name, a.description, a.icon, a.type, a.requirement, a.points,
		       va.unlocked_at
		FROM achievements a
		LEFT JOIN voter_achievements va
		       ON va.achievement_id = a.id AND va.voter_id = $1
		ORDER BY a.points ASC`, voterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.VoterAchievement
	for rows.Next() {
		var va model.VoterAchievement
		if err := rows.Scan(&va.ID, &va.Key, &va.Name, &va.Description, &va.Icon, &va.Type, &va.Requirement, &va.Points, &va.UnlockedAt); err != nil {
			return nil, err
		}
		va.Unlocked = va.UnlockedAt != nil
		result = append(result, va)
	}
	return result, rows.Err()
}
