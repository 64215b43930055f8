package model

import "time"

// Achievement requirement types.
const (
	AchievementJudgmentCount = "judgment_count"
	AchievementAccuracy      = "accuracy"
	AchievementStreak        = "streak"
)

// Achievement is one unlockable achievement definition.
type Achievement struct {
	ID          int     `json:"id"`
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Type        string  `json:"type"`
	Requirement float64 `json:"requirementValue"`
	Points      int     `json:"points"`
}

// VoterAchievement is an achievement with the voter's unlock state.
type VoterAchievement struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}
