package service

import (
	"testing"

	"github.com/6ackpacks/who-is-bot/internal/model"
)

func TestMeetsRequirement(t *testing.T) {
	tests := []struct {
		name            string
		voter           model.Voter
		achievementType string
		requirement     float64
		want            bool
	}{
		{"count met exactly", model.Voter{TotalJudged: 10}, model.AchievementJudgmentCount, 10, true},
		{"count short by one", model.Voter{TotalJudged: 9}, model.AchievementJudgmentCount, 10, false},
		{"accuracy met", model.Voter{Accuracy: 85.5}, model.AchievementAccuracy, 80, true},
		{"accuracy short", model.Voter{Accuracy: 79.9}, model.AchievementAccuracy, 80, false},
		{"streak uses max not current", model.Voter{Streak: 0, MaxStreak: 12}, model.AchievementStreak, 10, true},
		{"current streak alone not enough", model.Voter{Streak: 10, MaxStreak: 10}, model.AchievementStreak, 15, false},
		{"unknown type never matches", model.Voter{TotalJudged: 1000}, "mystery", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeetsRequirement(&tt.voter, tt.achievementType, tt.requirement)
			if got != tt.want {
				t.Errorf("MeetsRequirement(%s, %.0f) = %v, want %v", tt.achievementType, tt.requirement, got, tt.want)
			}
		})
	}
}

func TestMeetsRequirement_StaysTrueOnceEarned(t *testing.T) {
	// A streak achievement must keep qualifying after the streak breaks,
	// since unlock checks can re-run on later submissions.
	v := &model.Voter{}
	for i := 0; i < 10; i++ {
		ApplyJudgmentStats(v, true)
	}
	if !MeetsRequirement(v, model.AchievementStreak, 10) {
		t.Fatal("10-streak requirement should be met")
	}

	ApplyJudgmentStats(v, false)
	if !MeetsRequirement(v, model.AchievementStreak, 10) {
		t.Error("requirement should still be met after the streak breaks")
	}
}
