package service

import (
	"testing"
)

func TestComputeLevel(t *testing.T) {
	svc := NewLevelService()

	tests := []struct {
		name        string
		totalJudged int
		accuracy    float64
		want        int
	}{
		{"fresh voter", 0, 0, LevelRookie},
		{"few judgments high accuracy", 5, 100, LevelRookie},
		{"many judgments low accuracy", 1000, 40, LevelRookie},
		{"level 2 exact thresholds", 20, 50, LevelAlmostHuman},
		{"level 2 count met accuracy short", 20, 49.9, LevelRookie},
		{"level 2 accuracy met count short", 19, 90, LevelRookie},
		{"level 3 exact thresholds", 100, 70, LevelBotBuster},
		{"level 3 accuracy short", 100, 69.9, LevelAlmostHuman},
		{"level 4 exact thresholds", 500, 85, LevelValleyGenius},
		{"level 4 count short", 499, 99, LevelBotBuster},
		{"well past top tier", 10000, 95, LevelValleyGenius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ComputeLevel(tt.totalJudged, tt.accuracy)
			if got != tt.want {
				t.Errorf("ComputeLevel(%d, %.1f) = %d, want %d", tt.totalJudged, tt.accuracy, got, tt.want)
			}
		})
	}
}

func TestNextLevel_NeverDemotes(t *testing.T) {
	svc := NewLevelService()

	// A voter at level 3 whose accuracy has since collapsed stays at 3.
	got := svc.NextLevel(LevelBotBuster, 150, 30)
	if got != LevelBotBuster {
		t.Errorf("NextLevel(3, 150, 30) = %d, want %d", got, LevelBotBuster)
	}

	// Promotion still works from a held level.
	got = svc.NextLevel(LevelAlmostHuman, 500, 90)
	if got != LevelValleyGenius {
		t.Errorf("NextLevel(2, 500, 90) = %d, want %d", got, LevelValleyGenius)
	}
}

func TestNextLevel_MonotonicOverSequence(t *testing.T) {
	svc := NewLevelService()

	// Simulate a judgment history: correct answers then a losing streak.
	// Level must never decrease at any point.
	level := LevelRookie
	correctCount := 0
	for i := 1; i <= 600; i++ {
		correct := i <= 520 // first 520 correct, then 80 wrong
		if correct {
			correctCount++
		}
		accuracy := float64(correctCount) / float64(i) * 100

		next := svc.NextLevel(level, i, accuracy)
		if next < level {
			t.Fatalf("level decreased at judgment %d: %d -> %d", i, level, next)
		}
		level = next
	}

	if level != LevelValleyGenius {
		t.Errorf("final level = %d, want %d", level, LevelValleyGenius)
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{LevelRookie, "Rookie"},
		{LevelAlmostHuman, "Almost Human"},
		{LevelBotBuster, "Bot Buster"},
		{LevelValleyGenius, "Valley Genius"},
		{0, "Rookie"},
		{99, "Rookie"},
	}

	for _, tt := range tests {
		if got := LevelName(tt.level); got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
