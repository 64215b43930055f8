package model

import "time"

// Voter is a durable account, either registered (uid set) or guest
// (guest_token set). Guests get a real row on first contact so that
// linking to a registered identity later keeps their history.
type Voter struct {
	ID             string     `json:"id"`
	UID            *string    `json:"uid,omitempty"`
	GuestToken     *string    `json:"-"`
	Nickname       string     `json:"nickname"`
	Avatar         string     `json:"avatar"`
	Level          int        `json:"level"`
	Accuracy       float64    `json:"accuracy"`
	TotalJudged    int        `json:"totalJudged"`
	CorrectCount   int        `json:"correctCount"`
	Streak         int        `json:"streak"`
	MaxStreak      int        `json:"maxStreak"`
	WeeklyJudged   int        `json:"weeklyJudged"`
	WeeklyCorrect  int        `json:"weeklyCorrect"`
	WeeklyAccuracy float64    `json:"weeklyAccuracy"`
	LastWeekReset  *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"-"`
	LastActive     time.Time  `json:"-"`
}

// VoterResponse is the API response for voter profile lookups.
type VoterResponse struct {
	ID             string  `json:"id"`
	Nickname       string  `json:"nickname"`
	Avatar         string  `json:"avatar"`
	Level          int     `json:"level"`
	LevelName      string  `json:"levelName"`
	Accuracy       float64 `json:"accuracy"`
	TotalJudged    int     `json:"totalJudged"`
	Streak         int     `json:"streak"`
	MaxStreak      int     `json:"maxStreak"`
	WeeklyJudged   int     `json:"weeklyJudged"`
	WeeklyAccuracy float64 `json:"weeklyAccuracy"`
	IsGuest        bool    `json:"isGuest"`
}

// LinkRequest is the API request body for attaching a registered
// identity to an existing guest account.
type LinkRequest struct {
	UID      string `json:"uid"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
}

// LeaderboardEntry is one row of the accuracy leaderboard.
type LeaderboardEntry struct {
	ID             string  `json:"id"`
	Nickname       string  `json:"nickname"`
	Avatar         string  `json:"avatar"`
	Level          int     `json:"level"`
	LevelName      string  `json:"levelName"`
	Accuracy       float64 `json:"accuracy"`
	TotalJudged    int     `json:"totalJudged"`
	MaxStreak      int     `json:"maxStreak"`
	WeeklyAccuracy float64 `json:"weeklyAccuracy"`
}

// StatsResponse is the API response for global platform statistics.
type StatsResponse struct {
	TotalContent    int `json:"totalContent"`
	TotalJudgments  int `json:"totalJudgments"`
	TotalVoters     int `json:"totalVoters"`
	ActiveVoters24h int `json:"activeVoters24h"`
	TotalAIVotes    int `json:"totalAiVotes"`
	TotalHumanVotes int `json:"totalHumanVotes"`
}
