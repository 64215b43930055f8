package model

import "time"

// Content is one piece of judgeable material. The ground-truth label
// (IsAI) is immutable once published; the four counters only grow.
type Content struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"` // text, image, video
	Title         string    `json:"title"`
	URL           *string   `json:"url,omitempty"`
	Body          *string   `json:"body,omitempty"`
	IsAI          bool      `json:"-"`
	ModelTag      string    `json:"-"`
	Provider      string    `json:"-"`
	DeceptionRate float64   `json:"deceptionRate"`
	TotalVotes    int       `json:"totalVotes"`
	AIVotes       int       `json:"aiVotes"`
	HumanVotes    int       `json:"humanVotes"`
	CorrectVotes  int       `json:"correctVotes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"-"`
}

// ContentCounters holds the four vote counters for a content item as
// read back from the database.
type ContentCounters struct {
	TotalVotes   int
	AIVotes      int
	HumanVotes   int
	CorrectVotes int
}

// ContentStats is the API shape for a content item's community
// statistics, with percentages derived from the counters.
type ContentStats struct {
	TotalVotes        int     `json:"totalVotes"`
	AIVotes           int     `json:"aiVotes"`
	HumanVotes        int     `json:"humanVotes"`
	CorrectVotes      int     `json:"correctVotes"`
	AIPercentage      float64 `json:"aiPercentage"`
	HumanPercentage   float64 `json:"humanPercentage"`
	CorrectPercentage float64 `json:"correctPercentage"`
}
