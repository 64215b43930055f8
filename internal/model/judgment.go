package model

import "time"

// Choices a voter can submit for a content item.
const (
	ChoiceAI    = "ai"
	ChoiceHuman = "human"
)

// Rejection reasons returned for submissions that were valid requests
// but could not be accepted. These are outcomes, not errors.
const (
	ReasonAlreadyJudged   = "AlreadyJudged"
	ReasonContentNotFound = "ContentNotFound"
)

// Judgment is an immutable fact: one voter's choice on one content item.
// At most one exists per (voter, content) pair.
type Judgment struct {
	ID        int64     `json:"id"`
	VoterID   string    `json:"voterId"`
	ContentID string    `json:"contentId"`
	Choice    string    `json:"choice"`
	IsCorrect bool      `json:"isCorrect"`
	IPHash    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// JudgmentHistoryEntry is one row of a voter's judgment history,
// joined with the content it was made on.
type JudgmentHistoryEntry struct {
	ContentID    string    `json:"contentId"`
	ContentType  string    `json:"contentType"`
	ContentTitle string    `json:"contentTitle"`
	Choice       string    `json:"choice"`
	IsCorrect    bool      `json:"isCorrect"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubmitJudgmentRequest is the API request body for submitting a judgment.
// Identity arrives out of band via the X-Voter-ID or X-Guest-Token header.
type SubmitJudgmentRequest struct {
	ContentID string `json:"contentId"`
	Choice    string `json:"choice"`
}

// SubmitJudgmentResponse is the API response after a submission.
// Accepted=false with a Reason is an expected outcome the client
// handles, not a failure.
type SubmitJudgmentResponse struct {
	Accepted bool          `json:"accepted"`
	Reason   string        `json:"reason,omitempty"`
	Correct  *bool         `json:"correct,omitempty"`
	Stats    *ContentStats `json:"stats,omitempty"`
}
