package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/6ackpacks/who-is-bot/internal/model"
	"github.com/6ackpacks/who-is-bot/internal/repository"
)

// Identity is the caller identity established out of band: a registered
// voter row id, or a hashed guest token. Exactly one of those must be
// set. IPHash is the salted hash of the submitting address, stored on
// the judgment row for abuse forensics; the raw IP is never persisted.
type Identity struct {
	VoterID   string
	GuestHash string
	IPHash    string
}

// JudgmentService coordinates a judgment submission: identity resolution,
// the duplicate guard, the immutable judgment record and both aggregate
// updates, all inside one transaction. Any failure after Begin rolls the
// whole submission back.
type JudgmentService struct {
	pool         *pgxpool.Pool
	voters       *repository.VoterRepo
	contents     *repository.ContentRepo
	judgments    *repository.JudgmentRepo
	levels       *LevelService
	cache        *CacheService
	achievements *AchievementService
}

func NewJudgmentService(
	pool *pgxpool.Pool,
	voters *repository.VoterRepo,
	contents *repository.ContentRepo,
	judgments *repository.JudgmentRepo,
	levels *LevelService,
	cache *CacheService,
	achievements *AchievementService,
) *JudgmentService {
	return &JudgmentService{
		pool:         pool,
		voters:       voters,
		contents:     contents,
		judgments:    judgments,
		levels:       levels,
		cache:        cache,
		achievements: achievements,
	}
}

// Submit processes one judgment submission end to end.
//
// AlreadyJudged and ContentNotFound come back as accepted=false results,
// not errors; the deferred rollback discards the open transaction in
// both cases. A uniqueness conflict on the insert (a concurrent
// identical submission won the race) is folded into AlreadyJudged, so
// exactly one of N racing submissions ever commits.
func (s *JudgmentService) Submit(ctx context.Context, id Identity, req model.SubmitJudgmentRequest) (*model.SubmitJudgmentResponse, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submit tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var voterID string
	if id.VoterID != "" {
		voterID, err = s.voters.ResolveRegistered(ctx, tx, id.VoterID)
	} else {
		voterID, err = s.voters.ResolveGuest(ctx, tx, id.GuestHash)
	}
	if err != nil {
		return nil, err
	}

	judged, err := s.judgments.HasJudged(ctx, tx, voterID, req.ContentID)
	if err != nil {
		return nil, err
	}
	if judged {
		return &model.SubmitJudgmentResponse{Accepted: false, Reason: model.ReasonAlreadyJudged}, nil
	}

	isAI, err := s.contents.GetGroundTruth(ctx, tx, req.ContentID)
	if errors.Is(err, repository.ErrContentNotFound) {
		return &model.SubmitJudgmentResponse{Accepted: false, Reason: model.ReasonContentNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	_, correct, err := s.judgments.Record(ctx, tx, voterID, req.ContentID, req.Choice, id.IPHash, isAI)
	if errors.Is(err, repository.ErrDuplicateJudgment) {
		return &model.SubmitJudgmentResponse{Accepted: false, Reason: model.ReasonAlreadyJudged}, nil
	}
	if err != nil {
		return nil, err
	}

	counters, err := s.contents.ApplyVote(ctx, tx, req.ContentID, req.Choice, correct)
	if err != nil {
		return nil, err
	}

	// Row lock serializes concurrent judgments by the same voter; the
	// streak and level math needs the current values.
	voter, err := s.voters.LockForUpdate(ctx, tx, voterID)
	if err != nil {
		return nil, err
	}
	ApplyJudgmentStats(voter, correct)
	voter.Level = s.levels.NextLevel(voter.Level, voter.TotalJudged, voter.Accuracy)
	if err := s.voters.SaveAggregates(ctx, tx, voter); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit submit tx: %w", err)
	}

	// Post-commit side effects. None of these can change the outcome.
	if s.cache != nil {
		if err := s.cache.InvalidateContent(ctx, req.ContentID); err != nil {
			log.Printf("cache: invalidate content error: %v", err)
		}
		if err := s.cache.InvalidateVoter(ctx, voterID); err != nil {
			log.Printf("cache: invalidate voter error: %v", err)
		}
		if err := s.cache.InvalidateLeaderboard(ctx); err != nil {
			log.Printf("cache: invalidate leaderboard error: %v", err)
		}
	}
	if s.achievements != nil {
		if _, err := s.achievements.CheckAndUnlock(ctx, voter); err != nil {
			log.Printf("achievements: unlock check error: %v", err)
		}
	}

	stats := BuildContentStats(*counters)
	return &model.SubmitJudgmentResponse{
		Accepted: true,
		Correct:  &correct,
		Stats:    &stats,
	}, nil
}

// History returns a voter's judgment history.
func (s *JudgmentService) History(ctx context.Context, voterID string, limit int) ([]model.JudgmentHistoryEntry, error) {
	return s.judgments.ListByVoter(ctx, voterID, limit)
}

// ApplyJudgmentStats mutates a voter's aggregate counters for one
// judgment: lifetime and weekly totals, streak handling, and the derived
// accuracy percentages. Level is recomputed separately by the caller.
func ApplyJudgmentStats(v *model.Voter, correct bool) {
	v.TotalJudged++
	v.WeeklyJudged++
	if correct {
		v.CorrectCount++
		v.WeeklyCorrect++
		v.Streak++
		v.MaxStreak = max(v.MaxStreak, v.Streak)
	} else {
		v.Streak = 0
	}

	v.Accuracy = percentage(v.CorrectCount, v.TotalJudged)
	v.WeeklyAccuracy = percentage(v.WeeklyCorrect, v.WeeklyJudged)
}

// BuildContentStats derives the response percentages from the counters.
func BuildContentStats(c model.ContentCounters) model.ContentStats {
	return model.ContentStats{
		TotalVotes:        c.TotalVotes,
		AIVotes:           c.AIVotes,
		HumanVotes:        c.HumanVotes,
		CorrectVotes:      c.CorrectVotes,
		AIPercentage:      round1(percentage(c.AIVotes, c.TotalVotes)),
		HumanPercentage:   round1(percentage(c.HumanVotes, c.TotalVotes)),
		CorrectPercentage: round1(percentage(c.CorrectVotes, c.TotalVotes)),
	}
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// round1 rounds to one decimal place for display.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
