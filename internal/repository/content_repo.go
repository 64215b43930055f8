package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/6ackpacks/who-is-bot/internal/model"
)

type ContentRepo struct {
	pool *pgxpool.Pool
}

func NewContentRepo(pool *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

// GetGroundTruth returns the immutable is-AI label for a content item.
func (r *ContentRepo) GetGroundTruth(ctx context.Context, q Querier, contentID string) (bool, error) {
	var isAI bool
	err := q.QueryRow(ctx, `SELECT is_ai FROM content WHERE id = $1`, contentID).Scan(&isAI)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrContentNotFound
	}
	return isAI, err
}

// ApplyVote bumps the four counters for one judgment in a single
// server-side statement. N submissions may hit the same content
// concurrently, so the increments must never be reconstructed from a
// value read into application memory. The deception rate is derived
// from the post-increment values in the same statement.
func (r *ContentRepo) ApplyVote(ctx context.Context, q Querier, contentID, choice string, correct bool) (*model.ContentCounters, error) {
	aiDelta, humanDelta := 0, 1
	if choice == model.ChoiceAI {
		aiDelta, humanDelta = 1, 0
	}
	correctDelta := 0
	if correct {
		correctDelta = 1
	}

	var c model.ContentCounters
	err := q.QueryRow(ctx, `
		UPDATE content SET
			total_votes = total_votes + 1,
			ai_votes = ai_votes + $2,
			human_votes = human_votes + $3,
			correct_votes = correct_votes + $4,
			deception_rate = (ai_votes + $2)::float * 100 / (total_votes + 1),
			updated_at = NOW()
		WHERE id = $1
		RETURNING total_votes, ai_votes, human_votes, correct_votes`,
		contentID, aiDelta, humanDelta, correctDelta).Scan(
		&c.TotalVotes, &c.AIVotes, &c.HumanVotes, &c.CorrectVotes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCounters reads the current vote counters for a content item.
func (r *ContentRepo) GetCounters(ctx context.Context, contentID string) (*model.ContentCounters, error) {
	var c model.ContentCounters
	err := r.pool.QueryRow(ctx, `
		SELECT total_votes, ai_votes, human_votes, correct_votes
		FROM content WHERE id = $1`, contentID).Scan(
		&c.TotalVotes, &c.AIVotes, &c.HumanVotes, &c.CorrectVotes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
