package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/6ackpacks/who-is-bot/internal/model"
)

type JudgmentRepo struct {
	pool *pgxpool.Pool
}

func NewJudgmentRepo(pool *pgxpool.Pool) *JudgmentRepo {
	return &JudgmentRepo{pool: pool}
}

// HasJudged reports whether a judgment already exists for the pair.
// Run inside the submit transaction this is only a friendliness check;
// the uniqueness constraint is what actually prevents a double insert
// when two identical submissions race.
func (r *JudgmentRepo) HasJudged(ctx context.Context, q Querier, voterID, contentID string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM judgments WHERE voter_id = $1 AND content_id = $2
		)`, voterID, contentID).Scan(&exists)
	return exists, err
}

// Record inserts the immutable judgment fact and returns its id along
// with the derived correctness. A uniqueness conflict is translated to
// ErrDuplicateJudgment so the coordinator can treat a lost race exactly
// like a pre-checked duplicate.
func (r *JudgmentRepo) Record(ctx context.Context, q Querier, voterID, contentID, choice, ipHash string, groundTruthIsAI bool) (int64, bool, error) {
	correct := (choice == model.ChoiceAI) == groundTruthIsAI

	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO judgments (voter_id, content_id, choice, is_correct, ip_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		voterID, contentID, choice, correct, ipHash).Scan(&id)
	if isUniqueViolation(err) {
		return 0, false, ErrDuplicateJudgment
	}
	if err != nil {
		return 0, false, err
	}
	return id, correct, nil
}

// ListByVoter returns a voter's judgment history, newest first.
func (r *JudgmentRepo) ListByVoter(ctx context.Context, voterID string, limit int) ([]model.JudgmentHistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT j.content_id, c.type, c.title, j.choice, j.is_correct, j.created_at
		FROM judgments j
		JOIN content c ON c.id = j.content_id
		WHERE j.voter_id = $1
		ORDER BY j.created_at DESC
		LIMIT $2`, voterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.JudgmentHistoryEntry
	for rows.Next() {
		var e model.JudgmentHistoryEntry
		if err := rows.Scan(&e.ContentID, &e.ContentType, &e.ContentTitle, &e.Choice, &e.IsCorrect, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
