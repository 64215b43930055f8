package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/6ackpacks/who-is-bot/internal/model"
)

type VoterRepo struct {
	pool *pgxpool.Pool
}

func NewVoterRepo(pool *pgxpool.Pool) *VoterRepo {
	return &VoterRepo{pool: pool}
}

const voterColumns = `
	id, uid, guest_token, nickname, avatar, level, accuracy,
	total_judged, correct_count, streak, max_streak,
	weekly_judged, weekly_correct, weekly_accuracy, last_week_reset,
	created_at, last_active`

func scanVoter(row pgx.Row) (*model.Voter, error) {
	var v model.Voter
	err := row.Scan(
		&v.ID, &v.UID, &v.GuestToken, &v.Nickname, &v.Avatar, &v.Level, &v.Accuracy,
		&v.TotalJudged, &v.CorrectCount, &v.Streak, &v.MaxStreak,
		&v.WeeklyJudged, &v.WeeklyCorrect, &v.WeeklyAccuracy, &v.LastWeekReset,
		&v.CreatedAt, &v.LastActive,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ResolveRegistered maps an authenticated voter id to its row, bumping
// last_active. Returns ErrUnknownVoter if the id references nothing,
// only possible when upstream auth is inconsistent.
func (r *VoterRepo) ResolveRegistered(ctx context.Context, q Querier, voterID string) (string, error) {
	var id string
	err := q.QueryRow(ctx, `
		UPDATE voters SET last_active = NOW()
		WHERE id = $1
		RETURNING id`, voterID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUnknownVoter
	}
	return id, err
}

// ResolveGuest maps a hashed guest token to a voter row, lazily creating
// one on first contact. The ON CONFLICT upsert makes this insert-or-fetch
// race-safe: two simultaneous first requests get the same row.
func (r *VoterRepo) ResolveGuest(ctx context.Context, q Querier, guestHash string) (string, error) {
	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO voters (guest_token) VALUES ($1)
		ON CONFLICT (guest_token) DO UPDATE SET last_active = NOW()
		RETURNING id`, guestHash).Scan(&id)
	return id, err
}

// LockForUpdate reads the voter row under an exclusive row lock.
// The streak/level update is read-modify-write, so concurrent judgments
// by the same voter must be serialized for the rest of the transaction.
func (r *VoterRepo) LockForUpdate(ctx context.Context, tx pgx.Tx, voterID string) (*model.Voter, error) {
	row := tx.QueryRow(ctx, `
		SELECT`+voterColumns+`
		FROM voters WHERE id = $1
		FOR UPDATE`, voterID)
	v, err := scanVoter(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUnknownVoter
	}
	return v, err
}

// SaveAggregates writes back the recomputed aggregate fields for a voter
// previously read with LockForUpdate.
func (r *VoterRepo) SaveAggregates(ctx context.Context, tx pgx.Tx, v *model.Voter) error {
	_, err := tx.Exec(ctx, `
		UPDATE voters SET
			level = $2, accuracy = $3,
			total_judged = $4, correct_count = $5,
			streak = $6, max_streak = $7,
			weekly_judged = $8, weekly_correct = $9, weekly_accuracy = $10,
			last_active = NOW()
		WHERE id = $1`,
		v.ID, v.Level, v.Accuracy,
		v.TotalJudged, v.CorrectCount,
		v.Streak, v.MaxStreak,
		v.WeeklyJudged, v.WeeklyCorrect, v.WeeklyAccuracy)
	return err
}

// FindByID returns a single voter by row id.
func (r *VoterRepo) FindByID(ctx context.Context, voterID string) (*model.Voter, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT`+voterColumns+`
		FROM voters WHERE id = $1`, voterID)
	v, err := scanVoter(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrVoterNotFound
	}
	return v, err
}

// Link attaches a registered uid (and profile) to an existing guest row.
// The judgments and counters stay on the same row, so a guest's history
// survives registration. Fails with ErrUIDTaken if the uid is already
// bound to a different voter, ErrVoterNotFound if the guest token
// matches nothing or the row is already linked.
func (r *VoterRepo) Link(ctx context.Context, guestHash, uid, nickname, avatar string) (*model.Voter, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE voters SET uid = $2, nickname = $3, avatar = $4, last_active = NOW()
		WHERE guest_token = $1 AND uid IS NULL
		RETURNING`+voterColumns,
		guestHash, uid, nickname, avatar)
	v, err := scanVoter(row)
	if isUniqueViolation(err) {
		return nil, ErrUIDTaken
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrVoterNotFound
	}
	return v, err
}

// ResetWeeklyStats zeroes the weekly counters for every voter in one
// bulk statement, so an in-flight judgment lands entirely before or
// entirely after the reset. Returns the number of affected rows.
func (r *VoterRepo) ResetWeeklyStats(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE voters SET
			weekly_judged = 0,
			weekly_correct = 0,
			weekly_accuracy = 0,
			last_week_reset = NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// LeaderboardMinJudged filters out accounts with too few judgments to
// have a meaningful accuracy.
const LeaderboardMinJudged = 5

// Leaderboard returns the top voters by accuracy, then volume.
func (r *VoterRepo) Leaderboard(ctx context.Context, limit int) ([]model.Voter, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+voterColumns+`
		FROM voters
		WHERE total_judged >= $1
		ORDER BY accuracy DESC, total_judged DESC
		LIMIT $2`, LeaderboardMinJudged, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var voters []model.Voter
	for rows.Next() {
		v, err := scanVoter(rows)
		if err != nil {
			return nil, err
		}
		voters = append(voters, *v)
	}
	return voters, rows.Err()
}

// GetStats returns aggregate platform statistics.
func (r *VoterRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM content) AS total_content,
			(SELECT COUNT(*) FROM judgments) AS total_judgments,
			(SELECT COUNT(*) FROM voters) AS total_voters,
			(SELECT COUNT(*) FROM voters WHERE last_active > NOW() - INTERVAL '24 hours') AS active_voters_24h,
			(SELECT COALESCE(SUM(ai_votes), 0) FROM content) AS total_ai_votes,
			(SELECT COALESCE(SUM(human_votes), 0) FROM content) AS total_human_votes`

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalContent, &stats.TotalJudgments, &stats.TotalVoters,
		&stats.ActiveVoters24h, &stats.TotalAIVotes, &stats.TotalHumanVotes,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
