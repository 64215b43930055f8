package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain errors the service layer translates into structured outcomes.
var (
	// ErrDuplicateJudgment: the (voter, content) uniqueness constraint
	// fired. The coordinator maps this to an AlreadyJudged outcome.
	ErrDuplicateJudgment = errors.New("judgment already exists for this voter and content")

	// ErrContentNotFound: the content id references nothing judgeable.
	ErrContentNotFound = errors.New("content not found")

	// ErrUnknownVoter: an authenticated voter id references no row,
	// which means upstream auth is inconsistent.
	ErrUnknownVoter = errors.New("unknown voter id")

	// ErrVoterNotFound: profile lookup miss.
	ErrVoterNotFound = errors.New("voter not found")

	// ErrUIDTaken: the registered uid is already linked to another voter.
	ErrUIDTaken = errors.New("uid already linked to another voter")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repository
// methods can run standalone or inside the coordinator's transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
