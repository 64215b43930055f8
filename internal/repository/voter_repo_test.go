package repository

import (
	"errors"
	"testing"
)

// linkRow is the subset of a voter row the linking logic touches.
type linkRow struct {
	id          string
	guestToken  string
	uid         string
	totalJudged int
	streak      int
}

// linkLedger mirrors Link's UPDATE semantics for unit testing without a
// database: the guest row is claimed only while its uid is still empty,
// and the uid uniqueness constraint fires only when a matching row would
// actually be updated.
type linkLedger struct {
	rows []*linkRow
}

func (l *linkLedger) link(guestHash, uid string) (*linkRow, error) {
	var target *linkRow
	for _, r := range l.rows {
		if r.guestToken == guestHash && r.uid == "" {
			target = r
			break
		}
	}
	if target == nil {
		return nil, ErrVoterNotFound
	}
	for _, r := range l.rows {
		if r != target && r.uid == uid {
			return nil, ErrUIDTaken
		}
	}
	target.uid = uid
	return target, nil
}

func TestLink_PreservesRowAndCounters(t *testing.T) {
	// A guest with accumulated history registers; the link must land on
	// the same row so every judgment and counter survives.
	ledger := &linkLedger{rows: []*linkRow{
		{id: "row-1", guestToken: "hash-a", totalJudged: 3, streak: 2},
	}}

	linked, err := ledger.link("hash-a", "firebase-uid-1")
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}

	if linked.id != "row-1" {
		t.Errorf("linked row id = %q, want %q (must be the same row, not a fresh one)", linked.id, "row-1")
	}
	if linked.totalJudged != 3 {
		t.Errorf("totalJudged = %d, want 3", linked.totalJudged)
	}
	if linked.streak != 2 {
		t.Errorf("streak = %d, want 2", linked.streak)
	}
	if linked.uid != "firebase-uid-1" {
		t.Errorf("uid = %q, want %q", linked.uid, "firebase-uid-1")
	}
}

func TestLink_UIDTaken(t *testing.T) {
	ledger := &linkLedger{rows: []*linkRow{
		{id: "row-1", guestToken: "hash-a"},
		{id: "row-2", guestToken: "hash-b", uid: "firebase-uid-1"},
	}}

	_, err := ledger.link("hash-a", "firebase-uid-1")
	if !errors.Is(err, ErrUIDTaken) {
		t.Errorf("err = %v, want ErrUIDTaken", err)
	}

	// The guest row must be untouched after the failed attempt.
	if ledger.rows[0].uid != "" {
		t.Errorf("guest row uid = %q, want empty", ledger.rows[0].uid)
	}
}

func TestLink_AlreadyLinkedRowNotReclaimable(t *testing.T) {
	// Once linked, the uid IS NULL predicate excludes the row; a second
	// link attempt with the same token behaves like an unknown token.
	ledger := &linkLedger{rows: []*linkRow{
		{id: "row-1", guestToken: "hash-a", uid: "firebase-uid-1", totalJudged: 5},
	}}

	_, err := ledger.link("hash-a", "firebase-uid-2")
	if !errors.Is(err, ErrVoterNotFound) {
		t.Errorf("err = %v, want ErrVoterNotFound", err)
	}
	if ledger.rows[0].uid != "firebase-uid-1" {
		t.Errorf("uid = %q, want original link preserved", ledger.rows[0].uid)
	}
}

func TestLink_UnknownGuestToken(t *testing.T) {
	ledger := &linkLedger{rows: []*linkRow{
		{id: "row-1", guestToken: "hash-a"},
	}}

	_, err := ledger.link("hash-never-seen", "firebase-uid-1")
	if !errors.Is(err, ErrVoterNotFound) {
		t.Errorf("err = %v, want ErrVoterNotFound", err)
	}
}
