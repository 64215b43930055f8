package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema creates all tables and seeds the achievement definitions.
// Safe to call on every startup; everything uses IF NOT EXISTS / ON CONFLICT.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := pool.Exec(ctx, seedAchievements); err != nil {
		return fmt.Errorf("seed achievements: %w", err)
	}
	return nil
}

const schema = `
-- Voter accounts. Exactly one of uid (registered) or guest_token (guest)
-- identifies the account externally; a linked guest has both.
CREATE TABLE IF NOT EXISTS voters (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    uid VARCHAR(64) UNIQUE,
    guest_token VARCHAR(64) UNIQUE,
    nickname VARCHAR(100) NOT NULL DEFAULT 'Guest',
    avatar TEXT NOT NULL DEFAULT '',
    level INT NOT NULL DEFAULT 1,
    accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
    total_judged INT NOT NULL DEFAULT 0,
    correct_count INT NOT NULL DEFAULT 0,
    streak INT NOT NULL DEFAULT 0,
    max_streak INT NOT NULL DEFAULT 0,
    weekly_judged INT NOT NULL DEFAULT 0,
    weekly_correct INT NOT NULL DEFAULT 0,
    weekly_accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
    last_week_reset TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_active TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CHECK (correct_count <= total_judged),
    CHECK (weekly_correct <= weekly_judged),
    CHECK (streak <= max_streak)
);

-- Judgeable content. is_ai is the immutable ground truth; the four
-- counters are only ever incremented, server-side.
CREATE TABLE IF NOT EXISTS content (
    id VARCHAR(36) PRIMARY KEY,
    type VARCHAR(20) NOT NULL CHECK (type IN ('text', 'image', 'video')),
    title VARCHAR(255) NOT NULL DEFAULT '',
    url TEXT,
    body TEXT,
    is_ai BOOLEAN NOT NULL,
    model_tag VARCHAR(100) NOT NULL DEFAULT '',
    provider VARCHAR(100) NOT NULL DEFAULT '',
    deception_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
    total_votes INT NOT NULL DEFAULT 0,
    ai_votes INT NOT NULL DEFAULT 0,
    human_votes INT NOT NULL DEFAULT 0,
    correct_votes INT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CHECK (ai_votes + human_votes = total_votes),
    CHECK (correct_votes <= total_votes)
);

-- Immutable judgment facts. The UNIQUE (voter_id, content_id) constraint
-- is the backstop for the exactly-once guarantee; the application-level
-- existence check only exists to give a friendly rejection.
CREATE TABLE IF NOT EXISTS judgments (
    id BIGSERIAL PRIMARY KEY,
    voter_id UUID NOT NULL REFERENCES voters(id),
    content_id VARCHAR(36) NOT NULL REFERENCES content(id),
    choice VARCHAR(5) NOT NULL CHECK (choice IN ('ai', 'human')),
    is_correct BOOLEAN NOT NULL,
    ip_hash VARCHAR(64) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (voter_id, content_id)
);

CREATE INDEX IF NOT EXISTS idx_judgments_content ON judgments(content_id);
CREATE INDEX IF NOT EXISTS idx_judgments_voter_created ON judgments(voter_id, created_at DESC);

CREATE TABLE IF NOT EXISTS achievements (
    id SERIAL PRIMARY KEY,
    key VARCHAR(50) UNIQUE NOT NULL,
    name VARCHAR(100) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    icon VARCHAR(20) NOT NULL DEFAULT '',
    type VARCHAR(20) NOT NULL CHECK (type IN ('judgment_count', 'accuracy', 'streak')),
    requirement DOUBLE PRECISION NOT NULL,
    points INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS voter_achievements (
    voter_id UUID NOT NULL REFERENCES voters(id),
    achievement_id INT NOT NULL REFERENCES achievements(id),
    unlocked_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (voter_id, achievement_id)
);
`

const seedAchievements = `
INSERT INTO achievements (key, name, description, icon, type, requirement, points) VALUES
    ('first_judgment', 'First Call', 'Judge your first piece of content', '🔍', 'judgment_count', 1, 5),
    ('judged_50', 'Regular', 'Judge 50 pieces of content', '📋', 'judgment_count', 50, 20),
    ('judged_500', 'Veteran', 'Judge 500 pieces of content', '🏅', 'judgment_count', 500, 100),
    ('accuracy_70', 'Sharp Eye', 'Reach 70% accuracy', '👁️', 'accuracy', 70, 30),
    ('accuracy_90', 'Human Lie Detector', 'Reach 90% accuracy', '🎯', 'accuracy', 90, 80),
    ('streak_10', 'On Fire', 'Get 10 correct judgments in a row', '🔥', 'streak', 10, 25),
    ('streak_30', 'Unstoppable', 'Get 30 correct judgments in a row', '⚡', 'streak', 30, 75)
ON CONFLICT (key) DO NOTHING;
`
