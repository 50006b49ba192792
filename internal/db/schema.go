package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Schema statements, each safe to run again on an existing database.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users
	(
		id            SERIAL PRIMARY KEY,
		name          VARCHAR     NOT NULL,
		email         VARCHAR     NOT NULL,
		password_hash VARCHAR     NOT NULL,
		age           INTEGER,
		gender        VARCHAR,
		height        DOUBLE PRECISION,
		weight        DOUBLE PRECISION,
		goal          VARCHAR,
		role          VARCHAR     NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (lower(email));`,
	`CREATE TABLE IF NOT EXISTS day_plan
	(
		id               SERIAL PRIMARY KEY,
		user_id          INTEGER     NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		day              VARCHAR     NOT NULL,
		exercises        JSONB       NOT NULL DEFAULT '[]',
		meals            JSONB       NOT NULL DEFAULT '[]',
		completed_status JSONB       NOT NULL DEFAULT '{}',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, day)
	);`,
	`CREATE INDEX IF NOT EXISTS ix_day_plan_user_id ON day_plan (user_id);`,
}

// EnsureSchema creates the tables and indexes the service needs, if missing.
func EnsureSchema(ctx context.Context, db execer) error {
	for i, stmt := range Schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	log.Debugf("db schema ensured, %d statements", len(Schema))
	return nil
}
