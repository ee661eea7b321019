package postgres

import (
	"context"
	"fmt"
)

// schema sentencias idempotentes; se aplican en orden al arrancar.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL CHECK (role IN ('Resident', 'Admin')),
		room_number INTEGER,
		phone_number TEXT NOT NULL DEFAULT '',
		entry_date DATE NOT NULL,
		exit_date DATE,
		is_rent_paid BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		seq BIGSERIAL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx ON users (email);`,
	`CREATE INDEX IF NOT EXISTS users_role_room_idx ON users (role, room_number);`,
	`CREATE TABLE IF NOT EXISTS complaints (
		id TEXT PRIMARY KEY,
		resident_id TEXT NOT NULL REFERENCES users(id),
		resident_name TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL CHECK (status IN ('Pending', 'Resolved')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		seq BIGSERIAL
	);`,
	`CREATE INDEX IF NOT EXISTS complaints_resident_idx ON complaints (resident_id, created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS notices (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_by TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		seq BIGSERIAL
	);`,
	`CREATE INDEX IF NOT EXISTS notices_created_idx ON notices (created_at DESC, seq DESC);`,
}

// Migrate aplica el esquema.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
