package database

import (
	"context"
	"database/sql"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		branch TEXT NOT NULL,
		cgpa NUMERIC(4,2) NOT NULL DEFAULT 0,
		skills TEXT[] NOT NULL DEFAULT '{}',
		resume TEXT NOT NULL DEFAULT '',
		is_placed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_key ON accounts (email)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id UUID PRIMARY KEY,
		company_name TEXT NOT NULL,
		role TEXT NOT NULL,
		package NUMERIC(8,2) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		min_cgpa NUMERIC(4,2) NOT NULL,
		eligible_branches TEXT[] NOT NULL DEFAULT '{}',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		rounds JSONB NOT NULL DEFAULT '[]',
		deadline TIMESTAMPTZ,
		created_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		student_id UUID NOT NULL,
		listing_id UUID NOT NULL,
		status TEXT NOT NULL,
		current_round TEXT NOT NULL DEFAULT '',
		remarks TEXT NOT NULL DEFAULT '',
		applied_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	// The unique pair is the storage-level backstop behind the
	// duplicate-application pre-check.
	`CREATE UNIQUE INDEX IF NOT EXISTS applications_student_listing_key ON applications (student_id, listing_id)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
