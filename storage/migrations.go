package storage

var pgMigration = []string{
	`CREATE TYPE lookup_kind AS ENUM ('video', 'playlist')`,
	`CREATE TYPE lookup_status AS ENUM ('ok', 'not_found', 'timeout', 'failed')`,
	`CREATE TABLE lookup (
id uuid PRIMARY KEY,
kind lookup_kind NOT NULL,
source_id VARCHAR(255) NOT NULL,
status lookup_status NOT NULL,
items INTEGER NOT NULL DEFAULT 0,
total_seconds INTEGER NOT NULL DEFAULT 0,
created_at TIMESTAMP WITH TIME ZONE NOT NULL
)`,
	`CREATE INDEX lookup_created_at_idx ON lookup (created_at DESC)`,
}
