package storage

import (
	"context"
	"database/sql"
	"fmt"

	"ewintr.nl/ytchecklist/model"
	_ "github.com/lib/pq"
)

type PostgresInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

func (pi PostgresInfo) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", pi.Host, pi.Port, pi.User, pi.Password, pi.Database)
}

type Postgres struct {
	db *sql.DB
}

func NewPostgres(pgInfo PostgresInfo) (*Postgres, error) {
	db, err := sql.Open("postgres", pgInfo.DSN())
	if err != nil {
		return &Postgres{}, err
	}
	p := &Postgres{db: db}
	if err := p.migrate(pgMigration); err != nil {
		return &Postgres{}, err
	}

	return p, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) Save(ctx context.Context, lookup *model.Lookup) error {
	query := `INSERT INTO lookup (id, kind, source_id, status, items, total_seconds, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id)
DO UPDATE SET
  status = EXCLUDED.status,
  items = EXCLUDED.items,
  total_seconds = EXCLUDED.total_seconds`
	if _, err := p.db.ExecContext(ctx, query, lookup.ID, lookup.Kind, lookup.SourceID, lookup.Status, lookup.Items, lookup.TotalSeconds, lookup.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (p *Postgres) Recent(ctx context.Context, limit int) ([]*model.Lookup, error) {
	query := `SELECT id, kind, source_id, status, items, total_seconds, created_at
FROM lookup
ORDER BY created_at DESC
LIMIT $1`
	rows, err := p.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lookups := []*model.Lookup{}
	for rows.Next() {
		l := &model.Lookup{}
		if err := rows.Scan(&l.ID, &l.Kind, &l.SourceID, &l.Status, &l.Items, &l.TotalSeconds, &l.CreatedAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}

	return lookups, rows.Err()
}

func (p *Postgres) migrate(wanted []string) error {
	query := `CREATE TABLE IF NOT EXISTS migration
("id" SERIAL PRIMARY KEY, "query" TEXT)`
	_, err := p.db.Exec(query)
	if err != nil {
		return err
	}

	// find existing
	rows, err := p.db.Query(`SELECT query FROM migration ORDER BY id`)
	if err != nil {
		return err
	}

	existing := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return err
		}
		existing = append(existing, query)
	}
	rows.Close()

	// compare
	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	// execute missing
	for _, query := range missing {
		if _, err := p.db.Exec(query); err != nil {
			return err
		}

		// register
		if _, err := p.db.Exec(`
INSERT INTO migration
(query) VALUES ($1)
`, query); err != nil {
			return err
		}
	}

	return nil
}

func compareMigrations(wanted, existing []string) ([]string, error) {
	needed := []string{}
	if len(wanted) < len(existing) {
		return []string{}, fmt.Errorf("not enough migrations")
	}

	for i, want := range wanted {
		switch {
		case i >= len(existing):
			needed = append(needed, want)
		case want == existing[i]:
			// do nothing
		case want != existing[i]:
			return []string{}, fmt.Errorf("incompatible migration: %v", want)
		}
	}

	return needed, nil
}
