package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandfox-dev/foxchat/internal/core"
)

// Facts is the key/value store behind the contextual memory. Keys are
// case-sensitive and unique; writing an existing key replaces its value.
type Facts struct {
	db *sql.DB
}

func NewFacts(db *sql.DB) *Facts {
	return &Facts{db: db}
}

func (f *Facts) Upsert(ctx context.Context, key, value string) error {
	_, err := f.db.ExecContext(ctx,
		`INSERT INTO facts (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: upsert fact: %v", core.ErrStorageWrite, err)
	}
	return nil
}

func (f *Facts) Delete(ctx context.Context, key string) (bool, error) {
	res, err := f.db.ExecContext(ctx, `DELETE FROM facts WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("%w: delete fact: %v", core.ErrStorageWrite, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: rows affected: %v", core.ErrStorageWrite, err)
	}
	return n > 0, nil
}

func (f *Facts) All(ctx context.Context) (map[string]string, error) {
	rows, err := f.db.QueryContext(ctx, `SELECT key, value FROM facts`)
	if err != nil {
		return nil, fmt.Errorf("%w: query facts: %v", core.ErrStorageRead, err)
	}
	defer rows.Close()

	facts := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("%w: scan fact: %v", core.ErrStorageRead, err)
		}
		facts[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStorageRead, err)
	}

	return facts, nil
}
