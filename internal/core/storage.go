package core

import "context"

type HistoryRepository interface {
	// Append writes one exchange with a store-assigned timestamp and
	// returns the new row id.
	Append(ctx context.Context, question, answer string) (int64, error)

	// DeleteMostRecent removes the row with the maximum id. The bool
	// reports whether a row existed.
	DeleteMostRecent(ctx context.Context) (int64, bool, error)

	// Search returns entries whose question or answer contains keyword,
	// case-insensitive, newest first. An empty keyword yields no rows.
	Search(ctx context.Context, keyword string) ([]HistoryEntry, error)
}

type FactRepository interface {
	// Upsert inserts or replaces the value for key.
	Upsert(ctx context.Context, key, value string) error

	// Delete removes the row if present and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)

	// All returns a full snapshot, unordered.
	All(ctx context.Context) (map[string]string, error)
}
