package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sandfox-dev/foxchat/internal/core"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

// History persists question/answer exchanges. Rows are append-only except
// for the explicit delete of the most recent entry; ids are never reused.
type History struct {
	db    *sql.DB
	limit int
}

func NewHistory(db *sql.DB, searchLimit int) *History {
	if searchLimit <= 0 {
		searchLimit = 50
	}
	return &History{db: db, limit: searchLimit}
}

func (h *History) Append(ctx context.Context, question, answer string) (int64, error) {
	if strings.TrimSpace(question) == "" {
		return 0, fmt.Errorf("%w: empty question", core.ErrStorageWrite)
	}

	createdAt := time.Now().Format(core.TimeFormat)
	res, err := h.db.ExecContext(ctx,
		`INSERT INTO history (question, answer, created_at) VALUES (?, ?, ?)`,
		question, answer, createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: insert: %v", core.ErrStorageWrite, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", core.ErrStorageWrite, err)
	}

	log.FromCtx(ctx).Debug().Int64("id", id).Msg("history entry saved")
	return id, nil
}

func (h *History) DeleteMostRecent(ctx context.Context) (int64, bool, error) {
	// MAX(id) over an empty table scans as NULL
	var id sql.NullInt64
	if err := h.db.QueryRowContext(ctx, `SELECT MAX(id) FROM history`).Scan(&id); err != nil {
		return 0, false, fmt.Errorf("%w: find latest: %v", core.ErrStorageWrite, err)
	}
	if !id.Valid {
		return 0, false, nil
	}

	if _, err := h.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id.Int64); err != nil {
		return 0, false, fmt.Errorf("%w: delete: %v", core.ErrStorageWrite, err)
	}
	return id.Int64, true, nil
}

func (h *History) Search(ctx context.Context, keyword string) ([]core.HistoryEntry, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, nil
	}

	// LIKE is case-insensitive for ASCII in sqlite; fine for a small
	// single-user log, no need for FTS here
	pattern := "%" + keyword + "%"
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, question, answer, created_at
		 FROM history
		 WHERE question LIKE ? OR answer LIKE ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		pattern, pattern, h.limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", core.ErrStorageRead, err)
	}
	defer rows.Close()

	var entries []core.HistoryEntry
	for rows.Next() {
		var e core.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", core.ErrStorageRead, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStorageRead, err)
	}

	return entries, nil
}
