package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHistory_AppendAndSearch(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	id, err := h.Append(ctx, "what is the capital of France", "Paris")
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	results, err := h.Search(ctx, "capital")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].ID)
	assert.Equal(t, "Paris", results[0].Answer)
	assert.NotEmpty(t, results[0].CreatedAt)
}

func TestHistory_SearchMatchesAnswer(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	_, err := h.Append(ctx, "favorite animal?", "Foxes, obviously")
	require.NoError(t, err)

	results, err := h.Search(ctx, "foxes")
	require.NoError(t, err)
	require.Len(t, results, 1, "match should be case-insensitive and check the answer column")
}

func TestHistory_SearchOnlyMatchingRows(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	for _, q := range []string{"A", "B about cats", "C"} {
		_, err := h.Append(ctx, q, "answer")
		require.NoError(t, err)
	}

	results, err := h.Search(ctx, "cat")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "B about cats", results[0].Question)
}

func TestHistory_SearchOrderNewestFirst(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	first, err := h.Append(ctx, "shared keyword one", "a1")
	require.NoError(t, err)
	second, err := h.Append(ctx, "shared keyword two", "a2")
	require.NoError(t, err)

	results, err := h.Search(ctx, "shared keyword")
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Timestamps have second precision, so ties break on id
	assert.Equal(t, second, results[0].ID)
	assert.Equal(t, first, results[1].ID)
}

func TestHistory_SearchEmptyKeyword(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	_, err := h.Append(ctx, "question", "answer")
	require.NoError(t, err)

	results, err := h.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestHistory_SearchLimit(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 3)

	for i := 0; i < 5; i++ {
		_, err := h.Append(ctx, "repeated question", "answer")
		require.NoError(t, err)
	}

	results, err := h.Search(ctx, "repeated")
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestHistory_AppendEmptyQuestion(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	_, err := h.Append(ctx, "  ", "answer")
	assert.Error(t, err)
}

func TestHistory_DeleteMostRecent(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	_, err := h.Append(ctx, "keep me", "a")
	require.NoError(t, err)
	last, err := h.Append(ctx, "remove me", "b")
	require.NoError(t, err)

	id, ok, err := h.DeleteMostRecent(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, last, id)

	results, err := h.Search(ctx, "remove me")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = h.Search(ctx, "keep me")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestHistory_DeleteMostRecentEmpty(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	_, ok, err := h.DeleteMostRecent(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHistory_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(newTestDB(t), 50)

	first, err := h.Append(ctx, "one", "a")
	require.NoError(t, err)

	_, ok, err := h.DeleteMostRecent(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	next, err := h.Append(ctx, "two", "b")
	require.NoError(t, err)
	assert.Greater(t, next, first, "AUTOINCREMENT must not reuse a deleted id")
}
