package repository

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialogapp/medialog-server/internal/errs"
)

// recordingQuerier captures the statements a repository issues without
// a live database, so tests can assert on the generated SQL.
type recordingQuerier struct {
	sql  []string
	args [][]any

	rowErr error
}

func (r *recordingQuerier) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	r.sql = append(r.sql, sql)
	r.args = append(r.args, arguments)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (r *recordingQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.sql = append(r.sql, sql)
	r.args = append(r.args, args)
	return nil, pgx.ErrNoRows
}

func (r *recordingQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	r.sql = append(r.sql, sql)
	r.args = append(r.args, args)
	return stubRow{err: r.rowErr}
}

type stubRow struct {
	err error
}

func (r stubRow) Scan(dest ...any) error { return r.err }

func TestAssignTagsStatementIsIdempotent(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewItemRepository(nil)

	err := repo.AssignTags(context.Background(), q, 7, []int64{1, 2})

	require.NoError(t, err)
	require.Len(t, q.sql, 1)
	assert.Contains(t, q.sql[0], "ON CONFLICT DO NOTHING")
	assert.Equal(t, []any{int64(7), []int64{1, 2}}, q.args[0])
}

func TestAssignCreatorsStatementIsIdempotent(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewItemRepository(nil)

	err := repo.AssignCreators(context.Background(), q, 7, []int64{3})

	require.NoError(t, err)
	require.Len(t, q.sql, 1)
	assert.Contains(t, q.sql[0], "ON CONFLICT DO NOTHING")
}

func TestUpdateStatementCoversEveryColumn(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewItemRepository(nil)

	title := "Dune Messiah"
	category := int64(2)
	user := int64(3)
	url := "https://example.com/dune.jpg"
	_, err := repo.Update(context.Background(), q, 7, UpdateItemParams{
		Title:      &title,
		CategoryID: &category,
		UserID:     &user,
		ImageURL:   &url,
	})

	require.NoError(t, err)
	require.Len(t, q.sql, 1)
	assert.Contains(t, q.sql[0], "title = $1")
	assert.Contains(t, q.sql[0], "category_id = $2")
	assert.Contains(t, q.sql[0], "user_id = $3")
	assert.Contains(t, q.sql[0], "image_url = $4")
	assert.Contains(t, q.sql[0], "WHERE id = $5")
	assert.Equal(t, []any{title, category, user, url, int64(7)}, q.args[0])
}

func TestUpdateUserIDOnly(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewItemRepository(nil)

	user := int64(2)
	_, err := repo.Update(context.Background(), q, 7, UpdateItemParams{UserID: &user})

	require.NoError(t, err)
	require.Len(t, q.sql, 1)
	assert.Contains(t, q.sql[0], "user_id = $1")
	assert.Contains(t, q.sql[0], "WHERE id = $2")
}

func TestUpdateMissingItem(t *testing.T) {
	q := &recordingQuerier{rowErr: pgx.ErrNoRows}
	repo := NewItemRepository(nil)

	title := "Dune"
	_, err := repo.Update(context.Background(), q, 9, UpdateItemParams{Title: &title})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, []string{"Item with id 9 not found"}, httpErr.Errors)
}
