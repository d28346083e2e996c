package table

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openContentDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE content (
		url TEXT, guid TEXT, app_mode TEXT, owner_username TEXT,
		updated_time TEXT, title TEXT, name TEXT, description TEXT
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO content VALUES
		('http://a', 'g1', 'shiny', 'alice', '2021-03-01T00:00:00Z', 'Sales', 'sales-app', 'Quarterly'),
		('http://b', 'g2', 'rmd-static', 'bob', '2021-04-01T00:00:00Z', NULL, 'report', NULL)`)
	require.NoError(t, err)
	return db
}

func TestQuery(t *testing.T) {
	db := openContentDB(t)

	frame, err := Query(context.Background(), db, "SELECT url, guid, title, name FROM content ORDER BY guid")
	require.NoError(t, err)
	assert.Equal(t, []string{"url", "guid", "title", "name"}, frame.Fields())
	assert.Equal(t, 2, frame.Len())

	got, err := ToRecords(frame)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Sales", got[0].Title())
	assert.Equal(t, "report", got[1].Title())
	assert.Nil(t, got[1].Value("title"))
}

func TestQuery_Error(t *testing.T) {
	db := openContentDB(t)

	_, err := Query(context.Background(), db, "SELECT nope FROM missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}

func TestFrame_AppendRow(t *testing.T) {
	f := NewFrame("url", "guid", "url")
	assert.Equal(t, []string{"url", "guid"}, f.Fields())

	require.NoError(t, f.AppendRow("http://x", "g1"))
	require.Error(t, f.AppendRow("only-one"))
	assert.Equal(t, 1, f.Len())

	values, ok := f.Column("guid")
	require.True(t, ok)
	assert.Equal(t, []any{"g1"}, values)
}
