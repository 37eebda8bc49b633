package migration

import (
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"sql/000001_first.up.sql":    {Data: []byte("CREATE TABLE first (id INT);")},
		"sql/000002_second.up.sql":   {Data: []byte("CREATE TABLE second (id INT);")},
		"sql/000002_second.down.sql": {Data: []byte("DROP TABLE second;")},
		"sql/README.md":              {Data: []byte("notes")},
	}
}

func TestRun_AppliesOnlyPendingMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE second (id INT);")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = Run(db, testFS(), "sql")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_RollsBackFailedMigration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE first (id INT);")).
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err = Run(db, testFS(), "sql")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollect_SortsAndSkipsForeignFiles(t *testing.T) {
	migrations, err := collect(testFS(), "sql")
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].version)
	assert.Equal(t, "first", migrations[0].name)
	assert.Equal(t, 2, migrations[1].version)
	assert.Equal(t, "sql/000002_second.up.sql", migrations[1].path)
}

func TestEmbeddedMigrations(t *testing.T) {
	migrations, err := collect(embedded, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, "create_notifications", migrations[0].name)
}
