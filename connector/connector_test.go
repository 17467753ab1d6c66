package connector

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/sqlb/dialect"
	"github.com/Konsultn-Engineering/sqlb/query"
	"github.com/Konsultn-Engineering/sqlb/visitor"
)

func newMock(t *testing.T, kind dialect.Kind, opts ...Option) (*Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewConnection(db, kind, opts...), mock
}

func TestExec(t *testing.T) {
	conn, mock := newMock(t, dialect.SQLServer)
	mock.ExpectExec("DELETE TOP (2) FROM Customers WHERE Country = 'Norway'").
		WillReturnResult(sqlmock.NewResult(0, 2))

	res, err := conn.Exec(context.Background(),
		conn.Builder().DeleteFrom("Customers").Where("Country").Eq("Norway").Limit(2))
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuery(t *testing.T) {
	conn, mock := newMock(t, dialect.Oracle)
	mock.ExpectQuery("SELECT CustomerName FROM Customers WHERE Country = 'Norway' AND ROWNUM <= 2").
		WillReturnRows(sqlmock.NewRows([]string{"CustomerName"}).AddRow("Cardinal").AddRow("Wolski"))

	rows, err := conn.Query(context.Background(),
		conn.Builder().SelectLimit(2, "CustomerName").From("Customers").Where("Country").Eq("Norway"))
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Cardinal", "Wolski"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecBuildError(t *testing.T) {
	conn, mock := newMock(t, dialect.Oracle)

	_, err := conn.Exec(context.Background(), conn.Builder().SelectAllLimit(1).From("Customers"))
	assert.ErrorIs(t, err, visitor.ErrRowLimitWithoutWhere)

	_, err = conn.Query(context.Background(), nil)
	assert.Error(t, err)

	assert.Equal(t, uint64(1), conn.Stats().Failures)
	assert.Equal(t, uint64(0), conn.Stats().Statements)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecDriverError(t *testing.T) {
	conn, mock := newMock(t, dialect.MySQL)
	boom := errors.New("table is locked")
	mock.ExpectExec("DROP TABLE Shippers").WillReturnError(boom)

	_, err := conn.Exec(context.Background(), conn.Builder().DropTable("Shippers"))
	assert.ErrorIs(t, err, boom)

	stats := conn.Stats()
	assert.Equal(t, uint64(1), stats.Statements)
	assert.Equal(t, uint64(1), stats.Failures)
}

func TestExecLogsStatements(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conn, mock := newMock(t, dialect.MySQL, WithLogger(logger), WithQueryTimeout(time.Second))
	mock.ExpectExec("CREATE DATABASE testDB").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := conn.Exec(context.Background(), conn.Builder().CreateDatabase("testDB"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), `sql="CREATE DATABASE testDB"`)
	assert.Contains(t, out.String(), "dialect=mysql")
}

func TestBuilderSharesDialect(t *testing.T) {
	conn, _ := newMock(t, dialect.MSAccess)
	assert.Equal(t, dialect.MSAccess, conn.Dialect())

	sql, err := conn.Builder().SelectAllLimit(3).From("Customers").Build()
	require.NoError(t, err)
	assert.Equal(t, "SELECT TOP 3 * FROM Customers", sql)

	plain := NewConnection(conn.DB(), "")
	assert.Equal(t, dialect.Default, plain.Dialect())
}

func TestOpenNoDriver(t *testing.T) {
	for _, kind := range []dialect.Kind{dialect.Oracle, dialect.MSAccess} {
		_, err := Open(context.Background(), Config{Dialect: kind, Host: "localhost"})
		assert.ErrorIs(t, err, ErrNoDriver, string(kind))
	}

	_, err := Open(context.Background(), Config{Dialect: dialect.MySQL})
	assert.Error(t, err)
}

// sqlmockProvider opens the sqlmock driver, which is keyed by DSN.
type sqlmockProvider struct {
	dsn string
}

func (sqlmockProvider) DriverName() string           { return "sqlmock" }
func (sqlmockProvider) DefaultPort() int             { return 1521 }
func (p sqlmockProvider) DSN(Config) (string, error) { return p.dsn, nil }

func TestOpenRegisteredProvider(t *testing.T) {
	db, mock, err := sqlmock.NewWithDSN("oracle_open_test", sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	Register(dialect.Oracle, sqlmockProvider{dsn: "oracle_open_test"})
	t.Cleanup(func() {
		globalManager.mu.Lock()
		delete(globalManager.providers, dialect.Oracle)
		globalManager.mu.Unlock()
	})

	mock.ExpectExec("UPDATE Customers SET City = 'Oslo' WHERE CustomerID = 1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	conn, err := Open(context.Background(), Config{
		Dialect:            dialect.Oracle,
		Host:               "orahost",
		Retry:              &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond},
		StatementCacheSize: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, dialect.Oracle, conn.Dialect())

	_, err = conn.Exec(context.Background(),
		conn.Builder().Update("Customers").Set("City", "Oslo").Where(query.Col("CustomerID").Eq(1)))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetry(t *testing.T) {
	fail := errors.New("refused")

	calls := 0
	err := retry(context.Background(), &RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond}, func(context.Context) error {
		calls++
		if calls < 3 {
			return fail
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)

	calls = 0
	err = retry(context.Background(), &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}, func(context.Context) error {
		calls++
		return fail
	})
	assert.ErrorIs(t, err, fail)
	assert.Equal(t, 3, calls)

	calls = 0
	err = retry(context.Background(), nil, func(context.Context) error {
		calls++
		return fail
	})
	assert.ErrorIs(t, err, fail)
	assert.Equal(t, 1, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = retry(ctx, &RetryConfig{MaxRetries: 5, BaseDelay: time.Hour}, func(context.Context) error { return fail })
	assert.ErrorIs(t, err, context.Canceled)
}
