package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)

func newMockStore(t *testing.T) (*MYSQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	ms := NewWithDB(sqlx.NewDb(db, "sqlmock"))
	ms.now = func() time.Time { return testNow }
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		ms.Close()
	})
	return ms, mock
}

func TestIsErrUniqueViolation(t *testing.T) {
	ms := &MYSQLStore{}

	dup := fmt.Errorf("failed to add family: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	assert.True(t, ms.IsErrUniqueViolation(dup))
	assert.False(t, ms.IsErrUniqueViolation(&mysql.MySQLError{Number: 1213}))
	assert.False(t, ms.IsErrUniqueViolation(errors.New("boom")))
	assert.False(t, ms.IsErrUniqueViolation(nil))
}

func TestNowFrozenForTests(t *testing.T) {
	ms, _ := newMockStore(t)
	assert.Equal(t, testNow, ms.Now())

	live := &MYSQLStore{}
	assert.WithinDuration(t, time.Now(), live.Now(), time.Second)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, escapeLike("50% off_now"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

func TestPing(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	assert.NoError(t, ms.Ping(t.Context()))
}
