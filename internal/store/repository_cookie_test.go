package store

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCookieRepo(t *testing.T) (*cookieRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &cookieRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock, db
}

var (
	selectCookies = regexp.QuoteMeta("SELECT name, value, path, domain, expires, secure, http_only FROM cookies")
	insertCookie  = regexp.QuoteMeta("INSERT INTO cookies")
	deleteCookie  = regexp.QuoteMeta("DELETE FROM cookies")
)

func TestLoadCookies_Success(t *testing.T) {
	repo, mock, db := newTestCookieRepo(t)
	defer db.Close()

	expires := fixedNow.Add(time.Hour).Unix()
	rows := sqlmock.NewRows(cookieColumns).
		AddRow("INSTANCE", "inst-1", "/", "", nil, false, false).
		AddRow("session", "s3cr3t", "/", "", expires, false, true)

	mock.ExpectQuery(selectCookies).
		WithArgs("localhost", fixedNow.Unix()).
		WillReturnRows(rows)

	cookies, err := repo.LoadCookies(context.Background(), "localhost")
	require.NoError(t, err)
	require.Len(t, cookies, 2)

	assert.Equal(t, "INSTANCE", cookies[0].Name)
	assert.Equal(t, "inst-1", cookies[0].Value)
	assert.True(t, cookies[0].Expires.IsZero())

	assert.Equal(t, "session", cookies[1].Name)
	assert.True(t, cookies[1].HttpOnly)
	assert.Equal(t, expires, cookies[1].Expires.Unix())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCookies_Empty(t *testing.T) {
	repo, mock, db := newTestCookieRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectCookies).WillReturnRows(sqlmock.NewRows(cookieColumns))

	cookies, err := repo.LoadCookies(context.Background(), "localhost")
	require.NoError(t, err)
	assert.Empty(t, cookies)
}

func TestLoadCookies_QueryError(t *testing.T) {
	repo, mock, db := newTestCookieRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectCookies).WillReturnError(errors.New("disk I/O error"))

	_, err := repo.LoadCookies(context.Background(), "localhost")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLoadCookies_ScanError(t *testing.T) {
	repo, mock, db := newTestCookieRepo(t)
	defer db.Close()

	// wrong shape
	mock.ExpectQuery(selectCookies).WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("INSTANCE"))

	_, err := repo.LoadCookies(context.Background(), "localhost")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestSaveCookies_UpsertsAndDeletes(t *testing.T) {
	repo, mock, db := newTestCookieRepo(t)
	defer db.Close()

	cookies := []*http.Cookie{
		{Name: "INSTANCE", Value: "inst-1", Path: "/"},
		{Name: "session", Value: "", Path: "/", MaxAge: -1},
	}

	mock.ExpectBegin()
	mock.ExpectExec(insertCookie).
		WithArgs("localhost", "INSTANCE", "inst-1", "/", "", nil, false, false, fixedNow.Unix()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(deleteCookie).
		WithArgs("localhost", "session", "/").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SaveCookies(context.Background(), "localhost", cookies)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCookies_ExecErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestCookieRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(insertCookie).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.SaveCookies(context.Background(), "localhost", []*http.Cookie{{Name: "INSTANCE", Value: "x"}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCookies_BeginError(t *testing.T) {
	repo, mock, db := newTestCookieRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err := repo.SaveCookies(context.Background(), "localhost", []*http.Cookie{{Name: "INSTANCE"}})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSaveCookies_CommitError(t *testing.T) {
	repo, mock, db := newTestCookieRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(insertCookie).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := repo.SaveCookies(context.Background(), "localhost", []*http.Cookie{{Name: "INSTANCE", Value: "x"}})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}
