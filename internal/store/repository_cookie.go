package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/logger"
)

// cookieRepository is the SQLite-backed implementation of [CookieRepository].
type cookieRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCookieRepository constructs a [CookieRepository] over db.
func NewCookieRepository(db *DB, logger *logger.Logger) CookieRepository {
	logger.Debug().Msg("creating cookie repository")
	return &cookieRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *cookieRepository) LoadCookies(ctx context.Context, host string) ([]*http.Cookie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadCookiesQuery(host, r.now())
	if err != nil {
		log.Err(err).Str("func", "*cookieRepository.LoadCookies").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cookieRepository.LoadCookies").Str("host", host).Msg("failed to query cookies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cookies []*http.Cookie
	for rows.Next() {
		var (
			c       http.Cookie
			expires sql.NullInt64
		)
		if err = rows.Scan(&c.Name, &c.Value, &c.Path, &c.Domain, &expires, &c.Secure, &c.HttpOnly); err != nil {
			log.Err(err).Str("func", "*cookieRepository.LoadCookies").Msg("failed to scan cookie row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if expires.Valid {
			c.Expires = time.Unix(expires.Int64, 0)
		}
		cookies = append(cookies, &c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*cookieRepository.LoadCookies").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cookies, nil
}

func (r *cookieRepository) SaveCookies(ctx context.Context, host string, cookies []*http.Cookie) error {
	log := logger.FromContext(ctx)
	now := r.now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*cookieRepository.SaveCookies").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, c := range cookies {
		var (
			query string
			args  []any
		)

		expires, expired := cookieExpiry(c, now)
		if expired {
			query, args, err = buildDeleteCookieQuery(host, c)
		} else {
			query, args, err = buildUpsertCookieQuery(host, c, expires, now)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "*cookieRepository.SaveCookies").
				Str("host", host).
				Str("cookie", c.Name).
				Bool("expired", expired).
				Msg("failed to write cookie")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*cookieRepository.SaveCookies").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
