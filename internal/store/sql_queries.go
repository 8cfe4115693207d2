package store

import (
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const cookiesTable = "cookies"

// sqlite uses "?" placeholders, which is squirrel's default.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// cookieColumns is the column order scanned by scanCookie.
var cookieColumns = []string{"name", "value", "path", "domain", "expires", "secure", "http_only"}

func buildLoadCookiesQuery(host string, now time.Time) (string, []any, error) {
	return sqlb.
		Select(cookieColumns...).
		From(cookiesTable).
		Where(sq.Eq{"host": host}).
		Where(sq.Or{sq.Eq{"expires": nil}, sq.Gt{"expires": now.Unix()}}).
		OrderBy("name").
		ToSql()
}

func buildUpsertCookieQuery(host string, c *http.Cookie, expires *int64, now time.Time) (string, []any, error) {
	return sqlb.
		Insert(cookiesTable).
		Columns("host", "name", "value", "path", "domain", "expires", "secure", "http_only", "updated_at").
		Values(host, c.Name, c.Value, cookiePath(c), c.Domain, expires, c.Secure, c.HttpOnly, now.Unix()).
		Suffix(`ON CONFLICT (host, name, path) DO UPDATE SET
			value = excluded.value,
			domain = excluded.domain,
			expires = excluded.expires,
			secure = excluded.secure,
			http_only = excluded.http_only,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildDeleteCookieQuery(host string, c *http.Cookie) (string, []any, error) {
	return sqlb.
		Delete(cookiesTable).
		Where(sq.Eq{"host": host, "name": c.Name, "path": cookiePath(c)}).
		ToSql()
}

func cookiePath(c *http.Cookie) string {
	if c.Path == "" {
		return "/"
	}
	return c.Path
}

// cookieExpiry returns the absolute expiry of c as unix seconds, nil for a
// session cookie, and expired=true when c asks to be removed.
func cookieExpiry(c *http.Cookie, now time.Time) (expires *int64, expired bool) {
	switch {
	case c.MaxAge < 0:
		return nil, true
	case c.MaxAge > 0:
		unix := now.Add(time.Duration(c.MaxAge) * time.Second).Unix()
		return &unix, false
	case !c.Expires.IsZero():
		if !c.Expires.After(now) {
			return nil, true
		}
		unix := c.Expires.Unix()
		return &unix, false
	default:
		return nil, false
	}
}
