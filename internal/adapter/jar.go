package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/MKhiriev/go-notes-client/internal/logger"
	"golang.org/x/net/publicsuffix"
)

// persistentJar is an http.CookieJar that writes every cookie the API host
// sets through to a CookieStore and seeds itself from it on creation. This
// keeps the INSTANCE binding and the login session across client restarts.
type persistentJar struct {
	jar    *cookiejar.Jar
	store  CookieStore
	host   string
	logger *logger.Logger
}

func newPersistentJar(ctx context.Context, base *url.URL, store CookieStore, log *logger.Logger) (*persistentJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	p := &persistentJar{jar: jar, store: store, host: base.Hostname(), logger: log}
	if store == nil {
		return p, nil
	}

	cookies, err := store.LoadCookies(ctx, p.host)
	if err != nil {
		return nil, fmt.Errorf("load stored cookies: %w", err)
	}
	if len(cookies) > 0 {
		jar.SetCookies(base, cookies)
		log.Debug().Str("host", p.host).Int("count", len(cookies)).Msg("restored cookies")
	}

	return p, nil
}

func (p *persistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	p.jar.SetCookies(u, cookies)

	if p.store == nil || u.Hostname() != p.host || len(cookies) == 0 {
		return
	}

	if err := p.store.SaveCookies(p.logger.WithContext(context.Background()), p.host, cookies); err != nil {
		p.logger.Warn().Err(err).Str("host", p.host).Msg("failed to persist cookies")
	}
}

func (p *persistentJar) Cookies(u *url.URL) []*http.Cookie {
	return p.jar.Cookies(u)
}
