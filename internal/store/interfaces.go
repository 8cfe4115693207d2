// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CookieRepository persists the API cookies of one host between client runs.
type CookieRepository interface {
	// LoadCookies returns the unexpired cookies stored for host.
	LoadCookies(ctx context.Context, host string) ([]*http.Cookie, error)
	// SaveCookies upserts cookies for host. Cookies that are already expired
	// or carry a negative MaxAge are deleted instead.
	SaveCookies(ctx context.Context, host string, cookies []*http.Cookie) error
}
