package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. Every request gets
// a fresh [TraceIDHeader] unless the caller already set one. A nil jar
// leaves cookie handling to resty's default jar.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:1337", 30*time.Second, jar)
//	resp, err := client.R().Get("/api/status")
func NewHTTPClient(baseURL string, timeout time.Duration, jar http.CookieJar) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	if jar != nil {
		client.SetCookieJar(jar)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) == "" {
			r.SetHeader(TraceIDHeader, NewTraceID())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
