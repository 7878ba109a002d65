package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lubana/membership/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("remote addr", func(t *testing.T) {
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(requestFrom("192.168.1.1:12345")))
	})

	t.Run("first forwarded hop wins", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("real ip when no forwarded for", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	extract := httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)

	anon := requestFrom("10.0.0.1:1")
	require.Equal(t, "10.0.0.1", extract(anon))

	authed := anon.WithContext(httpx.WithPrincipal(context.Background(), httpx.Principal{UserID: "u1"}))
	require.Equal(t, "u1:10.0.0.1", extract(authed))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks once the burst is spent", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3})(okHandler)

		for i := range 3 {
			rec := serve(h, requestFrom("192.168.1.1:12345"))
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}

		rec := serve(h, requestFrom("192.168.1.1:12345"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("keys are tracked separately", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.1:1")).Code)
		require.Equal(t, http.StatusTooManyRequests, serve(h, requestFrom("192.168.1.1:1")).Code)
		require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.2:1")).Code)
	})

	t.Run("empty key is let through", func(t *testing.T) {
		none := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, none)(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, serve(h, requestFrom("1.1.1.1:1")).Code)
		}
	})
}

func TestRateLimitsFromEnv(t *testing.T) {
	env := map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "50",
		"RATELIMIT_STRICT_WINDOW_SEC": "10",
		"RATELIMIT_STRICT_BURST":      "7",
		"RATELIMIT_PUBLIC_BURST":      "-1",
	}
	limits := httpx.RateLimitsFromEnv(func(k string) string { return env[k] })

	require.Equal(t, 50, limits.Strict.RequestsPerWindow)
	require.Equal(t, 10*time.Second, limits.Strict.Window)
	require.Equal(t, 7, limits.Strict.Burst)
	require.Equal(t, httpx.DefaultRateLimits().Public, limits.Public)
}

func TestDefaultRateLimitsOrdering(t *testing.T) {
	l := httpx.DefaultRateLimits()
	require.Less(t, l.Strict.RequestsPerWindow, l.Moderate.RequestsPerWindow)
	require.Less(t, l.Moderate.RequestsPerWindow, l.Lenient.RequestsPerWindow)
	require.Less(t, l.Lenient.RequestsPerWindow, l.Public.RequestsPerWindow)
}
