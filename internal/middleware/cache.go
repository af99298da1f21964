package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// bodyRecorder buffers the response body while forwarding it to the client so
// a successful JSON response can be stored after the handler returns.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheJSON caches successful GET responses of a route in Redis under the
// given key for ttl. Used on the public reviews listing, which is read far
// more often than it changes. With no Redis client the middleware is a
// pass-through; cached entries simply age out rather than being invalidated
// on writes.
func CacheJSON(rdb *redis.Client, key string, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rdb == nil || c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			if rec.status == http.StatusOK {
				_ = rdb.Set(ctx, key, rec.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}
