package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
	idempotencyPrefix = "idempotency:"
)

// storedResponse is the replayable part of a completed request.
type storedResponse struct {
	StatusCode  int             `json:"status_code"`
	ContentType string          `json:"content_type"`
	Body        json.RawMessage `json:"body"`
}

// captureWriter tees the response body so it can be stored for replay.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response for mutating requests
// that repeat an Idempotency-Key within 24 hours. Without the header, or
// with redis unavailable, requests pass through untouched; a booking retry
// then falls back on the engine's own conflict handling.
func IdempotencyMiddleware(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := idempotencyPrefix + key

		if data, err := client.Get(ctx, cacheKey).Bytes(); err == nil {
			var stored storedResponse
			if json.Unmarshal(data, &stored) == nil {
				c.Header("Idempotency-Replayed", "true")
				c.Data(stored.StatusCode, stored.ContentType, stored.Body)
				c.Abort()
				return
			}
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		// 5xx responses are not stored: the caller should be able to retry
		// them with the same key.
		status := c.Writer.Status()
		if status >= 200 && status < 500 {
			data, err := json.Marshal(storedResponse{
				StatusCode:  status,
				ContentType: c.Writer.Header().Get("Content-Type"),
				Body:        w.body.Bytes(),
			})
			if err == nil {
				_ = client.Set(ctx, cacheKey, data, idempotencyTTL).Err()
			}
		}
	}
}
