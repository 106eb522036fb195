package mw

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type logCtxKeyType int

const logCtxKey logCtxKeyType = iota

type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// RequestLogger attaches a request-scoped entry to the context and logs
// every request once it completes.
func RequestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			entry := log.WithFields(logrus.Fields{
				"http.req.id":     uuid.NewString(),
				"http.req.method": r.Method,
				"http.req.path":   r.URL.Path,
			})
			rr := &responseRecorder{ResponseWriter: w}
			defer func() {
				entry.WithFields(logrus.Fields{
					"http.resp.took_ms": time.Since(start).Milliseconds(),
					"http.resp.status":  rr.status,
					"http.resp.bytes":   rr.bytes,
				}).Info("request complete")
			}()

			ctx := context.WithValue(r.Context(), logCtxKey, entry)
			next.ServeHTTP(rr, r.WithContext(ctx))
		})
	}
}

// GetLogger returns the request entry set by RequestLogger, or fallback
// when the request did not pass through it.
func GetLogger(ctx context.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	if entry, ok := ctx.Value(logCtxKey).(*logrus.Entry); ok {
		return entry
	}
	return fallback
}
