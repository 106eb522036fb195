package mw

import (
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Recoverer turns a panic in any handler into a generic 500 response.
func Recoverer(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				GetLogger(r.Context(), log).WithField("panic", rec).
					WithField("stack", string(debug.Stack())).
					Error("unhandled panic")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"internal server error"}`))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
