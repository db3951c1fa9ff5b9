package middlewares

import (
	"fmt"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
	"hospital-booking-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic inside a handler into a 500 response. A panic
// with http.ErrAbortHandler is re-raised so the server drops the connection.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Error("Middlewares.ErrorHandler recovered panic",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("path", r.URL.Path),
				zap.Error(err),
				zap.Stack("stack"),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRecoveredPanic(err))
		}()
		next.ServeHTTP(w, r)
	})
}
