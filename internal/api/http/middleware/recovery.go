package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dtroode/workgen-server/internal/api/http/response"
	"github.com/dtroode/workgen-server/internal/apierror"
	"github.com/dtroode/workgen-server/internal/logger"
)

// Recovery turns handler panics into 500 responses.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}
			m.logger.Error("Recovery middleware: handler panicked",
				"path", r.URL.Path,
				"panic", fmt.Sprint(p),
				"stack", string(debug.Stack()))
			response.Error(w, apierror.NewErrInternalServerError(fmt.Errorf("panic: %v", p)))
		}()

		next.ServeHTTP(w, r)
	})
}
