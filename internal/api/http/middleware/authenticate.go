package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/workgen-server/internal/api/http/response"
	"github.com/dtroode/workgen-server/internal/apierror"
	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
)

// TokenParser resolves a user ID from a bearer token.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user ID into the request context.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.authenticateUser(bearerToken(r))
		if err != nil {
			m.logger.Info("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			response.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	})
}

func (m *Authenticate) authenticateUser(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, apierror.NewErrMissingAuthorizationToken()
	}

	userID, err := m.tokenParser.Parse(tokenString)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, apierror.NewErrInvalidAuthorizationToken()
	}

	return userID, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
