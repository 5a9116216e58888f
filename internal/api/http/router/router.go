package router

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dtroode/workgen-server/internal/api/http/handler"
	"github.com/dtroode/workgen-server/internal/api/http/middleware"
	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
)

// Router wires HTTP handlers and middleware.
type Router struct {
	authService    handler.AuthService
	quizService    handler.QuizService
	pinger         model.Pinger
	tokenParser    middleware.TokenParser
	contextManager model.ContextManager
	requireAuth    bool
	logger         *logger.Logger
}

// New creates a Router. When requireAuth is set, quiz routes need a bearer token.
func New(
	authService handler.AuthService,
	quizService handler.QuizService,
	pinger model.Pinger,
	tokenParser middleware.TokenParser,
	contextManager model.ContextManager,
	requireAuth bool,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		quizService:    quizService,
		pinger:         pinger,
		tokenParser:    tokenParser,
		contextManager: contextManager,
		requireAuth:    requireAuth,
		logger:         logger,
	}
}

// Register builds the handler tree.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()

	r.registerHealthRoutes(mux)
	r.registerAuthRoutes(mux)
	r.registerQuizRoutes(mux)

	logging := middleware.NewLogging(r.logger)
	recovery := middleware.NewRecovery(r.logger)

	return otelhttp.NewHandler(recovery.Handle(logging.Handle(mux)), "workgen-http")
}

func (r *Router) registerHealthRoutes(mux *http.ServeMux) {
	h := handler.NewHealth(r.pinger, r.logger)
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /healthz", h.Healthz)
}

func (r *Router) registerAuthRoutes(mux *http.ServeMux) {
	h := handler.NewAuth(r.authService, r.logger)
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
}

func (r *Router) registerQuizRoutes(mux *http.ServeMux) {
	h := handler.NewQuiz(r.quizService, r.contextManager, r.logger)

	protect := func(next http.HandlerFunc) http.Handler { return next }
	if r.requireAuth {
		authenticate := middleware.NewAuthenticate(r.tokenParser, r.contextManager, r.logger)
		protect = func(next http.HandlerFunc) http.Handler { return authenticate.Handle(next) }
	}

	mux.Handle("POST /api/quiz/create", protect(h.Create))
	mux.Handle("GET /api/quiz/creator/{creatorName}", protect(h.FindByCreator))
	mux.Handle("GET /api/quiz/{id}", protect(h.FindByID))
	mux.Handle("DELETE /api/quiz/delete/{id}", protect(h.DeleteByID))
}
