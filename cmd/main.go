package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/health"
	"google.golang.org/grpc/reflection"

	grpcrouter "github.com/dtroode/workgen-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/workgen-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/workgen-server/internal/api/http/context"
	httprouter "github.com/dtroode/workgen-server/internal/api/http/router"
	httpserver "github.com/dtroode/workgen-server/internal/api/http/server"
	"github.com/dtroode/workgen-server/internal/config"
	healthwatch "github.com/dtroode/workgen-server/internal/health"
	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
	"github.com/dtroode/workgen-server/internal/password"
	"github.com/dtroode/workgen-server/internal/repository/bolt"
	"github.com/dtroode/workgen-server/internal/repository/postgres"
	"github.com/dtroode/workgen-server/internal/server"
	"github.com/dtroode/workgen-server/internal/service"
	storage "github.com/dtroode/workgen-server/internal/storage/minio"
	"github.com/dtroode/workgen-server/internal/token"
	"github.com/dtroode/workgen-server/internal/tracing"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	healthCheckInterval = 10 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// store is an opened persistence backend.
type store struct {
	users   model.UserStore
	quizzes model.QuizStore
	pinger  model.Pinger
	close   func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	logAppVersion()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, buildVersion)
	if err != nil {
		logger.Fatal("failed to set up tracing", "error", err)
	}

	st, err := openStore(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Database.Driver)
	}
	defer st.close()
	logger.Info("storage initialized", "driver", cfg.Database.Driver)

	deps := healthwatch.Dependencies{{Name: cfg.Database.Driver, Pinger: st.pinger}}

	var archive model.Storage
	if cfg.Archive.Enabled {
		archiveClient, err := storage.NewClient(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize archive storage", "error", err)
		}
		archive = archiveClient
		deps = append(deps, healthwatch.Dependency{Name: "archive", Pinger: archiveClient})
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	hasher := password.NewBcrypt(cfg.Bcrypt.Cost)

	authService := service.NewAuth(st.users, hasher, tokenManager, logger)
	quizService := service.NewQuiz(st.quizzes, archive, logger)

	httpRouter := httprouter.New(authService, quizService, deps, tokenManager, httpctx.NewManager(), cfg.HTTP.RequireAuth, logger)
	httpServer := httpserver.NewHTTPServer(httpRouter.Register(), cfg.HTTP.Address, cfg.HTTP.ReadTimeout)

	healthServer := health.NewServer()
	grpcServer := registerGRPCServer(logger, healthServer, fmt.Sprintf(":%s", cfg.GRPC.Port))

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	servers := []model.Server{httpServer, grpcServer}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	watcher := healthwatch.NewWatcher(deps, healthServer, healthCheckInterval, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		watcher.Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	healthServer.Shutdown()
	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}
	logger.Info("shutdown complete")
}

func openStore(ctx context.Context, cfg config.Database) (*store, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		conn, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		return &store{
			users:   bolt.NewUserRepository(conn),
			quizzes: bolt.NewQuizRepository(conn),
			pinger:  conn,
			close:   conn.Close,
		}, nil
	default:
		conn, err := postgres.NewConection(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &store{
			users:   postgres.NewUserRepository(conn),
			quizzes: postgres.NewQuizRepository(conn),
			pinger:  conn,
			close:   conn.Close,
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(logger *logger.Logger, healthServer *health.Server, addr string) *grpcserver.GRPCServer {
	s := grpcrouter.New(healthServer, logger).Register()

	reflection.Register(s)

	return grpcserver.NewGRPCServer(s, addr)
}
