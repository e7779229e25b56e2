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

	apicontext "github.com/imageshare/imageshare-server/internal/api/http/context"
	"github.com/imageshare/imageshare-server/internal/api/http/router"
	httpserver "github.com/imageshare/imageshare-server/internal/api/http/server"
	"github.com/imageshare/imageshare-server/internal/config"
	"github.com/imageshare/imageshare-server/internal/logger"
	"github.com/imageshare/imageshare-server/internal/model"
	"github.com/imageshare/imageshare-server/internal/repository/store"
	"github.com/imageshare/imageshare-server/internal/server"
	"github.com/imageshare/imageshare-server/internal/service"
	"github.com/imageshare/imageshare-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	conn, err := store.NewConnection(ctx, store.Params{
		Kind:            store.Kind(cfg.Database.Kind),
		Host:            cfg.Database.Host,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		Path:            cfg.Database.Path,
		Memory:          cfg.Database.Memory,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetimeMin) * time.Minute,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer conn.Close()

	if !conn.HasSchema(ctx) {
		logger.Info("schema missing, creating")
		if err := conn.CreateSchema(ctx); err != nil {
			logger.Fatal("failed to create schema", "error", err)
		}
	}
	if cfg.Database.Populate {
		if err := conn.Populate(ctx); err != nil {
			logger.Fatal("failed to populate fixtures", "error", err)
		}
	}

	userRepo := store.NewUserRepository(conn)
	postRepo := store.NewPostRepository(conn)
	followRepo := store.NewFollowRepository(conn)
	likeRepo := store.NewLikeRepository(conn)
	graphRepo := store.NewGraphRepository(conn)

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.ExpiryMinutes)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}
	ctxMgr := apicontext.NewManager()

	userService := service.NewUser(userRepo, tokenManager, logger)
	relationshipService := service.NewRelationship(userRepo, postRepo, followRepo, likeRepo, logger)
	graphService := service.NewGraph(userRepo, followRepo, graphRepo, logger)

	httpSrv := registerHTTPServer(
		logger,
		userService,
		relationshipService,
		graphService,
		tokenManager,
		ctxMgr,
		fmt.Sprintf(":%s", cfg.HTTP.Port),
	)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpSrv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpSrv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	userService *service.User,
	relationshipService *service.Relationship,
	graphService *service.Graph,
	tokenManager model.TokenManager,
	ctxMgr model.ContextManager,
	addr string,
) *httpserver.HTTPServer {
	r := router.New(userService, relationshipService, graphService, tokenManager, ctxMgr, logger)
	engine := r.Register()

	return httpserver.NewHTTPServer(engine, addr)
}
