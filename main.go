package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "orgchart/internal/config"
	router "orgchart/internal/http"
	"orgchart/internal/http/handlers"
	"orgchart/internal/repositories"
	"orgchart/internal/services"
	"orgchart/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger := utils.NewLogger(env.LogLevel, env.LogFormat)
	defer func() { _ = logger.Sync() }()

	if err := env.CheckJWTSecret(); err != nil {
		logger.Fatal("refusing to start", zap.Error(err))
	}

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		logger.Fatal("database connection failed", zap.String("host", env.DBHost), zap.Error(err))
	}
	defer db.Close()

	if env.MigrateOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := intconfig.Migrate(ctx, db)
		cancel()
		if err != nil {
			logger.Fatal("schema migration failed", zap.Error(err))
		}
		logger.Info("schema applied")
	} else if missing, err := intconfig.MissingTables(context.Background(), db, intconfig.SchemaTables); err == nil && len(missing) > 0 {
		logger.Warn("schema incomplete, set MIGRATE_ON_START=true to create it", zap.Strings("missing_tables", missing))
	}

	departments := repositories.DepartmentRepository{DB: db}
	jobs := repositories.JobRepository{DB: db}
	persons := repositories.PersonRepository{DB: db}
	tokens := services.TokenIssuer{
		Secret: []byte(env.JWTSecret),
		Issuer: env.JWTIssuer,
		TTL:    env.JWTTTL,
	}

	deps := handlers.Deps{
		DB:          db,
		Departments: services.DepartmentService{Departments: departments, PersonRepo: persons, Logger: logger},
		Jobs:        services.JobService{Jobs: jobs, PersonRepo: persons, Logger: logger},
		Persons:     services.PersonService{Persons: persons, Logger: logger},
		Auth:        services.AuthService{Users: repositories.UserRepository{DB: db}, Tokens: tokens, Logger: logger},
		Roster:      services.RosterService{Departments: departments, Persons: persons, Logger: logger},
		Logger:      logger,
	}

	r := router.NewRouter(deps, router.RouterOptions{
		Tokens:             tokens,
		Logger:             logger,
		CORSAllowedOrigins: env.CORSAllowedOrigins,
		AuthRatePerMinute:  env.AuthRatePerMinute,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
