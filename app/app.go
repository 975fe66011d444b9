package app

import (
	"os"
	"os/signal"
	"syscall"

	"gigflow-api/internal/controller"
	"gigflow-api/internal/repo"
	"gigflow-api/internal/service"
	"gigflow-api/pkg/config"
	"gigflow-api/pkg/http_server"
	"gigflow-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func runMigrations(postgresDB *postgres.Postgres, cfg *config.Config, log *zap.Logger) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: cfg.DatabaseName})
	if err != nil {
		log.Fatal("migration driver init failed", zap.Error(err))
	}

	migrations, err := migrate.NewWithDatabaseInstance(cfg.MigrationsUrl, cfg.DatabaseName, driver)
	if err != nil {
		log.Fatal("migration setup failed", zap.Error(err))
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Info("no change made by migration scripts")
		} else {
			log.Fatal("migrations failed", zap.Error(err))
		}
	}
}

func Run() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	log.Info("connecting database")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer postgresDB.Close()

	log.Info("running migrations")
	runMigrations(postgresDB, cfg, log)

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, log)
	handler := echo.New()

	log.Info("setup routes")
	controller.SetupRoutesHandlers(handler, services)

	log.Info("starting server", zap.String("address", cfg.ServerAddress))
	httpServer := http_server.New(handler, cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("got signal", zap.String("signal", s.String()))
	case err = <-httpServer.Notify():
		log.Error("server stopped", zap.Error(err))
	}

	log.Info("shutting down")
	if err := httpServer.Shutdown(); err != nil {
		log.Error("shutdown error", zap.Error(err))
	} else {
		log.Info("successful shutdown")
	}
}
