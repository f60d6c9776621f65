package app

import (
	"context"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"listkeeper/internal/server/config"
	"listkeeper/internal/server/httpapi"
	"listkeeper/internal/server/identity"
	"listkeeper/internal/server/service"
	"listkeeper/internal/server/store/sqlite"
)

type App struct {
	version    string
	buildDate  string
	logger     *log.Logger
	server     *http.Server
	storeClose io.Closer
}

func New(version, buildDate string, logger *log.Logger) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	st, err := sqlite.New(cfg.DatabaseDSN, cfg.TodosTable, cfg.NotesTable)
	if err != nil {
		return nil, err
	}
	services := service.NewServices(st)
	decoder := identity.NewDecoder(cfg.TokenSecret)
	router := httpapi.NewRouter(services, decoder, logger, cfg.MaxRequestBytes)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &App{version: version, buildDate: buildDate, logger: logger, server: server, storeClose: st}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer func() { _ = a.storeClose.Close() }()

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Printf("http server error: %v", err)
		}
	}()

	a.logger.Printf("ListKeeper server %s (%s) listening on %s", a.version, a.buildDate, a.server.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}
