package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notifique/alert/internal/di"
)

type injector func(ctx context.Context, envfile *string) (*gin.Engine, func(), error)

var injectors = map[string]injector{
	"postgres": di.InjectPostgres,
	"dynamo":   di.InjectDynamo,
	"sqlite":   di.InjectSQLite,
}

func main() {

	backend := flag.String("backend", "postgres", "registry backend: postgres, dynamo or sqlite")
	envfile := flag.String("envfile", "", "optional .env file loaded before reading the environment")
	addr := flag.String("addr", ":8080", "address the server listens on")

	flag.Parse()

	inject, ok := injectors[*backend]

	if !ok {
		log.Fatalf("unknown backend %s", *backend)
	}

	var envfilePtr *string

	if *envfile != "" {
		envfilePtr = envfile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, cleanup, err := inject(ctx, envfilePtr)

	if err != nil {
		log.Fatalf("failed to build the server - %v", err)
	}

	defer cleanup()

	server := &http.Server{
		Addr:    *addr,
		Handler: engine,
	}

	go func() {
		slog.Info("alert server listening", "addr", *addr, "backend", *backend)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "reason", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown the server", "reason", err)
	}
}
