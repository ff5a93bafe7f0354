package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/df07/go-phong-raytracer/web/server"
)

// Serve the HTTP API until interrupted.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	webServer := server.NewServer(ctx.Int("port"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- webServer.Start()
	}()

	logger.Noticef("visit http://localhost:%d/api/scenes to list the scenes", ctx.Int("port"))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Noticef("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return webServer.Shutdown(shutdownCtx)
}
