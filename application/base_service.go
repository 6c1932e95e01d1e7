package application

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MingxuanGame/OsuMods/base_service"
	"github.com/rs/zerolog"
)

func logger() *zerolog.Logger {
	return base_service.GetLogger("application")
}

// CreateSignalCancelContext returns a context cancelled on SIGINT or SIGTERM.
// The returned func releases the signal handler.
func CreateSignalCancelContext() (context.Context, func()) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-signalChan:
			logger().Info().Msg("Received interrupt signal. Canceling tasks...")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(signalChan)
		cancel()
	}
}
