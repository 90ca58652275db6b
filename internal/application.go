package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/xandos/internal/config"
	"github.com/rocketscienceinc/xandos/internal/render"
	"github.com/rocketscienceinc/xandos/internal/session"
	"github.com/rocketscienceinc/xandos/internal/viewmodel"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play runs one game session reading moves from in and drawing on out.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	renderer, err := render.New(out, conf.Render.Profile)
	if err != nil {
		return fmt.Errorf("could not create renderer: %w", err)
	}

	palette := viewmodel.Palette{
		Background: conf.Render.BackgroundColor,
		Highlight:  conf.Render.HighlightColor,
	}

	gameSession, err := session.New(logger, renderer, palette)
	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}

	log.Info("Starting game session", "sessionID", gameSession.ID().String())

	if err = gameSession.Play(ctx, in); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("Game session finished", "status", gameSession.Board().Status().String())

	return nil
}
