package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Aleph-Alpha/embedding-service/pkg/api"
	"github.com/Aleph-Alpha/embedding-service/pkg/cache"
	"github.com/Aleph-Alpha/embedding-service/pkg/config"
	"github.com/Aleph-Alpha/embedding-service/pkg/embedding"
	"github.com/Aleph-Alpha/embedding-service/pkg/logger"
	"github.com/Aleph-Alpha/embedding-service/pkg/metrics"
	"github.com/Aleph-Alpha/embedding-service/pkg/service"
	"github.com/Aleph-Alpha/embedding-service/pkg/tracer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "embedding-service",
		Usage: "Serve 384-dimensional MiniLM sentence embeddings over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML configuration file",
				Sources: cli.EnvVars("CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "dotenv file, ignored when missing",
				Value: ".env",
			},
		},
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Load the model and start the HTTP API (default)",
				Action: serveAction,
			},
			{
				Name:  "version",
				Usage: "Print the service version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Println(service.ServiceVersion)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.Options{
		File:    cmd.String("config"),
		EnvFile: cmd.String("env"),
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	app := fx.New(
		cfg.Supply(),
		fx.WithLogger(func(l *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap}
		}),
		logger.FXModule,
		fx.Provide(func(l *logger.Logger) tracer.Logger { return l }),
		tracer.FXModule,
		metrics.FXModule,
		cacheModule(cfg.Cache),
		embedding.FXModule,
		// service before api: the listener opens only after the model is loaded
		service.FXModule,
		api.FXModule,
	)

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	return app.Stop(stopCtx)
}

func cacheModule(cfg cache.Config) fx.Option {
	if !cfg.Enabled {
		return fx.Options()
	}
	return cache.FXModule
}
