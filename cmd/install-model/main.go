package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/viant/afs"

	"github.com/Aleph-Alpha/embedding-service/pkg/config"
	"github.com/Aleph-Alpha/embedding-service/pkg/installer"
	"github.com/Aleph-Alpha/embedding-service/pkg/logger"
	"github.com/Aleph-Alpha/embedding-service/pkg/minio"
	"github.com/Aleph-Alpha/embedding-service/pkg/model"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "install-model",
		Usage: "Download the MiniLM sentence-transformer artifact into a local directory",
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
			&cli.StringFlag{
				Name:  "model",
				Usage: "Hugging Face repository id",
				Value: model.DefaultName,
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "target directory, created if absent",
				Value: model.DefaultInstallDir,
			},
			&cli.StringFlag{
				Name:  "revision",
				Usage: "branch, tag or commit",
				Value: installer.DefaultRevision,
			},
			&cli.StringFlag{
				Name:  "hub-url",
				Usage: "hub base URL",
				Value: installer.DefaultHubURL,
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "parallel downloads",
				Value: installer.DefaultConcurrency,
			},
			&cli.BoolFlag{
				Name:  "from-minio",
				Usage: "install from the MinIO mirror instead of the hub",
			},
			&cli.BoolFlag{
				Name:  "mirror-to-minio",
				Usage: "upload the installed files to MinIO afterwards",
			},
			&cli.BoolFlag{
				Name:  "skip-verify",
				Usage: "do not reopen and checksum the installed artifact",
			},
		},
		Action: installAction,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Model installation failed:", err)
		os.Exit(1)
	}
}

func installAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.Options{
		File:    cmd.String("config"),
		EnvFile: cmd.String("env"),
	})
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg.Installer)

	log := logger.NewLoggerClient(cfg.Logger)
	defer func() { _ = log.Zap.Sync() }()

	inst, err := newInstaller(cfg.Installer, log)
	if err != nil {
		return err
	}

	manifest, err := inst.Install(ctx)
	if err != nil {
		return err
	}

	if !cmd.Bool("skip-verify") {
		artifact, err := model.Open(cfg.Installer.Dir, model.OpenOptions{
			VerifyChecksums:   true,
			ExpectedDimension: model.Dimension,
		})
		if err != nil {
			return fmt.Errorf("installed artifact is not loadable: %w", err)
		}
		log.Info("Installed artifact verified", nil, map[string]interface{}{
			"dimension":           artifact.Dimension,
			"max_sequence_length": artifact.MaxSequenceLength,
			"weights":             artifact.WeightsFile,
		})
	}

	fmt.Printf("Model %s installed to %s (%d files, %d bytes)\n",
		manifest.Model, cfg.Installer.Dir, len(manifest.Files), manifest.TotalSize())
	return nil
}

// applyFlags lets explicit flags override file and environment settings.
func applyFlags(cmd *cli.Command, cfg *installer.Config) {
	if cmd.IsSet("model") {
		cfg.Model = cmd.String("model")
	}
	if cmd.IsSet("dir") {
		cfg.Dir = cmd.String("dir")
	}
	if cmd.IsSet("revision") {
		cfg.Revision = cmd.String("revision")
	}
	if cmd.IsSet("hub-url") {
		cfg.HubURL = cmd.String("hub-url")
	}
	if cmd.IsSet("concurrency") {
		cfg.Concurrency = int(cmd.Int("concurrency"))
	}
	if cmd.IsSet("from-minio") {
		cfg.FromMinio = cmd.Bool("from-minio")
	}
	if cmd.IsSet("mirror-to-minio") {
		cfg.MirrorToMinio = cmd.Bool("mirror-to-minio")
	}
}

func newInstaller(cfg installer.Config, log *logger.Logger) (*installer.Installer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fs := afs.New()

	var store *minio.Minio
	if cfg.FromMinio || cfg.MirrorToMinio {
		var err error
		store, err = minio.NewClient(cfg.Minio, log)
		if err != nil {
			return nil, err
		}
	}

	var source installer.Source = installer.NewHubSource(nil, cfg.HubURL, cfg.Model, cfg.Revision)
	if cfg.FromMinio {
		source = installer.NewMinioSource(store)
	}

	var mirror installer.Mirror
	if cfg.MirrorToMinio {
		mirror = store
	}

	return installer.New(cfg, fs, source, mirror, log), nil
}
