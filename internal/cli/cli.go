package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ytget/yt-fetch/internal/config"
	controller "github.com/ytget/yt-fetch/internal/controller/http"
	"github.com/ytget/yt-fetch/internal/download"
)

// Version is reported by --version
var Version = "dev"

// FlagConfig names the optional TOML settings file
const FlagConfig = "config"

// shutdownTimeout bounds graceful shutdown of the HTTP API
const shutdownTimeout = 10 * time.Second

// Run runs the CLI application. With no arguments it downloads the built-in
// URL into "downloads/".
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, newFetcher)
}

type fetcherFactory func(settings *config.Settings, logger *slog.Logger) (download.Fetcher, error)

func run(ctx context.Context, args []string, factory fetcherFactory) error {
	var loggerCfg config.Logger
	var serverCfg config.Server
	var configPath string
	var logger *slog.Logger
	settings := config.NewSettings()

	flags := append(loggerCfg.Flags(), settings.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        FlagConfig,
		Usage:       "TOML file with default settings",
		Destination: &configPath,
		Sources:     cli.EnvVars("YT_FETCH_CONFIG"),
	})

	app := &cli.Command{
		Name:    "yt-fetch",
		Usage:   "Download a single video into a local folder",
		Version: Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := loadConfigFile(configPath, settings, c); err != nil {
				return err
			}
			return fetch(ctx, settings, logger, factory)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Serve POST /api/download, streaming each fetched video back",
				Flags: serverCfg.Flags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := loadConfigFile(configPath, settings, c); err != nil {
						return err
					}
					return serve(ctx, settings, &serverCfg, logger, factory)
				},
			},
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("yt-fetch failed", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// loadConfigFile overlays the TOML file at path, if any, under explicitly set flags
func loadConfigFile(path string, settings *config.Settings, c *cli.Command) error {
	if path == "" {
		return nil
	}
	file, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	settings.Overlay(file, c.IsSet)
	return nil
}

// newService validates settings and builds the orchestrator
func newService(settings *config.Settings, logger *slog.Logger, factory fetcherFactory) (*download.Service, error) {
	if err := settings.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid settings")
	}
	logger.Debug("settings", slog.Any("settings", settings))

	fetcher, err := factory(settings, logger)
	if err != nil {
		return nil, err
	}

	service := download.NewService(fetcher)
	service.SetLogger(logger)
	service.SetFormatPreference(settings.Format)
	service.SetFilenameTemplate(settings.FilenameTemplate)
	service.SetProxy(settings.Proxy)
	return service, nil
}

// fetch validates settings and performs the one download
func fetch(ctx context.Context, settings *config.Settings, logger *slog.Logger, factory fetcherFactory) error {
	service, err := newService(settings, logger, factory)
	if err != nil {
		return err
	}

	// collaborator errors are returned as-is
	_, err = service.DownloadVideo(ctx, settings.URL, settings.OutputDir)
	return err
}

// serve runs the HTTP API until ctx is cancelled
func serve(ctx context.Context, settings *config.Settings, serverCfg *config.Server, logger *slog.Logger, factory fetcherFactory) error {
	service, err := newService(settings, logger, factory)
	if err != nil {
		return err
	}

	server, err := controller.NewServer(service,
		controller.WithAddr(serverCfg.Addr),
		controller.WithWorkDir(serverCfg.WorkDir),
		controller.WithVersion(Version),
		controller.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", slog.String("addr", serverCfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down HTTP server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shut down HTTP server")
	}
	return nil
}

// newFetcher builds the backend named in settings
func newFetcher(settings *config.Settings, logger *slog.Logger) (download.Fetcher, error) {
	switch settings.Backend {
	case download.BackendYTDLP:
		f := download.NewYTDLPFetcher(settings.Install)
		f.SetLogger(logger)
		return f, nil
	case download.BackendNative:
		f := download.NewNativeFetcher()
		f.SetLogger(logger)
		return f, nil
	default:
		return nil, goerr.New("unknown backend", goerr.V("backend", settings.Backend))
	}
}
