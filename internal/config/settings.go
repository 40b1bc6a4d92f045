package config

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ytget/yt-fetch/internal/download"
	"github.com/ytget/yt-fetch/internal/model"
)

// Default values
const (
	DefaultURL              = "https://www.tiktok.com/@aehaunted2.0/video/7538796459722886422"
	DefaultOutputDir        = model.DefaultOutputDirectory
	DefaultFormat           = model.DefaultFormatPreference
	DefaultFilenameTemplate = model.DefaultFilenameTemplate
	DefaultBackend          = download.BackendYTDLP
)

// Flag names
const (
	FlagURL              = "url"
	FlagOutput           = "output"
	FlagFormat           = "format"
	FlagFilenameTemplate = "filename-template"
	FlagBackend          = "backend"
	FlagProxy            = "proxy"
	FlagInstall          = "install"
)

// Settings holds the configuration of a single fetch
type Settings struct {
	URL              string `toml:"url"`
	OutputDir        string `toml:"output_dir"`
	Format           string `toml:"format"`
	FilenameTemplate string `toml:"filename_template"`
	Backend          string `toml:"backend"`
	Proxy            string `toml:"proxy"`
	Install          bool   `toml:"install"`
}

// NewSettings returns settings populated with the defaults
func NewSettings() *Settings {
	return &Settings{
		URL:              DefaultURL,
		OutputDir:        DefaultOutputDir,
		Format:           DefaultFormat,
		FilenameTemplate: DefaultFilenameTemplate,
		Backend:          DefaultBackend,
	}
}

// Flags returns CLI flags bound to the settings
func (s *Settings) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        FlagURL,
			Usage:       "Video URL to download",
			Value:       DefaultURL,
			Destination: &s.URL,
			Sources:     cli.EnvVars("YT_FETCH_URL"),
		},
		&cli.StringFlag{
			Name:        FlagOutput,
			Aliases:     []string{"o"},
			Usage:       "Output directory, created if missing",
			Value:       DefaultOutputDir,
			Destination: &s.OutputDir,
			Sources:     cli.EnvVars("YT_FETCH_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        FlagFormat,
			Aliases:     []string{"f"},
			Usage:       "Format preference passed to the downloader",
			Value:       DefaultFormat,
			Destination: &s.Format,
			Sources:     cli.EnvVars("YT_FETCH_FORMAT"),
		},
		&cli.StringFlag{
			Name:        FlagFilenameTemplate,
			Usage:       "Filename template inside the output directory",
			Value:       DefaultFilenameTemplate,
			Destination: &s.FilenameTemplate,
			Sources:     cli.EnvVars("YT_FETCH_FILENAME_TEMPLATE"),
		},
		&cli.StringFlag{
			Name:        FlagBackend,
			Usage:       "Downloader backend (yt-dlp, native)",
			Value:       DefaultBackend,
			Destination: &s.Backend,
			Sources:     cli.EnvVars("YT_FETCH_BACKEND"),
		},
		&cli.StringFlag{
			Name:        FlagProxy,
			Usage:       "Proxy URL passed to the downloader",
			Destination: &s.Proxy,
			Sources:     cli.EnvVars("YT_FETCH_PROXY"),
		},
		&cli.BoolFlag{
			Name:        FlagInstall,
			Usage:       "Install the yt-dlp binary before downloading",
			Destination: &s.Install,
			Sources:     cli.EnvVars("YT_FETCH_INSTALL"),
		},
	}
}

// Validate checks the settings
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return model.ErrEmptyURL
	}
	if strings.TrimSpace(s.Format) == "" {
		return fmt.Errorf("format preference is empty")
	}
	switch s.Backend {
	case download.BackendYTDLP, download.BackendNative:
	default:
		return fmt.Errorf("unknown backend: %s", s.Backend)
	}
	if s.Install && s.Backend != download.BackendYTDLP {
		return fmt.Errorf("--%s only applies to the %s backend", FlagInstall, download.BackendYTDLP)
	}
	return nil
}

// Overlay copies values from file into s for every flag that was not set
// explicitly. Zero values in file are ignored.
func (s *Settings) Overlay(file *Settings, isSet func(name string) bool) {
	if file == nil {
		return
	}
	overlayString(&s.URL, file.URL, isSet(FlagURL))
	overlayString(&s.OutputDir, file.OutputDir, isSet(FlagOutput))
	overlayString(&s.Format, file.Format, isSet(FlagFormat))
	overlayString(&s.FilenameTemplate, file.FilenameTemplate, isSet(FlagFilenameTemplate))
	overlayString(&s.Backend, file.Backend, isSet(FlagBackend))
	overlayString(&s.Proxy, file.Proxy, isSet(FlagProxy))
	if file.Install && !isSet(FlagInstall) {
		s.Install = true
	}
}

func overlayString(dst *string, value string, explicit bool) {
	if explicit || value == "" {
		return
	}
	*dst = value
}
