package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ytget/yt-fetch/internal/config"
	"github.com/ytget/yt-fetch/internal/model"
)

func TestNewSettings(t *testing.T) {
	s := config.NewSettings()

	gt.Equal(t, s.URL, config.DefaultURL)
	gt.Equal(t, s.OutputDir, "downloads/")
	gt.Equal(t, s.Format, "mp4/best")
	gt.Equal(t, s.FilenameTemplate, "%(title)s.%(ext)s")
	gt.Equal(t, s.Backend, "yt-dlp")
	gt.Equal(t, s.Proxy, "")
	gt.False(t, s.Install)
	gt.NoError(t, s.Validate())
}

func TestSettings_Flags(t *testing.T) {
	s := config.NewSettings()
	flags := s.Flags()

	names := make(map[string]bool)
	for _, f := range flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	for _, want := range []string{"url", "output", "o", "format", "f", "filename-template", "backend", "proxy", "install"} {
		gt.True(t, names[want])
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *config.Settings)
		wantErr bool
	}{
		{
			name:    "defaults",
			mutate:  func(s *config.Settings) {},
			wantErr: false,
		},
		{
			name:    "native backend",
			mutate:  func(s *config.Settings) { s.Backend = "native" },
			wantErr: false,
		},
		{
			name:    "unknown backend",
			mutate:  func(s *config.Settings) { s.Backend = "curl" },
			wantErr: true,
		},
		{
			name:    "empty format",
			mutate:  func(s *config.Settings) { s.Format = " " },
			wantErr: true,
		},
		{
			name:    "install with native backend",
			mutate:  func(s *config.Settings) { s.Backend = "native"; s.Install = true },
			wantErr: true,
		},
		{
			name:    "install with yt-dlp backend",
			mutate:  func(s *config.Settings) { s.Install = true },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.NewSettings()
			tt.mutate(s)
			err := s.Validate()
			gt.Equal(t, err != nil, tt.wantErr)
		})
	}
}

func TestSettings_ValidateEmptyURL(t *testing.T) {
	s := config.NewSettings()
	s.URL = ""
	gt.True(t, errors.Is(s.Validate(), model.ErrEmptyURL))
}

func TestSettings_Overlay(t *testing.T) {
	s := config.NewSettings()
	s.Format = "webm/best" // as if given on the command line

	file := &config.Settings{
		URL:       "https://example.com/video/123",
		OutputDir: "/srv/videos",
		Format:    "mp4/best",
		Proxy:     "http://proxy:8080",
		Install:   true,
	}
	explicit := map[string]bool{config.FlagFormat: true}
	s.Overlay(file, func(name string) bool { return explicit[name] })

	gt.Equal(t, s.URL, "https://example.com/video/123")
	gt.Equal(t, s.OutputDir, "/srv/videos")
	gt.Equal(t, s.Format, "webm/best")
	gt.Equal(t, s.FilenameTemplate, config.DefaultFilenameTemplate)
	gt.Equal(t, s.Backend, config.DefaultBackend)
	gt.Equal(t, s.Proxy, "http://proxy:8080")
	gt.True(t, s.Install)

	// nil file is a no-op
	s.Overlay(nil, func(string) bool { return false })
	gt.Equal(t, s.OutputDir, "/srv/videos")
}
