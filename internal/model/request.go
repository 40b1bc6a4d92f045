package model

import (
	"errors"
	"path/filepath"
	"strings"
)

// Defaults for a download request
const (
	DefaultOutputDirectory  = "downloads/"
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultFormatPreference = "mp4/best"
)

// ErrEmptyURL is returned when a request carries no URL.
var ErrEmptyURL = errors.New("url is empty")

// DownloadRequest describes one invocation of the orchestrator
type DownloadRequest struct {
	URL             string
	OutputDirectory string
}

// WithDefaults returns a copy with the URL trimmed and the default output directory filled in
func (r DownloadRequest) WithDefaults() DownloadRequest {
	r.URL = strings.TrimSpace(r.URL)
	if strings.TrimSpace(r.OutputDirectory) == "" {
		r.OutputDirectory = DefaultOutputDirectory
	}
	return r
}

// Validate checks the request. Only emptiness is checked here; whether the
// URL is supported is decided by the fetch collaborator.
func (r DownloadRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrEmptyURL
	}
	return nil
}

// FetchConfig is the configuration handed to the fetch collaborator
type FetchConfig struct {
	OutputTemplate   string // e.g. "downloads/%(title)s.%(ext)s"
	FormatPreference string // e.g. "mp4/best"
	Proxy            string // optional, passed through untouched
}

// NewFetchConfig builds the collaborator configuration for a request
func NewFetchConfig(outputDirectory string) FetchConfig {
	return FetchConfig{
		OutputTemplate:   OutputTemplate(outputDirectory, DefaultFilenameTemplate),
		FormatPreference: DefaultFormatPreference,
	}
}

// OutputTemplate joins a directory and a filename template
func OutputTemplate(outputDirectory, filenameTemplate string) string {
	if filenameTemplate == "" {
		filenameTemplate = DefaultFilenameTemplate
	}
	return filepath.Join(outputDirectory, filenameTemplate)
}

// OutputDirectory returns the directory part of the output template
func (c FetchConfig) OutputDirectory() string {
	return filepath.Dir(c.OutputTemplate)
}

// Secret marks a value that is redacted by the log handler
type Secret string
