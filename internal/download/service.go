package download

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/ytget/yt-fetch/internal/model"
	"github.com/ytget/yt-fetch/internal/platform"
)

// Service orchestrates a single download
type Service struct {
	fetcher          Fetcher
	formatPreference string
	filenameTemplate string
	proxy            string
	logger           *slog.Logger
}

// NewService creates a new download service backed by fetcher
func NewService(fetcher Fetcher) *Service {
	return &Service{
		fetcher:          fetcher,
		formatPreference: model.DefaultFormatPreference,
		filenameTemplate: model.DefaultFilenameTemplate,
		logger:           slog.Default(),
	}
}

// SetLogger sets the logger used for download events
func (s *Service) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// SetFormatPreference sets the format selection passed to the collaborator
func (s *Service) SetFormatPreference(format string) {
	if format == "" {
		format = model.DefaultFormatPreference
	}
	s.formatPreference = format
}

// SetFilenameTemplate sets the filename template placed inside the output directory
func (s *Service) SetFilenameTemplate(template string) {
	if template == "" {
		template = model.DefaultFilenameTemplate
	}
	s.filenameTemplate = template
}

// SetProxy sets a proxy URL passed through to the collaborator
func (s *Service) SetProxy(proxy string) {
	s.proxy = proxy
}

// DownloadVideo downloads url into outputDirectory ("downloads/" when empty)
func (s *Service) DownloadVideo(ctx context.Context, url, outputDirectory string) (*model.DownloadResult, error) {
	return s.Download(ctx, model.DownloadRequest{URL: url, OutputDirectory: outputDirectory})
}

// Download ensures the output directory exists and hands the URL to the
// collaborator once. Collaborator failures are returned as *FetchError.
func (s *Service) Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadResult, error) {
	req = req.WithDefaults()

	result := &model.DownloadResult{
		RequestID: generateRequestID(),
		URL:       req.URL,
		Status:    model.FetchStatusPending,
		StartedAt: time.Now(),
	}
	logger := s.logger.With(
		slog.String("request_id", result.RequestID),
		slog.String("backend", s.fetcher.Name()),
	)

	if err := req.Validate(); err != nil {
		return s.fail(logger, result, err)
	}

	if err := platform.EnsureDir(req.OutputDirectory); err != nil {
		return s.fail(logger, result, &DirectoryCreationError{Path: req.OutputDirectory, Err: err})
	}

	cfg := s.fetchConfig(req.OutputDirectory)
	result.Status = model.FetchStatusFetching
	logger.Info("fetching video",
		slog.String("url", req.URL),
		slog.String("output_template", cfg.OutputTemplate),
		slog.String("format", cfg.FormatPreference),
		slog.Any("proxy", proxyValue(cfg.Proxy)),
	)

	outcome, err := s.fetcher.Fetch(ctx, cfg, []string{req.URL})
	if err != nil {
		return s.fail(logger, result, &FetchError{URL: req.URL, Backend: s.fetcher.Name(), Err: err})
	}

	result.Status = model.FetchStatusCompleted
	result.FinishedAt = time.Now()
	if outcome != nil {
		result.Title = outcome.Title
		result.Author = outcome.Author
		result.OutputPath = outcome.Filename
	}
	s.resolveOutput(logger, result, req.OutputDirectory)

	attrs := []any{
		slog.String("title", result.DisplayTitle()),
		slog.Duration("elapsed", result.Elapsed()),
	}
	if result.OutputPath != "" {
		attrs = append(attrs, slog.String("path", result.OutputPath))
	}
	if result.FileSize > 0 {
		attrs = append(attrs, slog.String("size", humanize.Bytes(uint64(result.FileSize))))
	}
	logger.Info("video saved", attrs...)

	return result, nil
}

// fetchConfig builds the collaborator configuration for outputDirectory
func (s *Service) fetchConfig(outputDirectory string) model.FetchConfig {
	return model.FetchConfig{
		OutputTemplate:   model.OutputTemplate(outputDirectory, s.filenameTemplate),
		FormatPreference: s.formatPreference,
		Proxy:            s.proxy,
	}
}

// resolveOutput fills in the output path and size when the collaborator did not report them
func (s *Service) resolveOutput(logger *slog.Logger, result *model.DownloadResult, outputDirectory string) {
	if result.OutputPath == "" && result.Title != "" {
		path, err := platform.LocateOutput(outputDirectory, result.Title)
		if err != nil {
			logger.Debug("could not locate output file", slog.Any("error", err))
			return
		}
		result.OutputPath = path
	}
	if result.OutputPath == "" {
		return
	}

	size, err := platform.FileSize(result.OutputPath)
	if err != nil {
		logger.Debug("could not stat output file", slog.String("path", result.OutputPath), slog.Any("error", err))
		return
	}
	result.FileSize = size
}

func (s *Service) fail(logger *slog.Logger, result *model.DownloadResult, err error) (*model.DownloadResult, error) {
	result.Status = model.FetchStatusError
	result.LastError = err.Error()
	result.FinishedAt = time.Now()
	logger.Debug("download failed", slog.String("url", result.URL), slog.Any("error", err))
	return result, err
}

// generateRequestID generates a unique request ID
func generateRequestID() string {
	return "req-" + uuid.NewString()
}

// proxyValue wraps a proxy URL so that credentials never reach the logs
func proxyValue(proxy string) any {
	if proxy == "" {
		return ""
	}
	return model.Secret(proxy)
}
