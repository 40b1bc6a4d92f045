package download

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	ytget "github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-fetch/internal/model"
)

// NativeFetcher downloads YouTube videos with the pure-Go ytget/ytdlp library.
// The library names files "<sanitized title>.<ext>" inside the target
// directory, so only the directory part of the output template is used.
type NativeFetcher struct {
	logger *slog.Logger
}

// NewNativeFetcher creates a fetcher that needs no external binary
func NewNativeFetcher() *NativeFetcher {
	return &NativeFetcher{logger: slog.Default()}
}

// SetLogger sets the logger used for progress lines
func (f *NativeFetcher) SetLogger(logger *slog.Logger) {
	if logger != nil {
		f.logger = logger
	}
}

// Name returns the backend name
func (f *NativeFetcher) Name() string {
	return BackendNative
}

// Fetch downloads the single URL in urls
func (f *NativeFetcher) Fetch(ctx context.Context, cfg model.FetchConfig, urls []string) (*FetchOutcome, error) {
	if len(urls) != 1 {
		return nil, fmt.Errorf("native backend downloads exactly one URL, got %d", len(urls))
	}

	d, err := f.downloader(cfg)
	if err != nil {
		return nil, err
	}

	info, err := d.Download(ctx, urls[0])
	if err != nil {
		return nil, err
	}

	outcome := &FetchOutcome{}
	if info != nil {
		outcome.Title = info.Title
		outcome.Author = info.Author
	}
	return outcome, nil
}

// downloader builds the library downloader for cfg
func (f *NativeFetcher) downloader(cfg model.FetchConfig) (*ytget.Downloader, error) {
	quality, ext := ParseFormatPreference(cfg.FormatPreference)

	d := ytget.New().
		WithFormat(quality, ext).
		WithOutputPath(cfg.OutputDirectory())

	if cfg.Proxy != "" {
		client, err := proxyHTTPClient(cfg.Proxy)
		if err != nil {
			return nil, err
		}
		d = d.WithHTTPClient(client)
	}

	d = d.WithProgress(func(p ytget.Progress) {
		f.logger.Debug("download progress",
			slog.String("percent", formatPercent(p.Percent)),
			slog.Int64("downloaded_bytes", p.DownloadedSize),
			slog.Int64("total_bytes", p.TotalSize),
		)
	})
	return d, nil
}

// proxyHTTPClient returns an HTTP client that routes through proxy
func proxyHTTPClient(proxy string) (*http.Client, error) {
	u, err := url.Parse(proxy)
	if err != nil {
		// the parse error echoes the URL, credentials included
		return nil, fmt.Errorf("invalid proxy URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid proxy URL: missing scheme or host")
	}
	return &http.Client{
		Transport: &http.Transport{
			Proxy:             http.ProxyURL(u),
			ForceAttemptHTTP2: false,
			MaxIdleConns:      100,
			IdleConnTimeout:   90 * time.Second,
		},
	}, nil
}

func formatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', 1, 64) + "%"
}
