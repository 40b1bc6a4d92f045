package download

import (
	"context"

	"github.com/ytget/yt-fetch/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// Download fetches the single video described by req
	Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadResult, error)

	// DownloadVideo is Download with a URL and an output directory; an empty directory means the default
	DownloadVideo(ctx context.Context, url, outputDirectory string) (*model.DownloadResult, error)
}

// Fetcher is the external collaborator that resolves and writes the media.
type Fetcher interface {
	// Name identifies the backend in logs and configuration
	Name() string

	// Fetch downloads every URL in urls using cfg
	Fetch(ctx context.Context, cfg model.FetchConfig, urls []string) (*FetchOutcome, error)
}

// FetchOutcome is what a Fetcher could learn about the written file.
// Any field may be empty.
type FetchOutcome struct {
	Title    string
	Author   string
	Filename string
}
