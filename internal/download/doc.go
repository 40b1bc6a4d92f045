package download

// Package download implements the fetch orchestrator. It makes sure the
// destination directory exists, builds the configuration for the fetch
// collaborator and hands it exactly one URL. The collaborator itself is a
// Fetcher: yt-dlp via github.com/lrstanley/go-ytdlp by default, or the
// pure-Go YouTube downloader from github.com/ytget/ytdlp/v2.
