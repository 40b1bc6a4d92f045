package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DownloadResult describes the outcome of one download
type DownloadResult struct {
	RequestID  string
	URL        string
	Status     FetchStatus
	OutputPath string // path reported by the collaborator, empty if unknown
	Title      string // remote title, empty if unknown
	Author     string // remote uploader, empty if unknown
	FileSize   int64  // size in bytes, 0 if the file could not be stat'ed
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the download took, or zero if it has not finished
func (r *DownloadResult) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// DisplayTitle prefers the remote title, then the saved file's name, then the URL.
// Titles that are just a URL are skipped.
func (r *DownloadResult) DisplayTitle() string {
	if title := strings.TrimSpace(r.Title); title != "" && !looksLikeURL(title) {
		return title
	}
	if name := baseName(r.OutputPath); name != "" {
		return name
	}
	return r.URL
}

// baseName returns the file name of path without its extension. Windows
// separators are accepted on every platform since yt-dlp reports paths
// in the host's form.
func baseName(path string) string {
	if path == "" {
		return ""
	}
	name := filepath.Base(strings.ReplaceAll(path, `\`, "/"))
	if name == "." || name == "/" {
		return ""
	}
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
