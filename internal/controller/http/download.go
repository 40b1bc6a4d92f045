package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/yt-fetch/internal/download"
	"github.com/ytget/yt-fetch/internal/model"
	"github.com/ytget/yt-fetch/internal/platform"
)

// maxRequestBody bounds the JSON request body
const maxRequestBody = 64 << 10

// Response headers carrying metadata about the streamed video
const (
	HeaderVideoTitle  = "X-Video-Title"
	HeaderVideoAuthor = "X-Video-Author"
)

// DownloadRequest is the body of POST /api/download
type DownloadRequest struct {
	URL string `json:"url"`
}

// DownloadHandler fetches one video per request and streams it back
type DownloadHandler struct {
	downloader download.Downloader
	workDir    string
	logger     *slog.Logger
}

// NewDownloadHandler creates a handler that stores each download in its own
// folder under workDir before streaming it. An empty workDir means the system
// temp directory.
func NewDownloadHandler(downloader download.Downloader, workDir string, logger *slog.Logger) *DownloadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DownloadHandler{
		downloader: downloader,
		workDir:    workDir,
		logger:     logger,
	}
}

// Handle serves POST /api/download
func (h *DownloadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DownloadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, h.logger, errors.New("invalid JSON body"), http.StatusBadRequest)
		return
	}

	dir, err := os.MkdirTemp(h.workDir, "fetch-*")
	if err != nil {
		h.logger.Error("Failed to create request directory", "error", err)
		writeError(w, h.logger, errors.New("failed to prepare download"), http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			h.logger.Warn("Failed to remove request directory", "path", dir, "error", err)
		}
	}()

	result, err := h.downloader.Download(r.Context(), model.DownloadRequest{
		URL:             req.URL,
		OutputDirectory: dir,
	})
	if err != nil {
		writeError(w, h.logger, err, statusFor(err))
		return
	}

	path := result.OutputPath
	if path == "" {
		if path, err = platform.NewestFile(dir); err != nil {
			writeError(w, h.logger, errors.New("downloaded file not found"), http.StatusBadGateway)
			return
		}
	}

	file, err := os.Open(path)
	if err != nil {
		writeError(w, h.logger, errors.New("downloaded file not found"), http.StatusBadGateway)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		writeError(w, h.logger, errors.New("downloaded file not readable"), http.StatusInternalServerError)
		return
	}

	ext := filepath.Ext(path)

	w.Header().Set("Content-Type", contentTypeFor(ext))
	w.Header().Set(HeaderVideoTitle, headerValue(result.Title))
	w.Header().Set(HeaderVideoAuthor, headerValue(result.Author))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": AttachmentName(result.Title, req.URL, ext),
	}))

	http.ServeContent(w, r, "", stat.ModTime(), file)
}

// mediaTypes covers containers the system MIME table may not know
var mediaTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
}

func contentTypeFor(ext string) string {
	ext = strings.ToLower(ext)
	if t, ok := mediaTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// statusFor maps download errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrEmptyURL):
		return http.StatusBadRequest
	case download.IsFetch(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// headerValue drops characters that cannot appear in a header value
func headerValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' || r == 0 {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
