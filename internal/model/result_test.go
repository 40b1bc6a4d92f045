package model

import (
	"testing"
	"time"
)

func TestDownloadResult_DisplayTitle(t *testing.T) {
	tests := []struct {
		title      string
		outputPath string
		url        string
		expected   string
	}{
		{"Video Title", "", "https://example.com/video/123", "Video Title"},
		{"", "", "https://example.com/video/123", "https://example.com/video/123"},
		{"", "downloads/My Clip.mp4", "https://example.com/video/123", "My Clip"},
		{"", `C:\Users\me\downloads\Clip.webm`, "https://example.com/video/123", "Clip"},
		{"https://example.com/video/123", "downloads/Real.mp4", "https://example.com/video/123", "Real"},
	}

	for _, test := range tests {
		result := &DownloadResult{Title: test.title, OutputPath: test.outputPath, URL: test.url}
		if got := result.DisplayTitle(); got != test.expected {
			t.Errorf("DisplayTitle() with title=%q path=%q = %q, expected %q", test.title, test.outputPath, got, test.expected)
		}
	}
}

func TestDownloadResult_Elapsed(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	result := &DownloadResult{StartedAt: start}
	if result.Elapsed() != 0 {
		t.Errorf("expected zero elapsed for unfinished result, got %v", result.Elapsed())
	}

	result.FinishedAt = start.Add(90 * time.Second)
	if result.Elapsed() != 90*time.Second {
		t.Errorf("expected 90s elapsed, got %v", result.Elapsed())
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"", ""},
		{"downloads/clip.mp4", "clip"},
		{`D:\videos\clip.final.webm`, "clip.final"},
		{"/", ""},
		{".hidden", ".hidden"},
		{"noext", "noext"},
	}

	for _, test := range tests {
		if got := baseName(test.path); got != test.expected {
			t.Errorf("baseName(%q) = %q, expected %q", test.path, got, test.expected)
		}
	}
}
