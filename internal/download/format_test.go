package download

import "testing"

func TestParseFormatPreference(t *testing.T) {
	tests := []struct {
		name            string
		preference      string
		expectedQuality string
		expectedExt     string
	}{
		{"mp4 then best", "mp4/best", "best", "mp4"},
		{"best only", "best", "best", ""},
		{"extension only", "webm", "best", "webm"},
		{"empty", "", "best", ""},
		{"height constraint first", "height<=480/mp4/best", "height<=480", "mp4"},
		{"first extension wins", "mp4/webm/best", "best", "mp4"},
		{"first quality token wins", "720p/mp4/best", "720p", "mp4"},
		{"case and spaces", " MP4 / Best ", "best", "mp4"},
		{"itag", "itag=22", "itag=22", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quality, ext := ParseFormatPreference(tt.preference)
			if quality != tt.expectedQuality {
				t.Errorf("expected quality %q, got %q", tt.expectedQuality, quality)
			}
			if ext != tt.expectedExt {
				t.Errorf("expected ext %q, got %q", tt.expectedExt, ext)
			}
		})
	}
}
