package download

import "strings"

// Container extensions understood in a format preference
var containerExtensions = map[string]bool{
	"mp4":  true,
	"webm": true,
	"mkv":  true,
	"mov":  true,
	"3gp":  true,
	"flv":  true,
	"m4a":  true,
	"mp3":  true,
	"ogg":  true,
	"opus": true,
}

// DefaultQuality is used when a preference names no quality selector
const DefaultQuality = "best"

// ParseFormatPreference splits a yt-dlp style preference such as "mp4/best"
// into a quality selector and a desired container extension. Alternatives
// are tried left to right, so the first match of each kind wins.
func ParseFormatPreference(preference string) (quality, ext string) {
	for _, token := range strings.Split(preference, "/") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if containerExtensions[token] {
			if ext == "" {
				ext = token
			}
			continue
		}
		if quality == "" {
			quality = token
		}
	}
	if quality == "" {
		quality = DefaultQuality
	}
	return quality, ext
}
