package http

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// maxAttachmentStem caps the title part of an attachment name
const maxAttachmentStem = 100

var (
	unsafeNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]+`)
	spaceRuns       = regexp.MustCompile(`\s+`)
	videoIDPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// AttachmentName builds the download filename offered to clients.
// The title is preferred; without one the name is "<site>-<id><ext>",
// e.g. "tiktok-7538796459722886422.mp4", and finally "video<ext>".
func AttachmentName(title, rawURL, ext string) string {
	if ext == "" {
		ext = ".mp4"
	}

	stem := strings.TrimSpace(spaceRuns.ReplaceAllString(unsafeNameChars.ReplaceAllString(title, " "), " "))
	stem = strings.Trim(stem, ".")
	if r := []rune(stem); len(r) > maxAttachmentStem {
		stem = strings.TrimSpace(string(r[:maxAttachmentStem]))
	}
	if stem != "" {
		return stem + ext
	}

	if site, id := siteAndID(rawURL); id != "" {
		return site + "-" + id + ext
	}
	return "video" + ext
}

// siteAndID derives a short site label and the last path segment of rawURL
func siteAndID(rawURL string) (string, string) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", ""
	}

	id := path.Base(strings.TrimSuffix(u.Path, "/"))
	if v := u.Query().Get("v"); v != "" {
		id = v
	}
	if !videoIDPattern.MatchString(id) {
		return "", ""
	}

	labels := strings.Split(strings.TrimPrefix(strings.ToLower(u.Hostname()), "www."), ".")
	site := labels[0]
	if len(labels) >= 2 {
		site = labels[len(labels)-2]
	}
	if site == "" {
		site = "video"
	}
	return site, id
}
