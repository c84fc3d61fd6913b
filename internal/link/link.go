package link

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/nikbrunner/ql/internal/model"
)

// domainRegex captures the host portion between "://" and the next "/".
var domainRegex = regexp.MustCompile(`://(.[^/]+)`)

// DefaultIconDomain is the favicon domain used when no host can be extracted.
const DefaultIconDomain = "google.com"

// IsValid reports whether s is a well-formed absolute URL.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Domain extracts the host substring from a URL string.
// Returns "" if the pattern does not match.
func Domain(s string) string {
	m := domainRegex.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// IconURL derives the favicon URL for a link from its domain.
// provider is a template with a trailing slash, e.g. "https://icon.horse/icon/".
func IconURL(provider, rawURL string) string {
	domain := Domain(rawURL)
	if domain == "" {
		domain = DefaultIconDomain
	}
	return provider + domain
}

// Exists scans records for a shortcut with the given URL, excluding the
// record identified by excludeID so editing in place is not flagged as a
// duplicate. Comparison is exact (no normalization), matching how the
// panel treats two spellings of the same address as distinct links.
func Exists(records map[string]model.Shortcut, rawURL, excludeID string) bool {
	for id, s := range records {
		if id == excludeID {
			continue
		}
		if s.URL == rawURL {
			return true
		}
	}
	return false
}

// Normalize trims surrounding whitespace from user input before validation.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}
