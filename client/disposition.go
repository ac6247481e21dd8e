package client

import (
	"net/url"
	"regexp"
)

// Filename extraction from Content-Disposition tries the RFC 5987 extended
// syntax first (filename*=charset''value, quoting optional), then the plain
// quoted syntax. Extended values are percent-decoded.
var (
	extendedFilenameRe = regexp.MustCompile(`filename\*=(?:"(.*?)"|(?:[^\s]+'[^']*')?([^;\n]*))`)
	plainFilenameRe    = regexp.MustCompile(`filename="?([^";\n]*?)"?(?:;|$)`)
	charsetPrefixRe    = regexp.MustCompile(`(?i)^(?:utf-8|iso-8859-1)''`)
)

func fileNameFromDisposition(disposition string) string {
	if disposition == "" {
		return ""
	}
	if m := extendedFilenameRe.FindStringSubmatch(disposition); m != nil {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		name = charsetPrefixRe.ReplaceAllString(name, "")
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
		if name != "" {
			return name
		}
	}
	if m := plainFilenameRe.FindStringSubmatch(disposition); m != nil {
		return m[1]
	}
	return ""
}
