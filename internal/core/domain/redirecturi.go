package domain

import "strings"

// NormalizeRedirectURIs parses the free-text redirect URI field into an
// ordered list. Input is one URI per line (\n or \r\n); lines are trimmed
// and blank lines dropped. Duplicates are kept as submitted, and no URI
// scheme validation happens here.
func NormalizeRedirectURIs(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	uris := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		uris = append(uris, line)
	}
	return uris
}
