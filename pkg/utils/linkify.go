package utils

import "regexp"

// urlPattern stops at any character JavaScript treats as \s, not only the
// ASCII set RE2 uses for \s.
var urlPattern = regexp.MustCompile(`https?://[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// Linkify wraps every http or https URL in an anchor whose href and label
// are the URL text. A match runs to the next whitespace, so trailing
// punctuation ends up inside the link. The output is not escaped or
// sanitized.
func Linkify(text string) string {
	return urlPattern.ReplaceAllString(text, `<a href="${0}">${0}</a>`)
}

// FindURLs returns the URLs Linkify would wrap, in order of appearance.
func FindURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}
