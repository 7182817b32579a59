package security

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mroshb/notefmt/pkg/utils"
)

var (
	htmlPolicy = bluemonday.StrictPolicy()
	linkPolicy = newLinkPolicy()
	phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// newLinkPolicy keeps the anchors Linkify and LinkHashtags emit and line
// breaks, and nothing else.
func newLinkPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(true)
	p.AllowAttrs("href").OnElements("a")
	p.AllowElements("br")
	return p
}

// SanitizeString trims the input, drops NUL bytes and caps it at maxRunes
// characters. A non-positive maxRunes disables the cap.
func SanitizeString(input string, maxRunes int) string {
	// Trim whitespace
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Limit length without splitting multi-byte characters
	if maxRunes > 0 {
		count := 0
		for i := range input {
			if count == maxRunes {
				input = input[:i]
				break
			}
			count++
		}
	}

	return input
}

// SanitizeHTML removes all HTML tags
func SanitizeHTML(input string) string {
	return htmlPolicy.Sanitize(input)
}

// SanitizeLinkified cleans Linkify output before it reaches an HTML surface.
// A URL match runs to the next whitespace, so quotes and markup in the source
// text can end up inside the generated anchor; this strips them.
func SanitizeLinkified(input string) string {
	return linkPolicy.Sanitize(input)
}

// ValidatePhoneNumber checks if phone number is valid
func ValidatePhoneNumber(phone string) bool {
	phone = utils.NormalizePersianNumbers(phone)

	// Remove common separators
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "+", "")

	return phoneRegex.MatchString(phone)
}
