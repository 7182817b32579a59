package utils

// Bounds of the Arabic Unicode block, which also carries the Persian letters.
const (
	arabicBlockStart = '\u0600'
	arabicBlockEnd   = '\u06ff'
)

// IsRTL reports whether text contains at least one character of the Arabic
// block (U+0600..U+06FF).
func IsRTL(text string) bool {
	for _, r := range text {
		if r >= arabicBlockStart && r <= arabicBlockEnd {
			return true
		}
	}
	return false
}

// Direction returns "rtl" or "ltr" for use as an HTML dir attribute.
func Direction(text string) string {
	if IsRTL(text) {
		return "rtl"
	}
	return "ltr"
}
