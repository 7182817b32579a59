package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	codeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	hashtagPattern   = regexp.MustCompile(`#(\w+)`)
)

// hashtagAnchor links a tag to the note search across all lists.
const hashtagAnchor = `<a href="/search?q=%%23%s&amp;list_slug=All">#%s</a>`

// LinkHashtags turns every #tag into a link to the note search. Tags are
// ASCII word characters. Hashtags inside a URL (up to its next whitespace)
// or inside a ``` fenced block are left alone.
func LinkHashtags(text string) string {
	var b strings.Builder
	last := 0
	for _, block := range codeBlockPattern.FindAllStringIndex(text, -1) {
		b.WriteString(linkHashtags(text[last:block[0]]))
		b.WriteString(text[block[0]:block[1]])
		last = block[1]
	}
	b.WriteString(linkHashtags(text[last:]))
	return b.String()
}

func linkHashtags(part string) string {
	urls := urlPattern.FindAllStringIndex(part, -1)

	var b strings.Builder
	last := 0
	for _, m := range hashtagPattern.FindAllStringSubmatchIndex(part, -1) {
		if withinAny(m[0], urls) {
			continue
		}
		tag := part[m[2]:m[3]]
		b.WriteString(part[last:m[0]])
		fmt.Fprintf(&b, hashtagAnchor, tag, tag)
		last = m[1]
	}
	b.WriteString(part[last:])
	return b.String()
}

func withinAny(i int, spans [][]int) bool {
	for _, s := range spans {
		if i >= s[0] && i < s[1] {
			return true
		}
	}
	return false
}
