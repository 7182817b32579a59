package render

import (
	"html"
	"strings"

	"github.com/mroshb/notefmt/internal/models"
	"github.com/mroshb/notefmt/internal/security"
	"github.com/mroshb/notefmt/pkg/locale"
	"github.com/mroshb/notefmt/pkg/utils"
)

// PreviewLength is the number of characters a note card shows before the
// reader expands it.
const PreviewLength = 1000

type HTMLOptions struct {
	// Sanitize runs the linkified body through the link policy. Leave it on
	// for any text that did not come from a trusted source.
	Sanitize bool

	// Formatter renders the footer. Nil omits the footer.
	Formatter *locale.Formatter

	// Preview cuts the body to PreviewLength characters, as in list views.
	Preview bool
}

// NoteBody links hashtags and URLs and turns newlines into <br> tags.
func NoteBody(text string, sanitize bool) string {
	body := utils.Linkify(utils.LinkHashtags(text))
	body = strings.ReplaceAll(body, "\n", "<br>")
	if sanitize {
		body = security.SanitizeLinkified(body)
	}
	return body
}

// NoteHTML renders a note card. RTL notes get dir="rtl" and the text-end
// class so the card aligns to the right.
func NoteHTML(n models.Note, opts HTMLOptions) string {
	var b strings.Builder

	class := "note"
	if n.IsRTL() {
		class += " text-end"
	}

	b.WriteString(`<div class="`)
	b.WriteString(class)
	b.WriteString(`" dir="`)
	b.WriteString(n.Direction())
	b.WriteString(`">`)
	b.WriteString(`<div class="note-body">`)
	limit := 0
	if opts.Preview {
		limit = PreviewLength
	}
	b.WriteString(NoteBody(security.SanitizeString(n.Text, limit), opts.Sanitize))
	b.WriteString(`</div>`)

	if parts := footerParts(n, opts.Formatter); len(parts) > 0 {
		b.WriteString(`<div class="note-meta">`)
		b.WriteString(html.EscapeString(strings.Join(parts, " · ")))
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}
