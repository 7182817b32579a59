// Package render turns notes into markup for the surfaces that display
// them: HTML note cards and Telegram messages.
package render

import (
	"github.com/mroshb/notefmt/internal/models"
	"github.com/mroshb/notefmt/pkg/locale"
	"github.com/mroshb/notefmt/pkg/logger"
)

// footerParts returns the creation date of n in the card layout and its
// importance. A timestamp that does not parse is logged and left out.
func footerParts(n models.Note, f *locale.Formatter) []string {
	if f == nil {
		return nil
	}

	var parts []string
	if n.CreatedAt != "" {
		date, err := f.FormatDateLarge(n.CreatedAt)
		if err != nil {
			logger.Warn("Skipping note date", "note_id", n.ID, "error", err)
		} else {
			parts = append(parts, date)
		}
	}
	if n.Importance > 0 {
		parts = append(parts, "★ "+f.Number(int64(n.Importance)))
	}
	return parts
}
