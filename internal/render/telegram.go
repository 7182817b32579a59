package render

import (
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mroshb/notefmt/internal/models"
	"github.com/mroshb/notefmt/pkg/locale"
	"github.com/mroshb/notefmt/pkg/utils"
)

// rightToLeftMark makes Telegram clients lay out a message right to left.
const rightToLeftMark = "\u200f"

// TelegramMessage builds an HTML-mode message for n. The note text is
// escaped before linkifying, so the only markup in the body is the anchors.
func TelegramMessage(chatID int64, n models.Note, f *locale.Formatter) tgbotapi.MessageConfig {
	text := utils.Linkify(html.EscapeString(n.Text))
	if n.IsRTL() {
		text = rightToLeftMark + text
	}
	if parts := footerParts(n, f); len(parts) > 0 {
		text += "\n\n<i>" + html.EscapeString(strings.Join(parts, " · ")) + "</i>"
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return msg
}
