package services

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mroshb/notefmt/internal/config"
	"github.com/mroshb/notefmt/internal/models"
	"github.com/mroshb/notefmt/internal/render"
	"github.com/mroshb/notefmt/internal/security"
	"github.com/mroshb/notefmt/pkg/errors"
	"github.com/mroshb/notefmt/pkg/locale"
	"github.com/mroshb/notefmt/pkg/logger"
	"github.com/mroshb/notefmt/pkg/utils"
)

type Mode string

const (
	ModeLinkify   Mode = "linkify"
	ModeFarsi     Mode = "farsi"
	ModeRTL       Mode = "rtl"
	ModeNormalize Mode = "normalize"
	ModeSanitize  Mode = "sanitize"
	ModeHTML      Mode = "html"
	ModePhone     Mode = "phone"
	ModeNumber    Mode = "number"
	ModeDate      Mode = "date"
	ModeDateSmall Mode = "date-small"
	ModeDateLarge Mode = "date-large"
	ModeDateHuman Mode = "date-human"
	ModeDateShort Mode = "date-short"
)

var modes = []Mode{
	ModeLinkify, ModeFarsi, ModeRTL, ModeNormalize, ModeSanitize, ModeHTML, ModePhone,
	ModeNumber, ModeDate, ModeDateSmall, ModeDateLarge, ModeDateHuman, ModeDateShort,
}

// Modes lists the text modes Apply understands.
func Modes() []Mode {
	return append([]Mode(nil), modes...)
}

func ParseMode(s string) (Mode, error) {
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupportedMode, "unknown mode: "+s)
}

type FormatterService struct {
	cfg       *config.Config
	formatter *locale.Formatter
}

func NewFormatterService(cfg *config.Config) *FormatterService {
	return &FormatterService{
		cfg:       cfg,
		formatter: locale.New(cfg.Location(), cfg.FarsiDigits),
	}
}

// ReadInput reads all of r, failing once it exceeds MaxInputBytes.
func (s *FormatterService) ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.cfg.MaxInputBytes+1))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "read input")
	}
	if int64(len(data)) > s.cfg.MaxInputBytes {
		return "", errors.New(errors.ErrCodeInvalidInput, "input exceeds MAX_INPUT_BYTES")
	}
	return string(data), nil
}

func (s *FormatterService) Apply(mode Mode, text string) (string, error) {
	if int64(len(text)) > s.cfg.MaxInputBytes {
		return "", errors.New(errors.ErrCodeInvalidInput, "input exceeds MAX_INPUT_BYTES")
	}

	logger.Debug("Applying text mode", "mode", mode, "bytes", len(text))

	switch mode {
	case ModeLinkify:
		out := utils.Linkify(text)
		if s.cfg.SanitizeOutput {
			out = security.SanitizeLinkified(out)
		}
		return out, nil
	case ModeFarsi:
		return utils.ToFarsiNumber(text), nil
	case ModeRTL:
		return utils.Direction(text), nil
	case ModeNormalize:
		return utils.NormalizePersianText(utils.NormalizePersianNumbers(text)), nil
	case ModeSanitize:
		return security.SanitizeHTML(text), nil
	case ModeHTML:
		note := models.Note{Text: text}
		return render.NoteHTML(note, render.HTMLOptions{Sanitize: s.cfg.SanitizeOutput}), nil
	case ModePhone:
		return s.eachLine(text, s.cleanPhone)
	case ModeNumber:
		return s.eachLine(text, s.groupNumber)
	case ModeDate:
		return s.eachLine(text, s.formatter.FormatDate)
	case ModeDateSmall:
		return s.eachLine(text, s.formatter.FormatDateSmall)
	case ModeDateLarge:
		return s.eachLine(text, s.formatter.FormatDateLarge)
	case ModeDateHuman:
		return s.eachLine(text, s.formatter.FormatDateLikeHuman)
	case ModeDateShort:
		return s.eachLine(text, s.formatter.FormatDateShort)
	default:
		return "", errors.New(errors.ErrCodeUnsupportedMode, "unknown mode: "+string(mode))
	}
}

// eachLine applies fn to every non-blank line and joins the results. The
// first failing line aborts with its line number.
func (s *FormatterService) eachLine(text string, fn func(string) (string, error)) (string, error) {
	var out []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for scanner.Scan() {
		line++
		value := strings.TrimSpace(scanner.Text())
		if value == "" {
			continue
		}
		formatted, err := fn(value)
		if err != nil {
			return "", errors.Wrap(err, errors.CodeOf(err), "line "+strconv.Itoa(line))
		}
		out = append(out, formatted)
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "scan lines")
	}
	return strings.Join(out, "\n"), nil
}

func (s *FormatterService) cleanPhone(phone string) (string, error) {
	if !security.ValidatePhoneNumber(phone) {
		return "", errors.New(errors.ErrCodeValidation, "invalid phone number: "+phone)
	}
	return utils.CleanPhoneNumber(phone), nil
}

func (s *FormatterService) groupNumber(value string) (string, error) {
	n, err := strconv.ParseInt(utils.NormalizePersianNumbers(value), 10, 64)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeValidation, "invalid number: "+value)
	}
	return s.formatter.Number(n), nil
}

// RenderNotes reads a JSON array of notes from r and writes one HTML card
// preview per line to w. Notes that fail validation are skipped. It returns
// the number of cards written.
func (s *FormatterService) RenderNotes(r io.Reader, w io.Writer) (int, error) {
	notes, err := s.readNotes(r)
	if err != nil {
		return 0, err
	}

	opts := render.HTMLOptions{Sanitize: s.cfg.SanitizeOutput, Formatter: s.formatter, Preview: true}
	written := 0
	for _, note := range notes {
		if _, err := io.WriteString(w, render.NoteHTML(note, opts)+"\n"); err != nil {
			return written, errors.Wrap(err, errors.ErrCodeInternalError, "write note")
		}
		written++
	}

	logger.Info("Rendered notes", "written", written)
	return written, nil
}

// TelegramMessages builds an HTML-mode message to chatID for every valid
// note in the JSON array read from r.
func (s *FormatterService) TelegramMessages(r io.Reader, chatID int64) ([]tgbotapi.MessageConfig, error) {
	if chatID == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "chat id is required")
	}

	notes, err := s.readNotes(r)
	if err != nil {
		return nil, err
	}

	msgs := make([]tgbotapi.MessageConfig, 0, len(notes))
	for _, note := range notes {
		msgs = append(msgs, render.TelegramMessage(chatID, note, s.formatter))
	}

	logger.Info("Built Telegram messages", "chat_id", chatID, "count", len(msgs))
	return msgs, nil
}

// readNotes decodes the notes payload and drops notes that fail validation.
func (s *FormatterService) readNotes(r io.Reader) ([]models.Note, error) {
	input, err := s.ReadInput(r)
	if err != nil {
		return nil, err
	}

	notes, err := models.DecodeNotes(strings.NewReader(input))
	if err != nil {
		return nil, err
	}

	valid := notes[:0]
	for _, note := range notes {
		if err := note.Validate(); err != nil {
			logger.Warn("Skipping invalid note", "note_id", note.ID, "error", err)
			continue
		}
		valid = append(valid, note)
	}
	logger.Debug("Decoded notes", "total", len(notes), "valid", len(valid))
	return valid, nil
}
