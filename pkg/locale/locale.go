// Package locale formats timestamps and counters for display in the note
// clients, optionally with Farsi digits.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mroshb/notefmt/pkg/errors"
	"github.com/mroshb/notefmt/pkg/utils"
)

// Display layouts used by the note lists and cards.
const (
	LayoutSmall = "01/02/2006 15:04"
	LayoutLarge = "Mon 01/02/2006 15:04"
	LayoutHuman = "2006-01-02 15:04"
	LayoutShort = "Mon Jan 2"
)

// Timestamp layouts accepted by ParseTimestamp, tried in order. Layouts
// without an offset are read in the formatter's location.
var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type Formatter struct {
	loc         *time.Location
	farsiDigits bool
}

// New returns a Formatter rendering in loc. A nil loc means UTC.
func New(loc *time.Location, farsiDigits bool) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc, farsiDigits: farsiDigits}
}

// ParseTimestamp reads the timestamp formats the notes API emits.
func (f *Formatter) ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(utils.NormalizePersianNumbers(s))
	if s == "" {
		return time.Time{}, errors.New(errors.ErrCodeValidation, "empty timestamp")
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, f.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(errors.ErrCodeValidation, "unrecognized timestamp: "+s)
}

// FormatTime renders t in the formatter's location with the given layout.
func (f *Formatter) FormatTime(t time.Time, layout string) string {
	return f.digits(t.In(f.loc).Format(layout))
}

func (f *Formatter) format(s, layout string) (string, error) {
	t, err := f.ParseTimestamp(s)
	if err != nil {
		return "", err
	}
	return f.FormatTime(t, layout), nil
}

// FormatDate is an alias of FormatDateSmall kept for the list views.
func (f *Formatter) FormatDate(s string) (string, error) {
	return f.format(s, LayoutSmall)
}

func (f *Formatter) FormatDateSmall(s string) (string, error) {
	return f.format(s, LayoutSmall)
}

func (f *Formatter) FormatDateLarge(s string) (string, error) {
	return f.format(s, LayoutLarge)
}

func (f *Formatter) FormatDateLikeHuman(s string) (string, error) {
	return f.format(s, LayoutHuman)
}

func (f *Formatter) FormatDateShort(s string) (string, error) {
	return f.format(s, LayoutShort)
}

// Number renders n with thousands separators.
func (f *Formatter) Number(n int64) string {
	p := message.NewPrinter(language.English)
	return f.digits(p.Sprintf("%d", n))
}

func (f *Formatter) digits(s string) string {
	if f.farsiDigits {
		return utils.FarsiDigits(s)
	}
	return s
}
