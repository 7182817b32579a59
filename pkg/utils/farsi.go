package utils

import (
	"reflect"
	"strconv"
	"strings"
)

// Numeral is anything callers hand to ToFarsiNumber: an integer or its
// string form.
type Numeral interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string
}

const farsiZero = '\u06f0' // ۰

// ToFarsiNumber renders n in base 10 with Farsi digits. Named types are
// formatted by their underlying kind, so a String method (time.Month,
// time.Weekday) is never consulted.
func ToFarsiNumber[T Numeral](n T) string {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FarsiDigits(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FarsiDigits(strconv.FormatUint(v.Uint(), 10))
	default:
		return FarsiDigits(v.String())
	}
}

// FarsiDigits replaces ASCII digits with ۰..۹. Every other rune, including
// signs and separators, is kept as is.
func FarsiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return farsiZero + (r - '0')
		}
		return r
	}, s)
}
