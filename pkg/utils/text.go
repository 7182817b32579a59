package utils

import (
	"strings"
	"unicode/utf8"
)

var (
	persianDigitReplacer = strings.NewReplacer(
		"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4", "۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
		"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4", "٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	)
	persianLetterReplacer = strings.NewReplacer(
		"ي", "ی", // Arabic Yeh to Farsi Yeh
		"ك", "ک", // Arabic Kaf to Farsi Kaf
		"ة", "ه", // Teh Marbuta to Heh
	)
	phoneSeparatorReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// NormalizePersianNumbers converts Persian and Arabic numerals to English numerals
func NormalizePersianNumbers(input string) string {
	return persianDigitReplacer.Replace(input)
}

// NormalizePersianText handles Arabic/Farsi character variants
func NormalizePersianText(input string) string {
	return strings.TrimSpace(persianLetterReplacer.Replace(input))
}

// CleanPhoneNumber returns the number in +98 form built from the last ten
// characters of the input.
func CleanPhoneNumber(phone string) string {
	phone = phoneSeparatorReplacer.Replace(NormalizePersianNumbers(strings.TrimSpace(phone)))
	phone = strings.TrimPrefix(phone, "+")
	if n := utf8.RuneCountInString(phone); n > 10 {
		runes := []rune(phone)
		phone = string(runes[n-10:])
	}
	return "+98" + phone
}
