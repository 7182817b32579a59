package utils

import (
	"math"
	"strconv"
	"testing"
	"time"
	"unicode/utf8"
)

func TestToFarsiNumber(t *testing.T) {
	if got := ToFarsiNumber(0); got != "۰" {
		t.Errorf("ToFarsiNumber(0) = %q, want %q", got, "۰")
	}
	if got := ToFarsiNumber(123); got != "۱۲۳" {
		t.Errorf("ToFarsiNumber(123) = %q, want %q", got, "۱۲۳")
	}
	if got := ToFarsiNumber("2024"); got != "۲۰۲۴" {
		t.Errorf("ToFarsiNumber(\"2024\") = %q, want %q", got, "۲۰۲۴")
	}
	if got := ToFarsiNumber(int64(9876543210)); got != "۹۸۷۶۵۴۳۲۱۰" {
		t.Errorf("ToFarsiNumber(int64) = %q, want %q", got, "۹۸۷۶۵۴۳۲۱۰")
	}
	if got := ToFarsiNumber(uint8(7)); got != "۷" {
		t.Errorf("ToFarsiNumber(uint8) = %q, want %q", got, "۷")
	}

	type count int
	if got := ToFarsiNumber(count(45)); got != "۴۵" {
		t.Errorf("ToFarsiNumber(count) = %q, want %q", got, "۴۵")
	}
}

type label string

func (label) String() string { return "label" }

func TestToFarsiNumber_IgnoresStringMethod(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "time.Month", got: ToFarsiNumber(time.October), want: "۱۰"},
		{name: "time.Weekday", got: ToFarsiNumber(time.Weekday(3)), want: "۳"},
		{name: "time.Duration", got: ToFarsiNumber(time.Duration(1500)), want: "۱۵۰۰"},
		{name: "Named string", got: ToFarsiNumber(label("42")), want: "۴۲"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("ToFarsiNumber() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestToFarsiNumber_PassThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Negative", input: "-5", want: "-۵"},
		{name: "Decimal point", input: "3.14", want: "۳.۱۴"},
		{name: "Thousands separator", input: "1,234,567", want: "۱,۲۳۴,۵۶۷"},
		{name: "Date", input: "1402/07/01", want: "۱۴۰۲/۰۷/۰۱"},
		{name: "Already Farsi", input: "۱۲", want: "۱۲"},
		{name: "Letters", input: "v2", want: "v۲"},
		{name: "Empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToFarsiNumber(tt.input); got != tt.want {
				t.Errorf("ToFarsiNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if got := ToFarsiNumber(-42); got != "-۴۲" {
		t.Errorf("ToFarsiNumber(-42) = %q, want %q", got, "-۴۲")
	}
}

func TestToFarsiNumber_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 9, 10, 99, 100, 1000, 65535, 1 << 32, math.MaxInt64, math.MaxUint64}
	for n := uint64(0); n < 2000; n += 7 {
		values = append(values, n)
	}

	for _, n := range values {
		decimal := strconv.FormatUint(n, 10)
		got := ToFarsiNumber(n)

		if utf8.RuneCountInString(got) != len(decimal) {
			t.Fatalf("ToFarsiNumber(%d) has %d characters, want %d", n, utf8.RuneCountInString(got), len(decimal))
		}
		if back := NormalizePersianNumbers(got); back != decimal {
			t.Fatalf("NormalizePersianNumbers(ToFarsiNumber(%d)) = %q, want %q", n, back, decimal)
		}
	}
}

func TestFarsiDigits_Table(t *testing.T) {
	want := []string{"۰", "۱", "۲", "۳", "۴", "۵", "۶", "۷", "۸", "۹"}
	for d := 0; d <= 9; d++ {
		if got := FarsiDigits(strconv.Itoa(d)); got != want[d] {
			t.Errorf("FarsiDigits(%d) = %q, want %q", d, got, want[d])
		}
	}
}
