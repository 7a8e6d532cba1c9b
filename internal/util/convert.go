// Package util provides shared string helpers for rendering numbers.
package util

import "strings"

// IntToString converts an integer to its string representation without
// using the fmt package.
func IntToString(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		// -(MinInt) overflows, so peel off the last digit first.
		q, r := n/10, n%10
		if q == 0 {
			return "-" + string(rune('0'-r))
		}
		return IntToString(q) + string(rune('0'-r))
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// FormatNumber formats an integer with thousands separators (commas).
// For example, 1234567 becomes "1,234,567".
func FormatNumber(n int) string {
	return GroupDigits(IntToString(n), 3, ",")
}

// GroupDigits inserts sep between every size digits of s, counting from the
// right. A leading minus sign is kept outside the groups.
func GroupDigits(s string, size int, sep string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if size <= 0 || len(s) <= size {
		return sign + s
	}

	var result strings.Builder
	result.Grow(len(sign) + len(s) + len(s)/size*len(sep))
	result.WriteString(sign)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%size == 0 {
			result.WriteString(sep)
		}
		result.WriteByte(s[i])
	}
	return result.String()
}

// PadLeft left-pads s with pad until its length is a multiple of multiple.
// The empty string is padded to one full multiple.
func PadLeft(s string, multiple int, pad byte) string {
	if multiple <= 0 {
		return s
	}
	n := len(s) % multiple
	if n == 0 && len(s) > 0 {
		return s
	}
	return strings.Repeat(string(pad), multiple-n) + s
}
