package core

import (
	"regexp"
	"strings"
)

// DefaultCountryCode is the dialing prefix assumed for bare 10-digit numbers.
const DefaultCountryCode = "91"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// StripPhone removes everything but digits from a phone number.
func StripPhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// NormalizePhone strips separators and prefixes the default country code to
// bare national numbers. Numbers it cannot make sense of are returned
// digits-only, unchanged.
func NormalizePhone(phone string) string {
	cleaned := StripPhone(phone)
	switch {
	case len(cleaned) == 10:
		return DefaultCountryCode + cleaned
	case len(cleaned) == 11 && strings.HasPrefix(cleaned, "0"):
		return DefaultCountryCode + cleaned[1:]
	default:
		return cleaned
	}
}

// IsValidPhone reports whether phone is a valid Indian mobile number:
// 10 digits starting with 6-9, optionally 0-prefixed or 91-prefixed.
func IsValidPhone(phone string) bool {
	cleaned := StripPhone(phone)
	isMobileDigit := func(b byte) bool { return b >= '6' && b <= '9' }
	switch {
	case len(cleaned) == 10:
		return isMobileDigit(cleaned[0])
	case len(cleaned) == 11 && cleaned[0] == '0':
		return isMobileDigit(cleaned[1])
	case len(cleaned) == 12 && strings.HasPrefix(cleaned, DefaultCountryCode):
		return isMobileDigit(cleaned[2])
	default:
		return false
	}
}

// IsValidEmail reports whether email is well-formed. An empty email is valid:
// the field is optional everywhere it appears.
func IsValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailRegex.MatchString(email)
}

// FormatPhoneDisplay renders a phone number as "+91 XXXXX XXXXX" when it
// carries a country code; shorter numbers fall back to the raw input.
func FormatPhoneDisplay(phone string) string {
	cleaned := NormalizePhone(phone)
	if len(cleaned) >= 12 {
		return "+" + cleaned[:2] + " " + cleaned[2:7] + " " + cleaned[7:]
	}
	return phone
}
