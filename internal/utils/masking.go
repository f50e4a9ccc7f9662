package utils

import "strings"

const maskedPhonePlaceholder = "***-***-****"

// MaskEmail hides the local part of an address except its first
// character: "john@example.com" -> "j***@example.com". Strings without
// an '@' are returned unchanged.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	return email[:1] + "***@" + email[at+1:]
}

// MaskPhone keeps only the last four digits: "555-123-4567" ->
// "***-***-4567". Inputs with fewer than four digits collapse to a
// fixed placeholder so nothing identifying leaks.
func MaskPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) < 4 {
		return maskedPhonePlaceholder
	}
	return "***-***-" + d[len(d)-4:]
}
