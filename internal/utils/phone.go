package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone formats a phone number in international notation using
// region for numbers written without a country code. Input that does not
// parse as a valid number is returned trimmed but otherwise untouched.
func NormalizePhone(raw, region string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return ""
	}

	num, err := phonenumbers.Parse(cleaned, strings.ToUpper(region))
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return cleaned
	}

	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
