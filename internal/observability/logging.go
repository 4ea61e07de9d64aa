package observability

import (
	"strings"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskNationalID masks a cédula for logging, keeping the last three digits
func MaskNationalID(id string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, id)
	if len(digits) < 5 {
		return "********"
	}
	return strings.Repeat("*", len(digits)-3) + digits[len(digits)-3:]
}

// MaskSensitiveData masks sensitive data in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	sensitiveFields := []string{"national_id", "phone", "emergency_contact", "pathologies", "medications", "password"}
	masked := make(map[string]interface{}, len(data))

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
