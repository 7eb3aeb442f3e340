// Package redact masks secret configuration values before they reach a
// terminal or a log file.
package redact

import "strings"

// SecretKeyPatterns contains substrings that indicate a key likely holds
// sensitive data. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"PASSWORD",
	"PASSWD",
	"TOKEN",
	"SECRET",
	"CREDENTIAL",
	"COOKIE",
	"SESSION",
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
// Characters are runes, so multi-byte text is never split.
func MaskValue(value string) string {
	runes := []rune(value)
	if len(runes) <= 4 {
		return "********"
	}
	return "****" + string(runes[len(runes)-4:])
}

// ShouldMask returns true if the key name suggests it contains sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// MaskValues returns a copy of values with every value whose key matches
// [ShouldMask] masked. A nil map yields nil.
func MaskValues(values map[string]string) map[string]string {
	if values == nil {
		return nil
	}

	masked := make(map[string]string, len(values))
	for k, v := range values {
		if ShouldMask(k) {
			masked[k] = MaskValue(v)
		} else {
			masked[k] = v
		}
	}
	return masked
}
