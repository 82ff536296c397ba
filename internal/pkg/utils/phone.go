package utils

import (
	"strings"
)

// NormalizePhoneNumber trims surrounding and inner spaces so the value can be
// handed to the SMS provider as-is. A leading '+' is kept; the provider
// accepts E.164 with the plus sign.
func NormalizePhoneNumber(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	return s
}
