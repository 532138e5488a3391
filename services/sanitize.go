package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// CleanText strips any markup from free-text input and truncates it to
// maxLen runes. maxLen <= 0 means no length cap.
func CleanText(s string, maxLen int) string {
	cleaned := strings.TrimSpace(textPolicy.Sanitize(s))
	if maxLen > 0 {
		runes := []rune(cleaned)
		if len(runes) > maxLen {
			cleaned = string(runes[:maxLen])
		}
	}
	return cleaned
}
