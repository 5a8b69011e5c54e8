package usecases

import (
	"strings"
)

const comfortMarker = "COMFORT:"

// ParseAIReply extracts the comfort paragraph and suggestion bullets
// from a model reply. The expected shape is a line containing
// "COMFORT:" followed by bullet lines starting with "-" or "•". A reply
// missing either section yields an empty comfort string or an empty
// slice; repair is the caller's job. At most the first three bullets
// are kept.
func ParseAIReply(reply string) (comfort string, suggestions []string) {
	for _, line := range strings.Split(reply, "\n") {
		trimmed := strings.TrimSpace(line)

		if comfort == "" {
			if idx := strings.Index(trimmed, comfortMarker); idx >= 0 {
				comfort = strings.TrimSpace(trimmed[idx+len(comfortMarker):])
				continue
			}
		}

		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") {
			suggestion := strings.TrimSpace(strings.TrimLeft(trimmed, "-• "))
			if suggestion != "" && len(suggestions) < 3 {
				suggestions = append(suggestions, suggestion)
			}
		}
	}

	return comfort, suggestions
}
