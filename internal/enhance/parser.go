package enhance

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/sanitize"
)

// Parse extracts the content between the kind's envelope marker and the end of
// the response, then pipes it through the sanitizer. A response without the
// marker yields an empty string: a recoverable "no enhancement" outcome, not
// an error.
func Parse(kind Kind, rawResponse string) string {
	lines := strings.Split(rawResponse, "\n")

	collected := make([]string, 0, len(lines))
	started := false
	for _, line := range lines {
		if strings.TrimSpace(line) == kind.Marker() {
			started = true
			continue
		}
		if started {
			collected = append(collected, line)
		}
	}

	if kind == KindBio {
		// A bio is one cohesive paragraph: join the collected lines with
		// single spaces before cleaning.
		joined := make([]string, 0, len(collected))
		for _, line := range collected {
			line = strings.TrimSpace(line)
			if line != "" {
				joined = append(joined, line)
			}
		}
		return strings.TrimSpace(sanitize.Bullets(strings.Join(joined, " ")))
	}

	return strings.TrimSpace(sanitize.Bullets(strings.Join(collected, "\n")))
}
