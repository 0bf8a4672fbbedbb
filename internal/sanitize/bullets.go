// Package sanitize cleans raw or model-generated multi-line text before it is
// placed into a document description.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Bullet glyphs the model (or the user) may emit as list markers. The hyphen
// is handled separately from the rest of the set: unlike the others it also
// appears inside legitimate words, so stripping it is only safe in marker
// position (start of line, or after whitespace).
var (
	// (b) single leading marker: glyph or "N. " ordinal prefix
	reLeadingMarker = regexp.MustCompile(`^(\s*)(?:[•*‣⁃◦→▪●■-]\s+|\d+\.\s+)`)
	// (c) any further leading run of glyphs
	reLeadingRun = regexp.MustCompile(`^(\s*)(?:[•*‣⁃◦→▪●■-]+\s*)+`)
	// (d) glyphs leaking mid-line, recognizable by the trailing whitespace
	reMidLine = regexp.MustCompile(`[•*‣⁃◦→▪●■-]\s+`)
	// final whole-text passes
	reStrayGlyph = regexp.MustCompile(`[•‣⁃◦→▪●■]\s*`)
	reStrayDash  = regexp.MustCompile(`(?m)(^|\s)[*-]+\s+`)
)

// Bullets cleans multi-line text: strips bullet markers, capitalizes the first
// letter of each line, enforces a terminating period, and drops blank lines.
// Running it twice yields the same result as running it once.
func Bullets(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		if line == "" {
			continue
		}

		leading := leadingWhitespace(line)

		// Stacked markers ("• 2. item") need repeated stripping: the ordinal
		// pattern is anchored and only exposed once the glyph is gone.
		for {
			stripped := reLeadingMarker.ReplaceAllString(line, "$1")
			stripped = reLeadingRun.ReplaceAllString(stripped, "$1")
			if stripped == line {
				break
			}
			line = stripped
		}
		line = reMidLine.ReplaceAllString(line, "")

		content := strings.TrimSpace(line)
		if content == "" {
			continue
		}

		line = leading + capitalizeFirst(content)
		if !strings.HasSuffix(line, ".") {
			line += "."
		}
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")

	// Safety net for markers the per-line passes missed
	result = reStrayGlyph.ReplaceAllString(result, "")
	result = reStrayDash.ReplaceAllString(result, "$1")

	return result
}

func leadingWhitespace(s string) string {
	for i, r := range s {
		if !unicode.IsSpace(r) {
			return s[:i]
		}
	}
	return s
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
