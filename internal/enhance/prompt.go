package enhance

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/prompts"
)

const promptFile = "enhance.json"

// BuildPrompt assembles the instruction template for a content kind around the
// content block and the opaque reference context block.
func BuildPrompt(kind Kind, content, contextBlock string) string {
	template := prompts.MustGet(promptFile, kind.promptKey())
	return prompts.Format(template, map[string]string{
		"Context": contextBlock,
		"Content": content,
	})
}

// FormatContent joins description lines into the content block the templates
// expect. Experience and activity lines are presented as "- " bullets; a bio
// is a single block of prose.
func FormatContent(kind Kind, lines []string) string {
	if kind == KindBio {
		return strings.Join(lines, "\n")
	}

	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, "- "+line)
	}
	return strings.Join(bullets, "\n")
}
