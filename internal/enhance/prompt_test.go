package enhance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_SubstitutesContentAndContext(t *testing.T) {
	prompt := BuildPrompt(KindExperience, "- built the pipeline", "reference material")

	assert.Contains(t, prompt, "- built the pipeline")
	assert.Contains(t, prompt, "reference material")
	assert.NotContains(t, prompt, "{{.Content}}")
	assert.NotContains(t, prompt, "{{.Context}}")
}

func TestBuildPrompt_KindSelectsTemplate(t *testing.T) {
	exp := BuildPrompt(KindExperience, "content", "")
	bio := BuildPrompt(KindBio, "content", "")
	act := BuildPrompt(KindActivity, "content", "")

	assert.Contains(t, exp, "Work Experience:")
	assert.Contains(t, bio, "Professional Summary:")
	assert.Contains(t, act, "Activities:")
	assert.NotEqual(t, exp, bio)
	assert.NotEqual(t, exp, act)
}

func TestFormatContent_ExperienceLinesBecomeBullets(t *testing.T) {
	got := FormatContent(KindExperience, []string{"built the pipeline", "cut costs"})
	assert.Equal(t, "- built the pipeline\n- cut costs", got)
}

func TestFormatContent_SkipsBlankLines(t *testing.T) {
	got := FormatContent(KindActivity, []string{"organized meetings", "  ", ""})
	assert.Equal(t, "- organized meetings", got)
}

func TestFormatContent_BioIsProse(t *testing.T) {
	got := FormatContent(KindBio, []string{"An engineer", "who ships"})
	assert.Equal(t, "An engineer\nwho ships", got)
	assert.False(t, strings.Contains(got, "- "))
}

func TestFormatContent_Empty(t *testing.T) {
	assert.Equal(t, "", FormatContent(KindExperience, nil))
}
