package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBullets_EmptyString(t *testing.T) {
	assert.Equal(t, "", Bullets(""))
}

func TestBullets_PlainLineGetsCapitalAndPeriod(t *testing.T) {
	assert.Equal(t, "Led the migration.", Bullets("led the migration"))
}

func TestBullets_ExistingPeriodKept(t *testing.T) {
	assert.Equal(t, "Led the migration.", Bullets("Led the migration."))
}

func TestBullets_StripsLeadingGlyphMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dot bullet", "• shipped the feature", "Shipped the feature."},
		{"asterisk", "* shipped the feature", "Shipped the feature."},
		{"hyphen", "- shipped the feature", "Shipped the feature."},
		{"arrow", "→ shipped the feature", "Shipped the feature."},
		{"square", "▪ shipped the feature", "Shipped the feature."},
		{"ordinal", "1. shipped the feature", "Shipped the feature."},
		{"two-digit ordinal", "12. shipped the feature", "Shipped the feature."},
		{"doubled markers", "• - shipped the feature", "Shipped the feature."},
		{"glyph then ordinal", "• 2. organize event", "Organize event."},
		{"hyphen then ordinal", "- 1. buy supplies", "Buy supplies."},
		{"stacked ordinals", "1. 2. buy supplies", "Buy supplies."},
		{"glyph without space", "•shipped the feature", "Shipped the feature."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bullets(tt.input))
		})
	}
}

func TestBullets_MultiLine(t *testing.T) {
	input := "• built the pipeline\n• cut costs by 40%"
	assert.Equal(t, "Built the pipeline.\nCut costs by 40%.", Bullets(input))
}

func TestBullets_DropsBlankLines(t *testing.T) {
	input := "first point\n\n\nsecond point"
	assert.Equal(t, "First point.\nSecond point.", Bullets(input))
}

func TestBullets_DropsMarkerOnlyLines(t *testing.T) {
	input := "real content\n• \n- "
	assert.Equal(t, "Real content.", Bullets(input))
}

func TestBullets_RemovesMidLineGlyph(t *testing.T) {
	assert.Equal(t, "Did a did b.", Bullets("did a • did b"))
}

func TestBullets_RemovesGlyphWithoutTrailingSpace(t *testing.T) {
	assert.Equal(t, "Ab.", Bullets("a•b"))
}

func TestBullets_PreservesHyphenatedWords(t *testing.T) {
	assert.Equal(t, "Led cross-functional teams.", Bullets("- led cross-functional teams"))
}

func TestBullets_PreservesLeadingIndentation(t *testing.T) {
	assert.Equal(t, "  Nested point.", Bullets("  • nested point"))
}

func TestBullets_PreservesUnicodeContent(t *testing.T) {
	assert.Equal(t, "Wrote the résumé guide.", Bullets("wrote the résumé guide"))
}

func TestBullets_Idempotent(t *testing.T) {
	inputs := []string{
		"• shipped the feature",
		"- led cross-functional teams\n* cut costs by 40%",
		"1. first\n2. second",
		"• 2. organize event",
		"- 1. buy supplies",
		"plain text without markers",
	}
	for _, input := range inputs {
		once := Bullets(input)
		assert.Equal(t, once, Bullets(once), "input: %q", input)
	}
}
