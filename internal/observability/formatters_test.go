package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadLine_ShortLinePaddedToInteriorWidth(t *testing.T) {
	got := padLine("hello")
	assert.Len(t, []rune(got), boxWidth-4)
	assert.True(t, strings.HasPrefix(got, "hello"))
}

func TestPadLine_UnicodePaddedByRuneCount(t *testing.T) {
	got := padLine("résumé • ✓")
	assert.Len(t, []rune(got), boxWidth-4)
}

func TestPadLine_LongUnicodeLineTruncatedOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", boxWidth)
	got := padLine(long)

	assert.True(t, utf8.ValidString(got))
	assert.Len(t, []rune(got), boxWidth-4)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestPrintResumeSummary_BoxStaysAligned(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			Name:  "José María Azaña-Gutiérrez de la Torre y Fernández del Río",
			Email: "jose@example.com",
			Phone: "+34911234567",
		},
	}
	p.PrintResumeSummary(doc)

	out := buf.String()
	require.True(t, utf8.ValidString(out))

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.Len(t, []rune(line), boxWidth, "line: %q", line)
	}
}

func TestPrintRenderReport_UnicodeFailureReason(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRenderReport(&render.Report{
		Failures: []render.ThemeFailure{
			{Theme: "moderncv", Reason: strings.Repeat("é", 60)},
		},
		Diagnostic: "expected 4 rendered artifacts, found 0",
	})

	out := buf.String()
	require.True(t, utf8.ValidString(out))
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.Len(t, []rune(line), boxWidth, "line: %q", line)
	}
}
