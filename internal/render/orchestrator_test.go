package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderableDocument() types.ResumeDocument {
	return types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "+15550100000"},
		Experience: []types.Experience{
			{JobTitle: "Engineer", Employer: "Acme", Location: "Springfield, IL", StartDate: "2021-06-01", Current: true, Description: []string{"Built the pipeline."}},
		},
	}
}

// writeStub installs an executable shell script standing in for the renderer
func writeStub(t *testing.T, dir, script string) string {
	t.Helper()
	path := filepath.Join(dir, "rendercv-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

// successStub writes one PDF into the --output-folder-name directory ($4)
const successStub = `echo "%PDF-1.4" > "$4/rendered.pdf"
exit 0
`

func newTestOrchestrator(t *testing.T, stubScript string) *Orchestrator {
	t.Helper()
	base := t.TempDir()
	o := NewOrchestrator(filepath.Join(base, "yaml"), filepath.Join(base, "out"))
	o.RendererBinary = writeStub(t, base, stubScript)
	return o
}

func TestDescriptionFilename(t *testing.T) {
	got := DescriptionFilename("Jane Doe", "20240115_120000", "classic")
	assert.Equal(t, "JaneDoe_20240115_120000_resume_classic_CV.yaml", got)
}

func TestRender_AllThemesSucceed(t *testing.T) {
	o := newTestOrchestrator(t, successStub)

	report, err := o.Render(context.Background(), renderableDocument(), "Jane Doe", "20240115_120000", "token-1")
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Empty(t, report.Failures)
	require.Len(t, report.Produced, 4)
	assert.Equal(t, []string{
		"classic_rendered.pdf",
		"moderncv_rendered.pdf",
		"sb2nov_rendered.pdf",
		"engineeringresumes_rendered.pdf",
	}, report.Produced)

	for _, artifact := range report.Produced {
		_, err := os.Stat(filepath.Join(o.OutputDir, artifact))
		assert.NoError(t, err, artifact)
	}

	// one description file per theme
	entries, err := os.ReadDir(o.YAMLDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	// the token-scoped work directory is gone
	_, err = os.Stat(filepath.Join(o.OutputDir, "token-1"))
	assert.True(t, os.IsNotExist(err))
}

func TestRender_SingleThemeFailureFailsTheRound(t *testing.T) {
	// fail only the moderncv invocation, identified by its description file
	script := `case "$2" in
*moderncv*) echo "renderer exploded" >&2; exit 1 ;;
esac
` + successStub
	o := newTestOrchestrator(t, script)

	report, err := o.Render(context.Background(), renderableDocument(), "Jane Doe", "20240115_120000", "token-1")
	require.NoError(t, err)

	assert.False(t, report.Success)
	assert.Len(t, report.Produced, 3)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "moderncv", report.Failures[0].Theme)
	assert.Contains(t, report.Diagnostic, "expected 4 rendered artifacts, found 3")
	assert.Contains(t, report.Diagnostic, "moderncv")
}

func TestRender_NoOutputFileIsAThemeFailure(t *testing.T) {
	o := newTestOrchestrator(t, "exit 0\n")

	report, err := o.Render(context.Background(), renderableDocument(), "Jane Doe", "20240115_120000", "token-1")
	require.NoError(t, err)

	assert.False(t, report.Success)
	assert.Empty(t, report.Produced)
	assert.Len(t, report.Failures, 4)
	assert.Contains(t, report.Diagnostic, "expected 4 rendered artifacts, found 0")
}

func TestRender_RemovesStaleDescriptionsForSamePerson(t *testing.T) {
	o := newTestOrchestrator(t, successStub)
	require.NoError(t, os.MkdirAll(o.YAMLDir, 0o755))

	stale := filepath.Join(o.YAMLDir, "JaneDoe_20230101_000000_resume_classic_CV.yaml")
	other := filepath.Join(o.YAMLDir, "JohnSmith_20230101_000000_resume_classic_CV.yaml")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("old"), 0o644))

	_, err := o.Render(context.Background(), renderableDocument(), "Jane Doe", "20240115_120000", "token-1")
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale description for the same person should be removed")
	_, err = os.Stat(other)
	assert.NoError(t, err, "descriptions for other people are left alone")
}

func TestRender_SweepsAbandonedWorkDirectories(t *testing.T) {
	o := newTestOrchestrator(t, successStub)

	abandoned := filepath.Join(o.OutputDir, "stale-token", "classic")
	require.NoError(t, os.MkdirAll(abandoned, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(abandoned, "half-rendered.pdf"), []byte("old"), 0o644))

	report, err := o.Render(context.Background(), renderableDocument(), "Jane Doe", "20240115_120000", "token-1")
	require.NoError(t, err)
	require.True(t, report.Success)

	_, err = os.Stat(filepath.Join(o.OutputDir, "stale-token"))
	assert.True(t, os.IsNotExist(err))
}

func TestRender_ClearsEarlierArtifacts(t *testing.T) {
	o := newTestOrchestrator(t, successStub)
	require.NoError(t, os.MkdirAll(o.OutputDir, 0o755))

	leftover := filepath.Join(o.OutputDir, "classic_old.pdf")
	require.NoError(t, os.WriteFile(leftover, []byte("old"), 0o644))

	report, err := o.Render(context.Background(), renderableDocument(), "Jane Doe", "20240115_120000", "token-1")
	require.NoError(t, err)
	require.True(t, report.Success)

	_, err = os.Stat(leftover)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(o.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}
