// Package render drives the external CV renderer: one document description
// per theme, one renderer invocation per theme, and reconciliation of the
// produced artifacts.
package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/assembly"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultRendererBinary is the CLI that turns a document description into a PDF
const DefaultRendererBinary = "rendercv"

// Orchestrator renders a resume document across all themes.
//
// Working files are scoped per (person, timestamp); the per-theme renderer
// output is additionally keyed by the run token, so two concurrent runs for
// the same person cannot clobber each other's in-flight output. The final
// sweep of OutputDir is still last-writer-wins.
type Orchestrator struct {
	// RendererBinary is the renderer executable name or path
	RendererBinary string
	// YAMLDir receives the per-theme document description files
	YAMLDir string
	// OutputDir receives the renamed PDF artifacts
	OutputDir string
	// Themes defaults to the fixed four-theme set
	Themes []string
}

// NewOrchestrator creates an orchestrator with the default renderer and themes
func NewOrchestrator(yamlDir, outputDir string) *Orchestrator {
	return &Orchestrator{
		RendererBinary: DefaultRendererBinary,
		YAMLDir:        yamlDir,
		OutputDir:      outputDir,
		Themes:         assembly.Themes,
	}
}

// ThemeFailure records why a single theme produced no artifact
type ThemeFailure struct {
	Theme  string
	Reason string
}

// Report is the reconciled outcome of a multi-theme render round
type Report struct {
	// Success is true only when every theme produced an artifact
	Success bool
	// Produced lists the artifact filenames present in OutputDir, in theme order
	Produced []string
	// Failures lists themes that produced nothing
	Failures []ThemeFailure
	// Diagnostic is a human-readable summary when Success is false
	Diagnostic string
}

// DescriptionFilename is the canonical name of a per-theme description file
func DescriptionFilename(personName, timestamp, theme string) string {
	return fmt.Sprintf("%s_%s_resume_%s_CV.yaml", types.AlphanumericName(personName), timestamp, theme)
}

// Render serializes one description per theme, invokes the renderer for each,
// and reconciles the output. Per-theme failures are collected, not fatal; the
// report fails unless every theme produced an artifact. The returned error is
// reserved for environment problems (unusable directories), not render
// failures.
func (o *Orchestrator) Render(ctx context.Context, doc types.ResumeDocument, personName, timestamp, runToken string) (Report, error) {
	if err := os.MkdirAll(o.YAMLDir, 0o755); err != nil {
		return Report{}, &OrchestrationError{Message: "failed to create description directory", Cause: err}
	}
	if err := os.MkdirAll(o.OutputDir, 0o755); err != nil {
		return Report{}, &OrchestrationError{Message: "failed to create output directory", Cause: err}
	}

	o.removeStaleDescriptions(personName, timestamp)
	o.clearOutputArtifacts()

	workDir := filepath.Join(o.OutputDir, runToken)
	defer func() { _ = os.RemoveAll(workDir) }()

	var report Report
	for _, theme := range o.Themes {
		artifact, err := o.renderTheme(ctx, doc, personName, timestamp, runToken, theme)
		if err != nil {
			report.Failures = append(report.Failures, ThemeFailure{Theme: theme, Reason: err.Error()})
			continue
		}
		report.Produced = append(report.Produced, artifact)
	}

	expected := len(o.Themes)
	if len(report.Produced) != expected {
		report.Success = false
		report.Diagnostic = fmt.Sprintf("expected %d rendered artifacts, found %d: %s",
			expected, len(report.Produced), summarizeFailures(report.Failures))
		return report, nil
	}

	report.Success = true
	return report, nil
}

// renderTheme writes the description file, runs the renderer into a
// token-scoped subdirectory, and relocates the single produced PDF into
// OutputDir under a theme-prefixed name.
func (o *Orchestrator) renderTheme(ctx context.Context, doc types.ResumeDocument, personName, timestamp, runToken, theme string) (string, error) {
	desc := assembly.Assemble(doc, theme)
	content, err := assembly.MarshalYAML(desc)
	if err != nil {
		return "", err
	}

	yamlPath := filepath.Join(o.YAMLDir, DescriptionFilename(personName, timestamp, theme))
	if err := os.WriteFile(yamlPath, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write description file: %w", err)
	}

	themeDir := filepath.Join(o.OutputDir, runToken, theme)
	if err := os.MkdirAll(themeDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create theme directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, o.RendererBinary, "render", yamlPath, "--output-folder-name", themeDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", &RendererError{Theme: theme, Message: strings.TrimSpace(string(output)), Cause: err}
	}

	pdfPath, err := findProducedPDF(themeDir)
	if err != nil {
		return "", &RendererError{Theme: theme, Message: err.Error()}
	}

	artifact := theme + "_" + filepath.Base(pdfPath)
	if err := os.Rename(pdfPath, filepath.Join(o.OutputDir, artifact)); err != nil {
		return "", fmt.Errorf("failed to relocate artifact: %w", err)
	}
	_ = os.RemoveAll(themeDir)

	return artifact, nil
}

// removeStaleDescriptions deletes description files for the same person that
// belong to an earlier timestamp. Files for other people are left alone.
func (o *Orchestrator) removeStaleDescriptions(personName, timestamp string) {
	prefix := types.AlphanumericName(personName) + "_"
	entries, err := os.ReadDir(o.YAMLDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") || !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, prefix+timestamp+"_") {
			continue
		}
		_ = os.Remove(filepath.Join(o.YAMLDir, name))
	}
}

// clearOutputArtifacts empties OutputDir of PDFs from earlier runs, so files
// present after a render round unambiguously belong to that round. Work
// directories left behind by a crashed run are swept in the same pass; the
// current run's work directory does not exist yet at this point.
func (o *Orchestrator) clearOutputArtifacts() {
	entries, err := os.ReadDir(o.OutputDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			_ = os.RemoveAll(filepath.Join(o.OutputDir, entry.Name()))
			continue
		}
		if strings.HasSuffix(entry.Name(), ".pdf") {
			_ = os.Remove(filepath.Join(o.OutputDir, entry.Name()))
		}
	}
}

// findProducedPDF locates the single output file the renderer leaves in its
// output folder
func findProducedPDF(dir string) (string, error) {
	var found string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".pdf") {
			found = path
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan renderer output: %w", err)
	}
	if found == "" {
		return "", fmt.Errorf("renderer produced no output file")
	}
	return found, nil
}

func summarizeFailures(failures []ThemeFailure) string {
	if len(failures) == 0 {
		return "no per-theme failures recorded"
	}
	parts := make([]string, len(failures))
	for i, f := range failures {
		parts[i] = fmt.Sprintf("%s (%s)", f.Theme, f.Reason)
	}
	return strings.Join(parts, "; ")
}
