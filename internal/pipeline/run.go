// Package pipeline composes the full resume generation sequence: validation,
// per-field enhancement, escaping, multi-theme rendering, and publication.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/assembly"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/publish"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/types"
)

// FieldEnhancer rewrites one field's description lines
type FieldEnhancer interface {
	Enhance(ctx context.Context, kind enhance.Kind, lines []string) enhance.Result
}

// Renderer produces the per-theme artifacts for a document
type Renderer interface {
	Render(ctx context.Context, doc types.ResumeDocument, personName, timestamp, runToken string) (render.Report, error)
}

// Publisher uploads rendered artifacts to object storage
type Publisher interface {
	Upload(ctx context.Context, localDir string, filenames []string, userName, userEmail string) publish.Report
}

// Pipeline wires the stages together. Enhancer, Publisher, Store and Printer
// are optional; Renderer is required.
type Pipeline struct {
	Enhancer    FieldEnhancer
	Renderer    Renderer
	Publisher   Publisher
	Store       *db.Store
	Printer     *observability.Printer
	ArtifactDir string
	SkipUpload  bool
	Verbose     bool

	// now is replaceable in tests
	Now func() time.Time
}

// Result reports what a completed run produced
type Result struct {
	RunToken  string
	Timestamp string
	Artifacts []string
	URIs      []string
}

// Run executes the pipeline for one resume document. The document is taken by
// value: stages transform copies, and the caller's document is never mutated.
// Preconditions are checked before any external call is made.
func (p *Pipeline) Run(ctx context.Context, doc types.ResumeDocument) (Result, error) {
	doc = doc.Normalized()
	if err := doc.Validate(); err != nil {
		return Result{}, err
	}

	if p.Verbose && p.Printer != nil {
		p.Printer.PrintResumeSummary(&doc)
	}

	doc = p.enhanceDocument(ctx, doc)
	doc = assembly.EscapeDocument(doc)

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	timestamp := now().Format("20060102_150405")
	runToken := uuid.NewString()

	runID := p.recordRunStart(ctx, runToken, doc)
	status := db.StatusFailed
	defer func() { p.recordRunEnd(ctx, runID, status) }()

	report, err := p.Renderer.Render(ctx, doc, doc.PersonalInfo.Name, timestamp, runToken)
	if err != nil {
		return Result{}, err
	}
	if p.Verbose && p.Printer != nil {
		p.Printer.PrintRenderReport(&report)
	}
	if !report.Success {
		return Result{}, fmt.Errorf("resume generation failed: %s", report.Diagnostic)
	}

	result := Result{
		RunToken:  runToken,
		Timestamp: timestamp,
		Artifacts: report.Produced,
	}

	if p.SkipUpload || p.Publisher == nil {
		status = db.StatusCompleted
		return result, nil
	}

	upload := p.Publisher.Upload(ctx, p.ArtifactDir, report.Produced, doc.PersonalInfo.Name, doc.PersonalInfo.Email)
	if p.Verbose && p.Printer != nil {
		p.Printer.PrintUploadReport(&upload)
	}
	if !upload.Success {
		return Result{}, fmt.Errorf("artifact upload failed: %s", upload.Diagnostic)
	}

	p.recordArtifacts(ctx, runID, upload.URIs)

	result.URIs = make([]string, 0, len(upload.URIs))
	for _, uri := range upload.URIs {
		result.URIs = append(result.URIs, uri)
	}
	sort.Strings(result.URIs)

	status = db.StatusCompleted
	return result, nil
}

// enhanceDocument runs the per-field enhancement round. A failed or empty
// enhancement keeps the raw input text; the resume is never silently emptied.
func (p *Pipeline) enhanceDocument(ctx context.Context, doc types.ResumeDocument) types.ResumeDocument {
	if p.Enhancer == nil {
		return doc
	}

	if doc.Bio != "" {
		res := p.Enhancer.Enhance(ctx, enhance.KindBio, []string{doc.Bio})
		p.printOutcome("bio", res)
		if res.OK {
			doc.Bio = res.Text
		}
	}

	experience := make([]types.Experience, len(doc.Experience))
	copy(experience, doc.Experience)
	for i, exp := range experience {
		if len(exp.Description) == 0 {
			continue
		}
		res := p.Enhancer.Enhance(ctx, enhance.KindExperience, exp.Description)
		p.printOutcome(fmt.Sprintf("experience %q", exp.JobTitle), res)
		if res.OK {
			experience[i].Description = strings.Split(res.Text, "\n")
		}
	}
	doc.Experience = experience

	activities := make([]types.Activity, len(doc.Activities))
	copy(activities, doc.Activities)
	for i, act := range activities {
		if len(act.Description) == 0 {
			continue
		}
		res := p.Enhancer.Enhance(ctx, enhance.KindActivity, act.Description)
		p.printOutcome(fmt.Sprintf("activity %q", act.ActivityName), res)
		if res.OK {
			activities[i].Description = strings.Split(res.Text, "\n")
		}
	}
	doc.Activities = activities

	return doc
}

func (p *Pipeline) printOutcome(field string, res enhance.Result) {
	if p.Verbose && p.Printer != nil {
		p.Printer.PrintEnhancementOutcome(field, res.OK, res.Err)
	}
}

// recordRunStart creates the run record when a store is configured.
// Persistence is best-effort and never affects the pipeline outcome.
func (p *Pipeline) recordRunStart(ctx context.Context, runToken string, doc types.ResumeDocument) uuid.UUID {
	if p.Store == nil {
		return uuid.Nil
	}
	id, err := p.Store.CreateRun(ctx, runToken, doc.PersonalInfo.Name, doc.PersonalInfo.Email)
	if err != nil {
		log.Printf("pipeline: failed to record run start: %v", err)
		return uuid.Nil
	}
	return id
}

func (p *Pipeline) recordRunEnd(ctx context.Context, runID uuid.UUID, status string) {
	if p.Store == nil || runID == uuid.Nil {
		return
	}
	if err := p.Store.CompleteRun(ctx, runID, status); err != nil {
		log.Printf("pipeline: failed to record run end: %v", err)
	}
}

func (p *Pipeline) recordArtifacts(ctx context.Context, runID uuid.UUID, uris map[string]string) {
	if p.Store == nil || runID == uuid.Nil {
		return
	}
	for filename, uri := range uris {
		theme, _, _ := strings.Cut(filename, "_")
		if err := p.Store.SaveArtifact(ctx, runID, theme, filename, uri); err != nil {
			log.Printf("pipeline: failed to record artifact %s: %v", filename, err)
		}
	}
}
