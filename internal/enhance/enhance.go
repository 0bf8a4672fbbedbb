package enhance

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/refcontext"
)

// Result is the tagged outcome of a single field enhancement. OK is true only
// when the service was reached and the parsed, sanitized text is non-empty;
// the composing layer decides whether a failed enhancement falls back to the
// raw input or aborts.
type Result struct {
	OK   bool
	Text string
	Err  error
}

// Enhancer runs the per-field enhancement sequence: reference context lookup,
// prompt assembly, model invocation, envelope parsing, sanitization.
type Enhancer struct {
	client   llm.Client
	provider refcontext.Provider
}

// NewEnhancer creates an Enhancer around a model client and a reference
// context provider.
func NewEnhancer(client llm.Client, provider refcontext.Provider) *Enhancer {
	if provider == nil {
		provider = refcontext.Static("")
	}
	return &Enhancer{client: client, provider: provider}
}

// Enhance rewrites the given description lines for a content kind. Transport
// and parse failures never escape as errors; they are reported through the
// Result tag.
func (e *Enhancer) Enhance(ctx context.Context, kind Kind, lines []string) Result {
	content := FormatContent(kind, lines)
	if content == "" {
		return Result{OK: false, Err: fmt.Errorf("no content to enhance")}
	}

	prompt := BuildPrompt(kind, content, e.provider.ReferenceText(ctx))

	raw, err := e.client.GenerateContent(ctx, prompt)
	if err != nil {
		return Result{OK: false, Err: fmt.Errorf("enhancement call failed: %w", err)}
	}

	text := Parse(kind, raw)
	if text == "" {
		return Result{OK: false, Err: fmt.Errorf("response contained no %q section", kind.Marker())}
	}

	return Result{OK: true, Text: text}
}
