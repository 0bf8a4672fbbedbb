package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/assembly"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render themed PDFs from an intake payload without enhancement or upload",
	Long:  `Maps the intake payload straight to document descriptions and runs the renderer for every theme. The written content is used as submitted; nothing leaves the local machine.`,
	RunE:  runRenderCmd,
}

var (
	renderInput     string
	renderYAMLDir   string
	renderOutputDir string
	renderBinary    string
)

func init() {
	renderCommand.Flags().StringVarP(&renderInput, "input", "i", "", "Path to the intake payload JSON file")
	renderCommand.Flags().StringVar(&renderYAMLDir, "yaml-dir", "build/descriptions", "Directory for generated document description files")
	renderCommand.Flags().StringVar(&renderOutputDir, "output-dir", "build/resumes", "Directory for rendered PDF artifacts")
	renderCommand.Flags().StringVar(&renderBinary, "renderer", render.DefaultRendererBinary, "Renderer executable name or path")
	_ = renderCommand.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCommand)
}

func runRenderCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := schemas.ValidateIntake(data); err != nil {
		return err
	}
	payload, err := ingestion.ParsePayload(data)
	if err != nil {
		return err
	}

	doc := ingestion.MapPayload(payload).Normalized()
	if err := doc.Validate(); err != nil {
		return err
	}
	doc = assembly.EscapeDocument(doc)

	o := render.NewOrchestrator(renderYAMLDir, renderOutputDir)
	o.RendererBinary = renderBinary

	timestamp := time.Now().Format("20060102_150405")
	report, err := o.Render(ctx, doc, doc.PersonalInfo.Name, timestamp, uuid.NewString())
	if err != nil {
		return err
	}
	if !report.Success {
		return fmt.Errorf("resume generation failed: %s", report.Diagnostic)
	}

	for _, artifact := range report.Produced {
		fmt.Fprintln(os.Stdout, artifact)
	}
	return nil
}
