package main

import (
	"context"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/publish"
	"github.com/jonathan/resume-builder/internal/refcontext"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Run the full resume generation pipeline end-to-end",
	Long: `Reads an intake payload, enhances the written content, renders one PDF per theme, and publishes the artifacts to S3.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath  string
	buildInput       string
	buildYAMLDir     string
	buildOutputDir   string
	buildRenderer    string
	buildBucket      string
	buildRAGBucket   string
	buildRAGKeys     []string
	buildDatabaseURL string
	buildModelID     string
	buildSkipEnhance bool
	buildSkipUpload  bool
	buildVerbose     bool
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVarP(&buildInput, "input", "i", "", "Path to the intake payload JSON file")
	buildCommand.Flags().StringVar(&buildYAMLDir, "yaml-dir", "", "Directory for generated document description files")
	buildCommand.Flags().StringVar(&buildOutputDir, "output-dir", "", "Directory for rendered PDF artifacts")
	buildCommand.Flags().StringVar(&buildRenderer, "renderer", "", "Renderer executable name or path")
	buildCommand.Flags().StringVarP(&buildBucket, "bucket", "b", "", "S3 bucket for published resumes (defaults to RESUME_S3_BUCKET env var)")
	buildCommand.Flags().StringVar(&buildRAGBucket, "rag-bucket", "", "S3 bucket holding sample reference PDFs (optional)")
	buildCommand.Flags().StringSliceVar(&buildRAGKeys, "rag-key", nil, "Object key of a sample reference PDF (repeatable)")
	buildCommand.Flags().StringVar(&buildModelID, "model-id", "", "Bedrock model identifier")
	buildCommand.Flags().BoolVar(&buildSkipEnhance, "skip-enhance", false, "Skip the AI enhancement stage")
	buildCommand.Flags().BoolVar(&buildSkipUpload, "skip-upload", false, "Skip the S3 publish stage")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed progress information")

	// Database URL for run records
	buildCommand.Flags().StringVar(&buildDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if buildVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", buildConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = buildInput
	}
	if cmd.Flags().Changed("yaml-dir") {
		cfg.YAMLDir = buildYAMLDir
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = buildOutputDir
	}
	if cmd.Flags().Changed("renderer") {
		cfg.Renderer = buildRenderer
	}
	if cmd.Flags().Changed("bucket") {
		cfg.Bucket = buildBucket
	}
	if cmd.Flags().Changed("rag-bucket") {
		cfg.RAGBucket = buildRAGBucket
	}
	if cmd.Flags().Changed("rag-key") {
		cfg.RAGKeys = buildRAGKeys
	}
	if cmd.Flags().Changed("model-id") {
		cfg.ModelID = buildModelID
	}
	if cmd.Flags().Changed("skip-enhance") {
		cfg.SkipEnhance = buildSkipEnhance
	}
	if cmd.Flags().Changed("skip-upload") {
		cfg.SkipUpload = buildSkipUpload
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = buildDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		YAMLDir:   "build/descriptions",
		OutputDir: "build/resumes",
		Renderer:  render.DefaultRendererBinary,
		ModelID:   llm.DefaultModelID,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag or config)")
	}
	if cfg.Bucket == "" {
		cfg.Bucket = os.Getenv("RESUME_S3_BUCKET")
	}
	if cfg.Bucket == "" && !cfg.SkipUpload {
		return fmt.Errorf("RESUME_S3_BUCKET environment variable or --bucket flag is required (or use --skip-upload)")
	}
	if cfg.RAGBucket == "" {
		cfg.RAGBucket = os.Getenv("RAG_S3_BUCKET")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 5: Read and validate the intake payload
	data, err := os.ReadFile(cfg.Input)
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
	doc := ingestion.MapPayload(payload)

	// Step 6: Wire the stages
	p := &pipeline.Pipeline{
		Renderer:    newOrchestrator(cfg),
		Printer:     observability.NewPrinter(os.Stdout),
		ArtifactDir: cfg.OutputDir,
		SkipUpload:  cfg.SkipUpload,
		Verbose:     cfg.Verbose,
	}

	needsAWS := !cfg.SkipEnhance || !cfg.SkipUpload
	if needsAWS {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		s3Client := s3.NewFromConfig(awsCfg)

		if !cfg.SkipEnhance {
			modelCfg := llm.DefaultConfig()
			modelCfg.ModelID = cfg.ModelID
			client, err := llm.NewBedrockClient(ctx, modelCfg)
			if err != nil {
				return err
			}

			var provider refcontext.Provider
			if cfg.RAGBucket != "" {
				provider = refcontext.NewS3Provider(s3Client, cfg.RAGBucket, cfg.RAGKeys)
			}
			p.Enhancer = enhance.NewEnhancer(client, provider)
		}

		if !cfg.SkipUpload {
			p.Publisher = publish.NewUploader(s3Client, cfg.Bucket)
		}
	}

	if cfg.DatabaseURL != "" {
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer store.Close()
		p.Store = store
	}

	result, err := p.Run(ctx, doc)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated %d resumes (run %s)\n", len(result.Artifacts), result.RunToken)
	for _, uri := range result.URIs {
		fmt.Fprintf(os.Stdout, "  %s\n", uri)
	}
	return nil
}

func newOrchestrator(cfg config.Config) *render.Orchestrator {
	o := render.NewOrchestrator(cfg.YAMLDir, cfg.OutputDir)
	if cfg.Renderer != "" {
		o.RendererBinary = cfg.Renderer
	}
	return o
}
