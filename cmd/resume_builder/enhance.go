package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/refcontext"
	"github.com/spf13/cobra"
)

var enhanceCommand = &cobra.Command{
	Use:   "enhance",
	Short: "Enhance a single block of resume text",
	Long: `Reads description lines from a file (or stdin with -), runs one enhancement round for the given content kind, and prints the rewritten text.

Useful for previewing what the build pipeline would do to a field.`,
	RunE: runEnhanceCmd,
}

var (
	enhanceKind      string
	enhanceInput     string
	enhanceModelID   string
	enhanceRAGBucket string
	enhanceRAGKeys   []string
)

func init() {
	enhanceCommand.Flags().StringVarP(&enhanceKind, "kind", "k", "experience", "Content kind: experience, bio, or activity")
	enhanceCommand.Flags().StringVarP(&enhanceInput, "input", "i", "-", "Path to a text file with one description line per line, or - for stdin")
	enhanceCommand.Flags().StringVar(&enhanceModelID, "model-id", llm.DefaultModelID, "Bedrock model identifier")
	enhanceCommand.Flags().StringVar(&enhanceRAGBucket, "rag-bucket", "", "S3 bucket holding sample reference PDFs (optional)")
	enhanceCommand.Flags().StringSliceVar(&enhanceRAGKeys, "rag-key", nil, "Object key of a sample reference PDF (repeatable)")

	rootCmd.AddCommand(enhanceCommand)
}

func runEnhanceCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	kind, err := parseKind(enhanceKind)
	if err != nil {
		return err
	}

	lines, err := readLines(enhanceInput)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no input lines to enhance")
	}

	modelCfg := llm.DefaultConfig()
	modelCfg.ModelID = enhanceModelID
	client, err := llm.NewBedrockClient(ctx, modelCfg)
	if err != nil {
		return err
	}

	var provider refcontext.Provider
	if enhanceRAGBucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		provider = refcontext.NewS3Provider(s3.NewFromConfig(awsCfg), enhanceRAGBucket, enhanceRAGKeys)
	}

	res := enhance.NewEnhancer(client, provider).Enhance(ctx, kind, lines)
	if !res.OK {
		return fmt.Errorf("enhancement failed: %w", res.Err)
	}

	fmt.Fprintln(os.Stdout, res.Text)
	return nil
}

func parseKind(name string) (enhance.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "experience":
		return enhance.KindExperience, nil
	case "bio", "summary":
		return enhance.KindBio, nil
	case "activity":
		return enhance.KindActivity, nil
	default:
		return "", fmt.Errorf("unknown content kind %q (want experience, bio, or activity)", name)
	}
}

func readLines(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
