// Package llm provides the enhancement-service gateway: a thin client over the
// external text-completion model with a fixed, near-deterministic configuration.
package llm

// DefaultModelID is the Anthropic model served through AWS Bedrock that the
// enhancement prompts are written against.
const DefaultModelID = "us.anthropic.claude-3-5-sonnet-20241022-v2:0"

// anthropicVersion is the Bedrock wire-format version for Anthropic models
const anthropicVersion = "bedrock-2023-05-31"

// Config holds the fixed model configuration for enhancement calls
type Config struct {
	ModelID     string
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard enhancement configuration: a bounded
// output budget and low temperature for consistent rewording.
func DefaultConfig() *Config {
	return &Config{
		ModelID:     DefaultModelID,
		MaxTokens:   50000,
		Temperature: 0.2,
	}
}
