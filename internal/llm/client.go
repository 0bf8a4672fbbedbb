package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Client is an abstraction over the text-completion service
type Client interface {
	// GenerateContent sends a single user-role prompt and returns the raw
	// response text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// invokeAPI is the slice of the Bedrock runtime client the gateway uses
type invokeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockClient implements Client for Anthropic models on AWS Bedrock
type BedrockClient struct {
	runtime invokeAPI
	config  *Config
}

// NewBedrockClient creates a Bedrock-backed client using the default AWS
// credential chain.
func NewBedrockClient(ctx context.Context, config *Config) (*BedrockClient, error) {
	if config == nil {
		config = DefaultConfig()
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &BedrockClient{
		runtime: bedrockruntime.NewFromConfig(awsCfg),
		config:  config,
	}, nil
}

// NewBedrockClientWithAPI creates a client around an existing runtime API.
// Used by tests to substitute a stub.
func NewBedrockClientWithAPI(api invokeAPI, config *Config) *BedrockClient {
	if config == nil {
		config = DefaultConfig()
	}
	return &BedrockClient{runtime: api, config: config}
}

// anthropicRequest is the Bedrock request body for Anthropic messages
type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	Temperature      float64            `json:"temperature"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the subset of the response envelope the gateway reads
type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// GenerateContent invokes the model with the fixed configuration and extracts
// the single text payload from the response envelope.
func (c *BedrockClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := buildRequestBody(c.config, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to build request body: %w", err)
	}

	out, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.config.ModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke model %s: %w", c.config.ModelID, err)
	}

	return extractText(out.Body)
}

// buildRequestBody serializes the fixed-configuration Anthropic messages body
func buildRequestBody(config *Config, prompt string) ([]byte, error) {
	req := anthropicRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        config.MaxTokens,
		Temperature:      config.Temperature,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}
	return json.Marshal(req)
}

// extractText pulls the text payload out of a response envelope. Any shape
// other than a content list whose first block carries text is an error.
func extractText(body []byte) (string, error) {
	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse model response: %w", err)
	}

	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return "", fmt.Errorf("unexpected response format from the model")
	}

	return resp.Content[0].Text, nil
}
