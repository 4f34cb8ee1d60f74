package anthropicprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"applyai-backend/internal/llm"
	"applyai-backend/internal/shared/telemetry"
)

// Resumes can be long; the extraction includes a full-text copy.
const extractMaxTokens = 8096

// Client implements llm.Client using Anthropic's Claude with native PDF input.
type Client struct {
	client anthropic.Client
	model  string
}

// NewClient constructs a Claude-backed extraction client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// ExtractResume sends the base64-encoded PDF plus the fixed extraction prompts
// to Claude and returns the raw text of the first text block. Transport and
// provider errors are surfaced to the caller unmodified; there are no retries.
func (c *Client) ExtractResume(ctx context.Context, pdfBase64 string) (string, error) {
	start := time.Now()

	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: extractMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: llm.ResumeSystemPrompt()},
		},
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				{OfDocument: &anthropic.DocumentBlockParam{
					Source: anthropic.DocumentBlockParamSourceUnion{
						OfBase64: &anthropic.Base64PDFSourceParam{
							Data: pdfBase64,
						},
					},
				}},
				{OfText: &anthropic.TextBlockParam{Text: llm.ResumeParsePrompt()}},
			},
		}},
	})
	if err != nil {
		return "", err
	}

	var text string
	for _, block := range response.Content {
		if textBlock := block.AsText(); textBlock.Text != "" {
			text = textBlock.Text
			break
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text content in model response")
	}

	telemetry.Info("llm.extract.complete", map[string]any{
		"provider":    "anthropic",
		"model":       c.model,
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		"output_len":  len(text),
	})

	return text, nil
}

var _ llm.Client = (*Client)(nil)
