package llm

import (
	"context"
	"errors"
)

// Client abstracts the text-generation provider used for resume extraction.
// Implementations send the document and prompts upstream and return the
// model's raw text output, which is not guaranteed to be valid JSON.
type Client interface {
	ExtractResume(ctx context.Context, pdfBase64 string) (string, error)
}

// ErrNotConfigured is returned when no provider credentials are available.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient is a stub implementation used when no API key is set.
type PlaceholderClient struct{}

// ExtractResume returns ErrNotConfigured.
func (PlaceholderClient) ExtractResume(ctx context.Context, pdfBase64 string) (string, error) {
	_ = ctx
	_ = pdfBase64
	return "", ErrNotConfigured
}
