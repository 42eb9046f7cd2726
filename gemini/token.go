// Package gemini estimates the token size of the knowledge base with the
// Gemini local tokenizer. No API calls are made.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/llmstxt"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultModel is the model whose tokenizer is used for estimates.
const DefaultModel = "gemini-2.5-flash"

var _ llmstxt.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the Gemini tokenizer.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the tokens of text. A combined artifact is counted
// one document per part so no single part grows with the whole file.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	var parts []*genai.Part
	for _, doc := range strings.Split(text, llmstxt.Separator) {
		parts = append(parts, genai.NewPartFromText(doc))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
