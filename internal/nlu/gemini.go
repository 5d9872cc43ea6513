// This file contains the Gemini implementation of intent parsing.
package nlu

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// geminiParser provides intent parsing using Gemini function calling.
// It implements the IntentParser interface.
type geminiParser struct {
	client     *genai.Client
	model      string
	tools      []*genai.Tool
	systemInst string
}

// newGeminiParser creates a Gemini-based intent parser.
// Returns nil if apiKey is empty (parsing disabled).
func newGeminiParser(ctx context.Context, apiKey, model string) (*geminiParser, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: NLU disabled when no API key
	}

	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiParser{
		client: client,
		model:  model,
		tools: []*genai.Tool{{
			FunctionDeclarations: BuildToolFunctions(),
		}},
		systemInst: systemPrompt,
	}, nil
}

// Parse analyzes the user input and returns a tool call.
// ANY mode forces function calling, including direct_reply for small talk.
func (p *geminiParser) Parse(ctx context.Context, text string) (*ParseResult, error) {
	if p == nil {
		return nil, errors.New("intent parser is nil")
	}

	config := &genai.GenerateContentConfig{
		Tools:             p.tools,
		SystemInstruction: genai.NewContentFromText(p.systemInst, genai.RoleUser),
		ToolConfig: &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAny,
			},
		},
		Temperature:     genai.Ptr[float32](0.1), // Low temperature for consistent classification
		MaxOutputTokens: 512,
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(text), config)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	return p.parseResult(result)
}

func (p *geminiParser) parseResult(result *genai.GenerateContentResponse) (*ParseResult, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, errors.New("empty response from model")
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, errors.New("no content in response")
	}

	for _, part := range candidate.Content.Parts {
		if part.FunctionCall != nil {
			return toolCallResult(part.FunctionCall.Name, part.FunctionCall.Args)
		}
	}

	return nil, errors.New("no function call in response (expected with ANY mode)")
}

// IsEnabled returns true if the intent parser is enabled.
func (p *geminiParser) IsEnabled() bool {
	return p != nil && p.client != nil
}

// Provider returns the provider type for this parser.
func (p *geminiParser) Provider() Provider {
	return ProviderGemini
}

// toolCallResult validates a model tool call and wraps it as a ParseResult.
func toolCallResult(name string, args map[string]any) (*ParseResult, error) {
	if !knownTools[name] {
		return nil, fmt.Errorf("unknown function: %s", name)
	}
	if args == nil {
		args = map[string]any{}
	}
	return &ParseResult{Tool: name, Args: args}, nil
}
