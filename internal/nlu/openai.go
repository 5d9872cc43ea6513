// This file contains the OpenAI-compatible implementation of intent
// parsing. It works with Groq and any other provider exposing the OpenAI
// chat completions API via a custom BaseURL.
package nlu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openaiParser provides intent parsing using an OpenAI-compatible API.
// It implements the IntentParser interface.
type openaiParser struct {
	client     openai.Client
	model      string
	tools      []openai.ChatCompletionToolUnionParam
	systemInst string
	provider   Provider
}

// newOpenAIParser creates an OpenAI-compatible intent parser.
// Returns nil if apiKey is empty (parsing disabled).
func newOpenAIParser(_ context.Context, provider Provider, baseURL, apiKey, model string) (*openaiParser, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: NLU disabled when no API key
	}

	if model == "" {
		if provider != ProviderGroq {
			return nil, fmt.Errorf("model is required for provider %s", provider)
		}
		model = DefaultGroqModel
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &openaiParser{
		client:     client,
		model:      model,
		tools:      buildOpenAITools(),
		systemInst: systemPrompt,
		provider:   provider,
	}, nil
}

// buildOpenAITools converts the genai function declarations to the OpenAI
// tool format. Schema types must be lowercased to match the JSON Schema
// spec ("boolean", not "BOOLEAN").
func buildOpenAITools() []openai.ChatCompletionToolUnionParam {
	funcDecls := BuildToolFunctions()
	result := make([]openai.ChatCompletionToolUnionParam, 0, len(funcDecls))

	for _, fd := range funcDecls {
		properties := make(map[string]any, len(fd.Parameters.Properties))
		for name, schema := range fd.Parameters.Properties {
			properties[name] = map[string]string{
				"type":        strings.ToLower(string(schema.Type)),
				"description": schema.Description,
			}
		}

		tool := openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        fd.Name,
			Description: openai.String(fd.Description),
			Parameters: openai.FunctionParameters{
				"type":       "object",
				"properties": properties,
				"required":   fd.Parameters.Required,
			},
		})
		result = append(result, tool)
	}

	return result
}

// Parse analyzes the user input and returns a tool call.
// Required mode forces function calling.
func (p *openaiParser) Parse(ctx context.Context, text string) (*ParseResult, error) {
	if p == nil {
		return nil, errors.New("intent parser is nil")
	}

	params := openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.systemInst),
			openai.UserMessage(text),
		},
		Tools: p.tools,
		ToolChoice: openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String(string(openai.ChatCompletionToolChoiceOptionAutoRequired)),
		},
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(512),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	return p.parseResult(resp)
}

func (p *openaiParser) parseResult(resp *openai.ChatCompletion) (*ParseResult, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, errors.New("empty response from model")
	}

	choice := resp.Choices[0]
	if len(choice.Message.ToolCalls) == 0 {
		return nil, errors.New("no tool call in response (expected with required mode)")
	}

	tc := choice.Message.ToolCalls[0]
	if tc.Type != "function" {
		return nil, fmt.Errorf("unexpected tool type: %s", tc.Type)
	}

	var args map[string]any
	if tc.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return nil, fmt.Errorf("failed to parse function arguments: %w", err)
		}
	}

	return toolCallResult(tc.Function.Name, args)
}

// IsEnabled returns true if the intent parser is enabled.
func (p *openaiParser) IsEnabled() bool {
	return p != nil
}

// Provider returns the provider type for this parser.
func (p *openaiParser) Provider() Provider {
	return p.provider
}
