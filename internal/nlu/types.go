// Package nlu provides optional LLM-backed intent parsing for the
// classroom finder. Free-form text is mapped onto one of the finder's
// tools via function calling.
//
// Architecture:
//   - Gemini: uses google.golang.org/genai (official SDK)
//   - Groq and other OpenAI-compatible providers: github.com/openai/openai-go/v3
//
// Parsing is disabled entirely when no API key is configured; the agent
// falls back to its keyword heuristic in that case.
package nlu

import (
	"context"
	"fmt"
	"strconv"
)

// Provider identifies an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
	ProviderGroq   Provider = "groq"
)

// groqBaseURL is the OpenAI-compatible endpoint for Groq.
const groqBaseURL = "https://api.groq.com/openai/v1/"

// Default models per provider.
const (
	DefaultGeminiModel = "gemini-2.5-flash-lite"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
)

// Tool names the parser can emit. They mirror the finder's capabilities.
const (
	ToolClassroomsBasic     = "query_classrooms_basic"
	ToolClassroomsAmenities = "query_classrooms_with_amenities"
	ToolSortByDistance      = "sort_classrooms_by_distance"
	ToolDistance            = "get_distance"
	ToolValidateAddress     = "validate_address"
	ToolContactInfo         = "get_contact_information"
	ToolDirectReply         = "direct_reply"
)

// IntentParser maps user text onto a tool invocation.
type IntentParser interface {
	// Parse analyzes user input and returns a tool call.
	Parse(ctx context.Context, text string) (*ParseResult, error)
	// IsEnabled returns true if the parser is properly initialized.
	IsEnabled() bool
	// Provider returns the provider type for metrics.
	Provider() Provider
}

// ParseResult is one parsed tool invocation.
type ParseResult struct {
	// Tool is the function name chosen by the model.
	Tool string

	// Args holds the raw argument values from the function call. Booleans
	// stay typed so "not specified" and "explicitly false" remain
	// distinct downstream.
	Args map[string]any
}

// StringArg returns the named argument as a string, or "" when absent.
func (r *ParseResult) StringArg(key string) string {
	if v, ok := r.Args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// BoolArg returns the named boolean argument and whether it was supplied.
func (r *ParseResult) BoolArg(key string) (bool, bool) {
	v, ok := r.Args[key]
	if !ok {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		return parsed, err == nil
	}
	return false, false
}

// IntArg returns the named integer argument, or 0 when absent.
// JSON numbers arrive as float64.
func (r *ParseResult) IntArg(key string) int {
	switch v := r.Args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
