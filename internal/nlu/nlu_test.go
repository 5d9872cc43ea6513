package nlu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/averyhall/classroom-finder-go/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildToolFunctionsCoversAllTools(t *testing.T) {
	t.Parallel()

	decls := BuildToolFunctions()
	got := make(map[string]bool, len(decls))
	for _, d := range decls {
		got[d.Name] = true
		require.NotNil(t, d.Parameters, "tool %s has no parameter schema", d.Name)
		assert.NotEmpty(t, d.Description, "tool %s has no description", d.Name)
	}

	for name := range knownTools {
		assert.True(t, got[name], "missing declaration for %s", name)
	}
	assert.Len(t, decls, len(knownTools))
}

func TestBuildOpenAIToolsLowercasesTypes(t *testing.T) {
	t.Parallel()

	tools := buildOpenAITools()
	require.Len(t, tools, len(knownTools))

	for _, tool := range tools {
		require.NotNil(t, tool.OfFunction)
		fn := tool.OfFunction.Function
		props, ok := fn.Parameters["properties"].(map[string]any)
		require.True(t, ok)
		for name, prop := range props {
			m, ok := prop.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, strings.ToLower(m["type"]), m["type"],
				"type for %s.%s must be lowercase", fn.Name, name)
		}
	}
}

func TestToolCallResult(t *testing.T) {
	t.Parallel()

	result, err := toolCallResult(ToolContactInfo, map[string]any{"query": "book a room"})
	require.NoError(t, err)
	assert.Equal(t, ToolContactInfo, result.Tool)
	assert.Equal(t, "book a room", result.StringArg("query"))

	_, err = toolCallResult("made_up_tool", nil)
	assert.Error(t, err)
}

func TestParseResultArgAccessors(t *testing.T) {
	t.Parallel()

	r := &ParseResult{Tool: ToolClassroomsAmenities, Args: map[string]any{
		"class_size": float64(20),
		"projector":  false,
		"zoom_room":  true,
		"department": "Physics",
	}}

	assert.Equal(t, 20, r.IntArg("class_size"))
	assert.Equal(t, "Physics", r.StringArg("department"))

	v, ok := r.BoolArg("projector")
	assert.True(t, ok)
	assert.False(t, v)

	v, ok = r.BoolArg("zoom_room")
	assert.True(t, ok)
	assert.True(t, v)

	// Absent booleans stay absent, not false.
	_, ok = r.BoolArg("whiteboard")
	assert.False(t, ok)

	assert.Equal(t, 0, r.IntArg("missing"))
	assert.Equal(t, "", r.StringArg("missing"))
}

type stubParser struct {
	provider Provider
	result   *ParseResult
	err      error
	calls    int
}

func (s *stubParser) Parse(context.Context, string) (*ParseResult, error) {
	s.calls++
	return s.result, s.err
}
func (s *stubParser) IsEnabled() bool    { return true }
func (s *stubParser) Provider() Provider { return s.provider }

func TestFallbackParserTriesNextProvider(t *testing.T) {
	t.Parallel()

	failing := &stubParser{provider: ProviderGemini, err: errors.New("quota exceeded")}
	working := &stubParser{provider: ProviderGroq, result: &ParseResult{Tool: ToolDirectReply, Args: map[string]any{"message": "hi"}}}

	f := &FallbackParser{parsers: []IntentParser{failing, working}, log: logger.New("error")}

	result, err := f.Parse(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, ToolDirectReply, result.Tool)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, working.calls)
}

func TestFallbackParserAllFail(t *testing.T) {
	t.Parallel()

	f := &FallbackParser{
		parsers: []IntentParser{&stubParser{provider: ProviderGemini, err: errors.New("boom")}},
		log:     logger.New("error"),
	}

	_, err := f.Parse(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all providers failed")
}

func TestNewFallbackParserDisabledWithoutKeys(t *testing.T) {
	t.Parallel()

	f, err := NewFallbackParser(context.Background(), Config{Providers: "gemini,groq"}, nil, logger.New("error"))
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.False(t, f.IsEnabled())
}

func TestNewFallbackParserRejectsUnknownProvider(t *testing.T) {
	t.Parallel()

	_, err := NewFallbackParser(context.Background(), Config{Providers: "anthropic"}, nil, logger.New("error"))
	assert.Error(t, err)
}
