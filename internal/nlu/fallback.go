// This file contains the provider fallback chain: parsers are tried in
// configured order until one succeeds.
package nlu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/averyhall/classroom-finder-go/internal/logger"
	"github.com/averyhall/classroom-finder-go/internal/metrics"
)

// Config holds the provider settings for building the fallback chain.
type Config struct {
	// Providers is the comma-separated provider order, e.g. "gemini,groq".
	Providers string

	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqModel    string
}

// FallbackParser tries each configured provider in order.
// It implements the IntentParser interface.
type FallbackParser struct {
	parsers []IntentParser
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewFallbackParser builds the provider chain from configuration.
// Providers without an API key are skipped; an empty chain returns nil,
// meaning NLU is disabled.
func NewFallbackParser(ctx context.Context, cfg Config, m *metrics.Metrics, log *logger.Logger) (*FallbackParser, error) {
	var parsers []IntentParser

	for _, name := range strings.Split(cfg.Providers, ",") {
		switch Provider(strings.TrimSpace(strings.ToLower(name))) {
		case ProviderGemini:
			p, err := newGeminiParser(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return nil, fmt.Errorf("gemini parser: %w", err)
			}
			if p != nil {
				parsers = append(parsers, p)
			}
		case ProviderGroq:
			p, err := newOpenAIParser(ctx, ProviderGroq, groqBaseURL, cfg.GroqAPIKey, cfg.GroqModel)
			if err != nil {
				return nil, fmt.Errorf("groq parser: %w", err)
			}
			if p != nil {
				parsers = append(parsers, p)
			}
		case "":
			// Tolerate stray commas.
		default:
			return nil, fmt.Errorf("unknown LLM provider %q", name)
		}
	}

	if len(parsers) == 0 {
		return nil, nil //nolint:nilnil // Intentional: NLU disabled without keys
	}

	return &FallbackParser{
		parsers: parsers,
		metrics: m,
		log:     log.WithModule("nlu"),
	}, nil
}

// Parse tries each provider in order and returns the first success.
func (f *FallbackParser) Parse(ctx context.Context, text string) (*ParseResult, error) {
	if f == nil || len(f.parsers) == 0 {
		return nil, errors.New("intent parsing disabled")
	}

	var lastErr error
	for _, p := range f.parsers {
		result, err := p.Parse(ctx, text)
		if err == nil {
			f.count(p.Provider(), "success")
			return result, nil
		}
		f.count(p.Provider(), "error")
		f.log.WithError(err).
			WithField("provider", string(p.Provider())).
			Warn("Intent parse failed, trying next provider")
		lastErr = err
	}

	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

// IsEnabled returns true when at least one provider is configured.
func (f *FallbackParser) IsEnabled() bool {
	return f != nil && len(f.parsers) > 0
}

// Provider returns the primary provider.
func (f *FallbackParser) Provider() Provider {
	if f == nil || len(f.parsers) == 0 {
		return ""
	}
	return f.parsers[0].Provider()
}

func (f *FallbackParser) count(provider Provider, status string) {
	if f.metrics != nil {
		f.metrics.IntentParsesTotal.WithLabelValues(string(provider), status).Inc()
	}
}
