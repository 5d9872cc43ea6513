package contacts

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxResults is the number of matches returned when the caller does
// not specify a limit.
const DefaultMaxResults = 2

// Directory holds the loaded contact configuration together with
// precompiled keyword matchers. Construct once via Load or New; read-only
// afterwards.
type Directory struct {
	contacts []Contact
	rules    []RoutingRule
	matchers [][]keywordMatcher
}

type keywordMatcher struct {
	keyword string
	pattern *regexp.Regexp
}

// Load reads the contact configuration from a YAML file.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts config: %w", err)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse contacts config: %w", err)
	}

	return New(file.Contacts, file.RoutingRules)
}

// New builds a directory from already-decoded configuration.
// Every contact must have a non-empty name; keyword lists may be empty.
func New(cs []Contact, rules []RoutingRule) (*Directory, error) {
	matchers := make([][]keywordMatcher, len(cs))
	for i, c := range cs {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("contact at index %d has an empty name", i)
		}
		ms := make([]keywordMatcher, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			lowered := strings.ToLower(strings.TrimSpace(kw))
			if lowered == "" {
				continue
			}
			// Matching is case-insensitive but the reported keyword stays
			// as configured.
			ms = append(ms, keywordMatcher{keyword: kw, pattern: compileKeyword(lowered)})
		}
		matchers[i] = ms
	}

	return &Directory{
		contacts: append([]Contact(nil), cs...),
		rules:    append([]RoutingRule(nil), rules...),
		matchers: matchers,
	}, nil
}

// compileKeyword builds the match pattern for one keyword.
// Keywords of one or two characters must match a whole word, so "av" does
// not hit inside "available". Longer keywords anchor on a leading word
// boundary but may continue into a longer token, so "access" hits
// "accessibility".
func compileKeyword(keyword string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(keyword)
	if len(keyword) <= 2 {
		return regexp.MustCompile(`\b` + escaped + `\b`)
	}
	return regexp.MustCompile(`\b` + escaped)
}

// Contacts returns the configured contacts in configuration order.
func (d *Directory) Contacts() []Contact {
	return d.contacts
}

// Rules returns the configured routing rules.
func (d *Directory) Rules() []RoutingRule {
	return d.rules
}

// Len returns the number of configured contacts.
func (d *Directory) Len() int {
	return len(d.contacts)
}
