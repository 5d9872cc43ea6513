package contacts

import (
	"sort"
	"strings"
)

// Match scores query against every contact's keywords and returns the best
// matches, highest score first. Ties keep configuration order. At most
// maxResults entries are returned; maxResults <= 0 falls back to
// DefaultMaxResults. Pure computation, no I/O.
func (d *Directory) Match(query string, maxResults int) []Match {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	queryLower := strings.ToLower(query)

	var matches []Match
	for i, c := range d.contacts {
		score := 0
		var matched []string
		for _, m := range d.matchers[i] {
			if m.pattern.MatchString(queryLower) {
				score++
				matched = append(matched, m.keyword)
			}
		}
		if score > 0 {
			matches = append(matches, Match{Contact: c, Score: score, MatchedKeywords: matched})
		}
	}

	// Stable keeps configuration order for equal scores.
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// routingTriggers are substrings suggesting the question needs a human
// office rather than an inventory query.
var routingTriggers = []string{
	// Booking & Scheduling
	"book", "reserve", "schedule", "available", "availability",
	"can i get", "request",

	// Administrative
	"timetable", "deadline", "add course", "change time",
	"exam", "final",

	// Accessibility & Special Needs
	"accessibility", "disability", "accommodation",

	// Furniture & Modifications
	"furniture", "deliver", "add chair", "add table", "podium",

	// Technology Issues
	"not working", "broken", "fix", "setup", "training",
	"how to use zoom", "how to set up",

	// Questions beyond tool scope
	"who do i contact", "where do i", "how do i",
}

// ShouldRouteToContact reports whether a query likely requires human
// routing. It is a coarse pre-filter for the orchestrator and has no effect
// on Match's output.
func ShouldRouteToContact(query string) bool {
	queryLower := strings.ToLower(query)
	for _, trigger := range routingTriggers {
		if strings.Contains(queryLower, trigger) {
			return true
		}
	}
	return false
}
