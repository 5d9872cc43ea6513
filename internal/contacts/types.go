// Package contacts implements the contact directory and the keyword-based
// contact router. The directory is loaded once at startup from a YAML file
// and is immutable afterwards, so it is safe for concurrent use without
// locking.
package contacts

// Contact is a single routable office or service desk.
type Contact struct {
	Name          string   `yaml:"name"`
	Keywords      []string `yaml:"keywords"`
	Description   string   `yaml:"description"`
	Email         string   `yaml:"email"`
	Phone         string   `yaml:"phone"`
	PhoneTollFree string   `yaml:"phone_tollfree"`
	Website       string   `yaml:"website"`
	Hours         string   `yaml:"hours"`
}

// RoutingRule is part of the configuration schema, reserved for future
// rule-based overrides. Loaded and validated but unused by scoring.
type RoutingRule struct {
	Name    string `yaml:"name"`
	Contact string `yaml:"contact"`
}

// configFile mirrors the YAML document layout.
type configFile struct {
	Contacts     []Contact     `yaml:"contacts"`
	RoutingRules []RoutingRule `yaml:"routing_rules"`
}

// Match pairs a contact with its score for a query.
type Match struct {
	Contact         Contact
	Score           int
	MatchedKeywords []string
}
