package contacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `contacts:
  - name: Registrar's Office
    description: Handles classroom booking and scheduling.
    keywords: [book, reserve, schedule]
    email: Registrar@Dartmouth.edu
    phone: 603-646-2246
  - name: ITC Dartmouth
    keywords: [it, help]
    email: itc@dartmouth.edu
    phone: 603-646-2999
    phone_tollfree: 1-855-764-2485
    hours: Monday through Friday, 8:00 a.m. to 5:00 p.m. (ET)
routing_rules:
  - name: escalation
    contact: ITC Dartmouth
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	d, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	require.Equal(t, 2, d.Len())
	assert.Equal(t, "Registrar's Office", d.Contacts()[0].Name)
	assert.Equal(t, "1-855-764-2485", d.Contacts()[1].PhoneTollFree)
	require.Len(t, d.Rules(), 1)
	assert.Equal(t, "escalation", d.Rules()[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "contacts: [not: [valid"))
	assert.Error(t, err)
}

func TestNewRejectsEmptyName(t *testing.T) {
	t.Parallel()

	_, err := New([]Contact{{Name: "  ", Keywords: []string{"x"}}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty name")
}

func TestNewAllowsEmptyKeywords(t *testing.T) {
	t.Parallel()

	d, err := New([]Contact{{Name: "Quiet Office"}}, nil)
	require.NoError(t, err)

	// Unreachable by scoring, reachable only via the fallback block.
	assert.Empty(t, d.Match("quiet office please", 5))
}
