package contacts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMatchesFallback(t *testing.T) {
	t.Parallel()

	got := RenderMatches(nil)
	assert.Contains(t, got, "I couldn't determine a specific contact")
	assert.Contains(t, got, "Registrar's Office")
	assert.Contains(t, got, "Classroom Technology Services")
	assert.Contains(t, got, "ITC Dartmouth")
	assert.Contains(t, got, "1-855-764-2485 (toll-free)")
}

func TestRenderMatchesSingle(t *testing.T) {
	t.Parallel()

	got := RenderMatches([]Match{{
		Contact: Contact{
			Name:        "Registrar's Office",
			Description: "Handles classroom booking and scheduling.",
			Email:       "Registrar@Dartmouth.edu",
			Phone:       "603-646-2246",
		},
		Score: 2,
	}})

	assert.True(t, strings.HasPrefix(got, "For your question, you should contact:"))
	assert.Contains(t, got, "**Registrar's Office**")
	assert.Contains(t, got, "Handles classroom booking and scheduling.")
	assert.Contains(t, got, "📧 Email: Registrar@Dartmouth.edu")
	assert.Contains(t, got, "📞 Phone: 603-646-2246")
}

func TestRenderMatchesMultiple(t *testing.T) {
	t.Parallel()

	got := RenderMatches([]Match{
		{Contact: Contact{Name: "A Office", Email: "a@x.edu"}},
		{Contact: Contact{Name: "B Office", Email: "b@x.edu"}},
	})

	assert.True(t, strings.HasPrefix(got, "Based on your question, here are the relevant contacts:"))
	first := strings.Index(got, "**A Office**")
	second := strings.Index(got, "**B Office**")
	require.Greater(t, second, first)
	// Blank line between blocks.
	assert.Contains(t, got, "a@x.edu\n\n**B Office**")
}

func TestFormatContactFieldOrder(t *testing.T) {
	t.Parallel()

	c := Contact{
		Name:          "ITC Dartmouth",
		Email:         "itc@dartmouth.edu",
		Phone:         "603-646-2999",
		PhoneTollFree: "1-855-764-2485",
		Website:       "https://itc.dartmouth.edu",
		Hours:         "Monday through Friday",
	}

	got := FormatContact(c)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "**ITC Dartmouth**", lines[0])
	assert.Equal(t, "📧 Email: itc@dartmouth.edu", lines[1])
	assert.Equal(t, "📞 Phone: 603-646-2999 or 1-855-764-2485 (toll-free)", lines[2])
	assert.Equal(t, "🌐 Website: https://itc.dartmouth.edu", lines[3])
	assert.Equal(t, "🕒 Hours: Monday through Friday", lines[4])
}

func TestFormatContactOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	got := FormatContact(Contact{Name: "Bare Office"})
	assert.Equal(t, "**Bare Office**", got)
}
