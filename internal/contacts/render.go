package contacts

import (
	"fmt"
	"strings"
)

// fallbackText is returned when no contact matches. It is part of the
// external contract; keep structure and wording stable.
const fallbackText = `I couldn't determine a specific contact for your question. Here are the main resources:

**For booking or scheduling questions:** Contact the Registrar's Office
📧 Email: Registrar@Dartmouth.edu
📞 Phone: 603-646-2246

**For classroom technology or equipment questions:** Contact Classroom Technology Services
📧 Email: Classroom.Technology.Services@Dartmouth.edu
📞 Phone: 603-646-2999
🌐 Website: https://services.dartmouth.edu/TDClient/1806/Portal/Requests/ServiceDet?ID=38206

**For questions about this Classroom Finder tool or general IT support:** Contact ITC Dartmouth
📧 Email: itc@dartmouth.edu
📞 Phone: 603-646-2999 or 1-855-764-2485 (toll-free)
🕒 Hours: Monday through Friday, 8:00 a.m. to 5:00 p.m. (ET)

If you'd like more specific contact information, please provide more details about your question.`

// FormatContact renders one contact block: bolded name, optional
// description, then labelled contact lines.
func FormatContact(c Contact) string {
	parts := []string{fmt.Sprintf("**%s**", c.Name)}

	if c.Description != "" {
		parts = append(parts, c.Description)
	}

	var details []string
	if c.Email != "" {
		details = append(details, fmt.Sprintf("📧 Email: %s", c.Email))
	}
	if c.Phone != "" {
		phone := fmt.Sprintf("📞 Phone: %s", c.Phone)
		if c.PhoneTollFree != "" {
			phone += fmt.Sprintf(" or %s (toll-free)", c.PhoneTollFree)
		}
		details = append(details, phone)
	}
	if c.Website != "" {
		details = append(details, fmt.Sprintf("🌐 Website: %s", c.Website))
	}
	if c.Hours != "" {
		details = append(details, fmt.Sprintf("🕒 Hours: %s", c.Hours))
	}

	if len(details) > 0 {
		parts = append(parts, strings.Join(details, "\n"))
	}

	return strings.Join(parts, "\n")
}

// RenderMatches renders a match list into the user-facing reply. Zero
// matches produce the fixed fallback block, one match is introduced as the
// contact to reach, several matches are listed with blank-line separators.
func RenderMatches(matches []Match) string {
	if len(matches) == 0 {
		return fallbackText
	}

	var b strings.Builder
	if len(matches) == 1 {
		b.WriteString("For your question, you should contact:\n\n")
		b.WriteString(FormatContact(matches[0].Contact))
		return b.String()
	}

	b.WriteString("Based on your question, here are the relevant contacts:\n\n")
	for i, m := range matches {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatContact(m.Contact))
	}
	return b.String()
}
