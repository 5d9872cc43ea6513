// Package format renders classroom results as human-readable text. Pure
// rendering, no decision logic; contact blocks are rendered by the
// contacts package.
package format

import (
	"fmt"
	"strings"

	"github.com/averyhall/classroom-finder-go/internal/classroom"
)

// Classrooms renders a count header and one line per record. Records that
// carry distance augmentation get a "(distance, duration mode)" suffix so
// ranked and unranked lists share the same shape. mode is only consulted
// for augmented records.
func Classrooms(records []classroom.Record, mode string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d classrooms:\n\n", len(records))
	for _, r := range records {
		b.WriteString(Line(r, mode))
		b.WriteByte('\n')
	}
	return b.String()
}

// Line renders one classroom record.
func Line(r classroom.Record, mode string) string {
	line := fmt.Sprintf("- %s %s: %d seats", r.Building, r.Room, r.SeatCount)
	if r.HasDistance() {
		line += fmt.Sprintf(" (%s, %s %s)", r.DistanceText, r.DurationText, mode)
	}
	return line
}
