package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/averyhall/classroom-finder-go/internal/classroom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassrooms(t *testing.T) {
	t.Parallel()

	records := []classroom.Record{
		{Building: "Carson", Room: "61", SeatCount: 24},
		{Building: "Moore", Room: "110", SeatCount: 30},
	}

	got := Classrooms(records, "walking")
	assert.True(t, strings.HasPrefix(got, "Found 2 classrooms:\n\n"))
	assert.Contains(t, got, "- Carson 61: 24 seats\n")
	assert.Contains(t, got, "- Moore 110: 30 seats\n")
}

func TestClassroomsWithDistance(t *testing.T) {
	t.Parallel()

	records := []classroom.Record{
		{Building: "Carson", Room: "61", SeatCount: 24,
			DistanceMeters: 420, DistanceText: "0.4 km", DurationText: "5 mins"},
	}

	got := Classrooms(records, "walking")
	assert.Contains(t, got, "- Carson 61: 24 seats (0.4 km, 5 mins walking)\n")
}

func TestClassroomsEmpty(t *testing.T) {
	t.Parallel()

	got := Classrooms(nil, "walking")
	assert.Equal(t, "Found 0 classrooms:\n\n", got)
}

// Formatting then re-parsing each line recovers the building/room/seat
// triples.
func TestClassroomsRoundTrip(t *testing.T) {
	t.Parallel()

	records := []classroom.Record{
		{Building: "Carson", Room: "61", SeatCount: 24},
		{Building: "Moore", Room: "110", SeatCount: 30},
		{Building: "Kemeny", Room: "008", SeatCount: 105},
	}

	got := Classrooms(records, "walking")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")[2:]
	require.Len(t, lines, len(records))

	for i, line := range lines {
		var building, room string
		var seats int
		n, err := fmt.Sscanf(line, "- %s %s %d seats", &building, &room, &seats)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		assert.Equal(t, records[i].Building, building)
		assert.Equal(t, records[i].Room+":", room)
		assert.Equal(t, records[i].SeatCount, seats)
	}
}
