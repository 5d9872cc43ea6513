// Package rank orders classroom candidates by travel distance from a
// user-supplied origin using one batched distance-matrix request.
package rank

import (
	"context"
	"fmt"
	"sort"

	"github.com/averyhall/classroom-finder-go/internal/classroom"
	"github.com/averyhall/classroom-finder-go/internal/logger"
	"github.com/averyhall/classroom-finder-go/internal/maps"
)

// EmptyMessage is returned when there are no candidates to sort. No
// network call is made in that case.
const EmptyMessage = "No classrooms to sort."

// Ranker batches distance lookups for candidate classrooms.
type Ranker struct {
	maps   *maps.Client
	campus string // Locality appended to building names
	log    *logger.Logger
}

// New creates a Ranker. campus is the fixed locality paired with each
// building name to form a geocodable destination address.
func New(mapsClient *maps.Client, campus string, log *logger.Logger) *Ranker {
	return &Ranker{
		maps:   mapsClient,
		campus: campus,
		log:    log.WithModule("rank"),
	}
}

// Rank computes travel distance from origin to every candidate and
// returns augmented copies sorted ascending by distance. Candidates whose
// destination the provider could not resolve are dropped; provider-level
// failures abort the whole ranking with an error. An empty candidate list
// short-circuits before any network interaction.
func (r *Ranker) Rank(ctx context.Context, origin string, candidates []classroom.Record, mode maps.Mode) ([]classroom.Record, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	destinations := make([]string, len(candidates))
	for i, c := range candidates {
		building := c.Building
		if building == "" {
			building = "Unknown"
		}
		destinations[i] = fmt.Sprintf("%s, %s", building, r.campus)
	}

	elements, err := r.maps.DistanceMatrix(ctx, origin, destinations, mode)
	if err != nil {
		return nil, err
	}

	// Zip by position, keep only resolved destinations.
	ranked := make([]classroom.Record, 0, len(candidates))
	for i, el := range elements {
		if !el.OK() {
			r.log.WithField("building", candidates[i].Building).
				WithField("status", el.Status).
				Debug("Dropping candidate without route")
			continue
		}
		c := candidates[i]
		c.DistanceMeters = el.DistanceMeters
		c.DistanceText = el.DistanceText
		c.DurationText = el.DurationText
		ranked = append(ranked, c)
	}

	// Stable keeps input order for exact distance ties.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].DistanceMeters < ranked[b].DistanceMeters
	})

	return ranked, nil
}
