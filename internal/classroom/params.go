package classroom

import "strconv"

// FilterIntent is the caller-supplied set of desired classroom attributes
// before translation into backend query syntax. Amenity booleans are
// pointers so "unspecified" (nil) and "explicitly false" stay distinct.
type FilterIntent struct {
	// Style flags, included only when true.
	SeminarSetup  bool
	LectureSetup  bool
	GroupLearning bool

	// ClassSize expands into a widened minSeats/maxSeats window.
	ClassSize int

	// Department filters by owning department when non-empty.
	Department string

	// Amenity constraints. Non-nil booleans are sent even when false.
	Projector      *bool
	Whiteboard     *bool
	ZoomRoom       *bool
	LectureCapture *bool
	ComputerLab    *bool
}

// Range widening and result caps for BuildParams.
const (
	// Users under-estimate required capacity more often than they
	// over-estimate, so the seat window skews upward.
	seatWindowBelow = 5
	seatWindowAbove = 10

	broadQueryLimit    = 50
	constrainedLimit   = 3
	minSeatsLowerBound = 1
)

// hasAmenityConstraint reports whether any amenity field was supplied.
func (f FilterIntent) hasAmenityConstraint() bool {
	return f.Projector != nil || f.Whiteboard != nil || f.ZoomRoom != nil ||
		f.LectureCapture != nil || f.ComputerLab != nil || f.Department != ""
}

// BuildParams maps a filter intent onto the backend's camelCase query
// parameters. Pure and total: absent or false style fields are simply
// omitted, and a limit is always included.
func BuildParams(intent FilterIntent) map[string]string {
	params := make(map[string]string)

	if intent.SeminarSetup {
		params["seminarSetup"] = "true"
	}
	if intent.LectureSetup {
		params["lectureSetup"] = "true"
	}
	if intent.GroupLearning {
		params["groupLearning"] = "true"
	}

	if intent.ClassSize > 0 {
		minSeats := intent.ClassSize - seatWindowBelow
		if minSeats < minSeatsLowerBound {
			minSeats = minSeatsLowerBound
		}
		params["minSeats"] = strconv.Itoa(minSeats)
		params["maxSeats"] = strconv.Itoa(intent.ClassSize + seatWindowAbove)
	}

	if intent.Department != "" {
		params["department"] = intent.Department
	}

	setBool := func(key string, v *bool) {
		if v != nil {
			params[key] = strconv.FormatBool(*v)
		}
	}
	setBool("projector", intent.Projector)
	setBool("whiteboard", intent.Whiteboard)
	setBool("zoomRoom", intent.ZoomRoom)
	setBool("lectureCapture", intent.LectureCapture)
	setBool("computerLab", intent.ComputerLab)

	// Heavy constraint sets should already narrow the match set sharply;
	// only the best few are worth surfacing.
	if intent.hasAmenityConstraint() {
		params["limit"] = strconv.Itoa(constrainedLimit)
	} else {
		params["limit"] = strconv.Itoa(broadQueryLimit)
	}

	return params
}
