package agent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/averyhall/classroom-finder-go/internal/contacts"
	"github.com/averyhall/classroom-finder-go/internal/nlu"
)

// helpMessage is shown when no tool applies.
const helpMessage = "I can search campus classrooms by style, size, and equipment, " +
	"sort them by distance from you, or point you to the right office for " +
	"booking and support questions. What are you looking for?"

var classSizePattern = regexp.MustCompile(`\b(\d{1,3})\b`)

// amenityTriggers maps query vocabulary onto amenity argument keys.
var amenityTriggers = map[string]string{
	"projector":       "projector",
	"whiteboard":      "whiteboard",
	"zoom":            "zoom_room",
	"lecture capture": "lecture_capture",
	"recording":       "lecture_capture",
	"computer lab":    "computer_lab",
	"computers":       "computer_lab",
}

// heuristicParse picks a tool without an LLM. Contact routing wins first,
// then amenity vocabulary, then a plain style/size search; with no signal
// at all the agent replies directly.
func heuristicParse(text string) *nlu.ParseResult {
	if strings.TrimSpace(text) == "" {
		return &nlu.ParseResult{Tool: nlu.ToolDirectReply, Args: map[string]any{}}
	}

	if contacts.ShouldRouteToContact(text) {
		return &nlu.ParseResult{
			Tool: nlu.ToolContactInfo,
			Args: map[string]any{"query": text},
		}
	}

	lower := strings.ToLower(text)
	args := map[string]any{}

	if strings.Contains(lower, "seminar") {
		args["seminar_setup"] = true
	}
	if strings.Contains(lower, "lecture") {
		args["lecture_setup"] = true
	}
	if strings.Contains(lower, "group") {
		args["group_learning"] = true
	}
	if m := classSizePattern.FindString(lower); m != "" {
		if size, err := strconv.Atoi(m); err == nil && size > 0 {
			args["class_size"] = size
		}
	}

	hasAmenity := false
	for trigger, key := range amenityTriggers {
		if strings.Contains(lower, trigger) {
			args[key] = true
			hasAmenity = true
		}
	}

	if len(args) == 0 {
		return &nlu.ParseResult{Tool: nlu.ToolDirectReply, Args: map[string]any{}}
	}
	if hasAmenity {
		return &nlu.ParseResult{Tool: nlu.ToolClassroomsAmenities, Args: args}
	}
	return &nlu.ParseResult{Tool: nlu.ToolClassroomsBasic, Args: args}
}
