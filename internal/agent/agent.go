// Package agent executes parsed tool intents against the finder's core
// components. Every failure is rendered into descriptive text so callers
// can always surface the result directly.
package agent

import (
	"context"
	"fmt"

	"github.com/averyhall/classroom-finder-go/internal/classroom"
	"github.com/averyhall/classroom-finder-go/internal/contacts"
	domerrors "github.com/averyhall/classroom-finder-go/internal/errors"
	"github.com/averyhall/classroom-finder-go/internal/format"
	"github.com/averyhall/classroom-finder-go/internal/logger"
	"github.com/averyhall/classroom-finder-go/internal/maps"
	"github.com/averyhall/classroom-finder-go/internal/metrics"
	"github.com/averyhall/classroom-finder-go/internal/nlu"
	"github.com/averyhall/classroom-finder-go/internal/rank"
)

// Result is the uniform outcome of one agent invocation.
type Result struct {
	// Message is always renderable, success or failure.
	Message string

	// Classrooms carries the structured records when a query ran.
	Classrooms []classroom.Record

	// ToolCalled reports whether a tool beyond direct reply executed.
	ToolCalled bool

	// Tool is the tool name, for logging and metrics.
	Tool string
}

// Agent wires the core components behind a single dispatch entry point.
type Agent struct {
	directory   *contacts.Directory
	backend     *classroom.Client
	maps        *maps.Client
	ranker      *rank.Ranker
	parser      nlu.IntentParser // nil when NLU is disabled
	metrics     *metrics.Metrics
	log         *logger.Logger
	maxContacts int
}

// New creates an Agent. parser may be nil; the keyword heuristic then
// picks the tool.
func New(
	directory *contacts.Directory,
	backend *classroom.Client,
	mapsClient *maps.Client,
	ranker *rank.Ranker,
	parser nlu.IntentParser,
	m *metrics.Metrics,
	log *logger.Logger,
	maxContacts int,
) *Agent {
	if maxContacts <= 0 {
		maxContacts = contacts.DefaultMaxResults
	}
	return &Agent{
		directory:   directory,
		backend:     backend,
		maps:        mapsClient,
		ranker:      ranker,
		parser:      parser,
		metrics:     m,
		log:         log.WithModule("agent"),
		maxContacts: maxContacts,
	}
}

// Chat maps free text onto a tool and executes it. When the intent parser
// is unavailable or fails, the keyword heuristic decides instead.
func (a *Agent) Chat(ctx context.Context, text string) Result {
	intent := a.parseIntent(ctx, text)
	return a.Execute(ctx, intent)
}

func (a *Agent) parseIntent(ctx context.Context, text string) *nlu.ParseResult {
	if a.parser != nil && a.parser.IsEnabled() {
		intent, err := a.parser.Parse(ctx, text)
		if err == nil {
			return intent
		}
		a.log.WithError(err).Warn("Intent parsing failed, using heuristic")
	}
	return heuristicParse(text)
}

// Execute runs one parsed tool intent.
func (a *Agent) Execute(ctx context.Context, intent *nlu.ParseResult) Result {
	if intent == nil {
		result := Result{Message: helpMessage, Tool: nlu.ToolDirectReply}
		a.countTool(result)
		return result
	}

	var result Result
	switch intent.Tool {
	case nlu.ToolDirectReply:
		msg := intent.StringArg("message")
		if msg == "" {
			msg = helpMessage
		}
		result = Result{Message: msg, Tool: intent.Tool}

	case nlu.ToolContactInfo:
		result = a.contactInfo(intent)

	case nlu.ToolValidateAddress:
		result = a.validateAddress(ctx, intent)

	case nlu.ToolDistance:
		result = a.distance(ctx, intent)

	case nlu.ToolClassroomsBasic, nlu.ToolClassroomsAmenities:
		result = a.queryClassrooms(ctx, intent)

	case nlu.ToolSortByDistance:
		result = a.sortByDistance(ctx, intent)

	default:
		result = Result{Message: helpMessage, Tool: nlu.ToolDirectReply}
	}

	a.countTool(result)
	return result
}

func (a *Agent) contactInfo(intent *nlu.ParseResult) Result {
	query := intent.StringArg("query")
	matches := a.directory.Match(query, a.maxContacts)

	outcome := "matched"
	if len(matches) == 0 {
		outcome = "fallback"
	}
	if a.metrics != nil {
		a.metrics.ContactMatchesTotal.WithLabelValues(outcome).Inc()
	}

	return Result{
		Message:    contacts.RenderMatches(matches),
		ToolCalled: true,
		Tool:       intent.Tool,
	}
}

func (a *Agent) validateAddress(ctx context.Context, intent *nlu.ParseResult) Result {
	validation, err := a.maps.ValidateAddress(ctx, intent.StringArg("address"))
	if err != nil {
		return Result{Message: domerrors.GetUserMessage(err), ToolCalled: true, Tool: intent.Tool}
	}
	if !validation.Valid {
		return Result{Message: validation.Message, ToolCalled: true, Tool: intent.Tool}
	}
	return Result{
		Message:    fmt.Sprintf("Address confirmed: %s (%s)", validation.FormattedAddress, validation.LocationType),
		ToolCalled: true,
		Tool:       intent.Tool,
	}
}

func (a *Agent) distance(ctx context.Context, intent *nlu.ParseResult) Result {
	text, err := a.maps.Distance(ctx,
		intent.StringArg("origin"),
		intent.StringArg("destination"),
		travelMode(intent))
	if err != nil {
		return Result{Message: domerrors.GetUserMessage(err), ToolCalled: true, Tool: intent.Tool}
	}
	return Result{Message: text, ToolCalled: true, Tool: intent.Tool}
}

func (a *Agent) queryClassrooms(ctx context.Context, intent *nlu.ParseResult) Result {
	records, err := a.backend.Query(ctx, classroom.BuildParams(filterIntent(intent)))
	if err != nil {
		return Result{Message: domerrors.GetUserMessage(err), ToolCalled: true, Tool: intent.Tool}
	}
	return Result{
		Message:    format.Classrooms(records, ""),
		Classrooms: records,
		ToolCalled: true,
		Tool:       intent.Tool,
	}
}

func (a *Agent) sortByDistance(ctx context.Context, intent *nlu.ParseResult) Result {
	records, err := a.backend.Query(ctx, classroom.BuildParams(filterIntent(intent)))
	if err != nil {
		return Result{Message: domerrors.GetUserMessage(err), ToolCalled: true, Tool: intent.Tool}
	}

	mode := travelMode(intent)
	msg, ranked := a.SortByDistance(ctx, intent.StringArg("origin"), records, mode)
	return Result{Message: msg, Classrooms: ranked, ToolCalled: true, Tool: intent.Tool}
}

// SortByDistance ranks candidates by travel distance and renders the
// result. An empty candidate set returns the fixed empty-set message with
// no provider interaction.
func (a *Agent) SortByDistance(ctx context.Context, origin string, candidates []classroom.Record, mode maps.Mode) (string, []classroom.Record) {
	if len(candidates) == 0 {
		return rank.EmptyMessage, nil
	}

	ranked, err := a.ranker.Rank(ctx, origin, candidates, mode)
	if err != nil {
		return domerrors.GetUserMessage(err), nil
	}
	// When every element fails the list renders with a zero count.
	return format.Classrooms(ranked, string(mode)), ranked
}

// travelMode extracts the mode argument, defaulting to walking.
func travelMode(intent *nlu.ParseResult) maps.Mode {
	mode := maps.Mode(intent.StringArg("mode"))
	if mode == "" {
		return maps.ModeWalking
	}
	return mode
}

// filterIntent converts tool arguments into a classroom filter intent,
// preserving the tri-state semantics of amenity booleans.
func filterIntent(intent *nlu.ParseResult) classroom.FilterIntent {
	f := classroom.FilterIntent{
		ClassSize:  intent.IntArg("class_size"),
		Department: intent.StringArg("department"),
	}

	if v, ok := intent.BoolArg("seminar_setup"); ok {
		f.SeminarSetup = v
	}
	if v, ok := intent.BoolArg("lecture_setup"); ok {
		f.LectureSetup = v
	}
	if v, ok := intent.BoolArg("group_learning"); ok {
		f.GroupLearning = v
	}

	amenity := func(key string) *bool {
		if v, ok := intent.BoolArg(key); ok {
			return &v
		}
		return nil
	}
	f.Projector = amenity("projector")
	f.Whiteboard = amenity("whiteboard")
	f.ZoomRoom = amenity("zoom_room")
	f.LectureCapture = amenity("lecture_capture")
	f.ComputerLab = amenity("computer_lab")

	return f
}

func (a *Agent) countTool(r Result) {
	if a.metrics == nil {
		return
	}
	status := "success"
	if !r.ToolCalled {
		status = "direct"
	}
	a.metrics.ChatRequestsTotal.WithLabelValues(r.Tool, status).Inc()
}
