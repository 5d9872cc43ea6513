package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/averyhall/classroom-finder-go/internal/classroom"
	"github.com/averyhall/classroom-finder-go/internal/contacts"
	"github.com/averyhall/classroom-finder-go/internal/logger"
	"github.com/averyhall/classroom-finder-go/internal/maps"
	"github.com/averyhall/classroom-finder-go/internal/metrics"
	"github.com/averyhall/classroom-finder-go/internal/nlu"
	"github.com/averyhall/classroom-finder-go/internal/rank"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const campus = "Dartmouth College, Hanover, NH"

type testEnv struct {
	agent        *Agent
	backendCalls *atomic.Int32
	mapsCalls    *atomic.Int32
}

func setupAgent(t *testing.T, backendBody string, mapsBody string) *testEnv {
	t.Helper()

	env := &testEnv{backendCalls: &atomic.Int32{}, mapsCalls: &atomic.Int32{}}

	backendServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.backendCalls.Add(1)
		_, _ = w.Write([]byte(backendBody))
	}))
	t.Cleanup(backendServer.Close)

	mapsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.mapsCalls.Add(1)
		_, _ = w.Write([]byte(mapsBody))
	}))
	t.Cleanup(mapsServer.Close)

	directory, err := contacts.New([]contacts.Contact{
		{
			Name:     "Registrar's Office",
			Keywords: []string{"book", "reserve", "schedule"},
			Email:    "Registrar@Dartmouth.edu",
			Phone:    "603-646-2246",
		},
		{
			Name:     "Classroom Technology Services",
			Keywords: []string{"projector", "broken", "zoom"},
			Email:    "Classroom.Technology.Services@Dartmouth.edu",
		},
	}, nil)
	require.NoError(t, err)

	log := logger.New("error")
	backend := classroom.NewClient(backendServer.URL, 5*time.Second, 0, nil)
	mapsClient := maps.NewClient(mapsServer.URL, "test-key", 5*time.Second, nil)
	ranker := rank.New(mapsClient, campus, log)

	env.agent = New(directory, backend, mapsClient, ranker, nil, nil, log, 2)
	return env
}

const twoRoomsBody = `{"data":[
	{"building":"Carson","room":"61","seatCount":24},
	{"building":"Moore","room":"110","seatCount":30}
]}`

const twoElementsBody = `{
	"status": "OK",
	"rows": [{"elements": [
		{"status": "OK", "distance": {"value": 900, "text": "0.9 km"}, "duration": {"text": "11 mins"}},
		{"status": "OK", "distance": {"value": 300, "text": "0.3 km"}, "duration": {"text": "4 mins"}}
	]}]
}`

func TestExecuteQueryClassrooms(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, `{}`)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolClassroomsBasic,
		Args: map[string]any{"seminar_setup": true, "class_size": float64(20)},
	})

	assert.True(t, result.ToolCalled)
	assert.Contains(t, result.Message, "Found 2 classrooms:")
	assert.Contains(t, result.Message, "- Carson 61: 24 seats")
	require.Len(t, result.Classrooms, 2)
	assert.Equal(t, int32(0), env.mapsCalls.Load())
}

func TestExecuteQueryEmptyResult(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, `{"data":[]}`, `{}`)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolClassroomsBasic,
		Args: map[string]any{"class_size": float64(500)},
	})

	assert.True(t, result.ToolCalled)
	assert.Contains(t, result.Message, "relaxing")
	assert.Empty(t, result.Classrooms)
}

func TestExecuteSortByDistance(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, twoElementsBody)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolSortByDistance,
		Args: map[string]any{"origin": "Baker Library", "mode": "walking"},
	})

	assert.True(t, result.ToolCalled)
	require.Len(t, result.Classrooms, 2)
	// Moore (300m) ranks before Carson (900m).
	assert.Equal(t, "Moore", result.Classrooms[0].Building)
	assert.Contains(t, result.Message, "- Moore 110: 30 seats (0.3 km, 4 mins walking)")
	assert.Equal(t, int32(1), env.mapsCalls.Load())
}

func TestSortByDistanceAllElementsFail(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, `{
		"status": "OK",
		"rows": [{"elements": [
			{"status": "ZERO_RESULTS"},
			{"status": "NOT_FOUND"}
		]}]
	}`)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolSortByDistance,
		Args: map[string]any{"origin": "Baker Library"},
	})

	assert.True(t, result.ToolCalled)
	assert.Contains(t, result.Message, "Found 0 classrooms:")
	assert.Empty(t, result.Classrooms)
}

func TestSortByDistanceEmptySetSkipsProvider(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, `{"data":[]}`, twoElementsBody)

	msg, ranked := env.agent.SortByDistance(context.Background(), "Baker Library", nil, maps.ModeWalking)
	assert.Equal(t, rank.EmptyMessage, msg)
	assert.Empty(t, ranked)
	assert.Equal(t, int32(0), env.mapsCalls.Load())
}

func TestExecuteContactInfo(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, `{}`)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolContactInfo,
		Args: map[string]any{"query": "the projector is broken"},
	})

	assert.True(t, result.ToolCalled)
	assert.Contains(t, result.Message, "For your question, you should contact:")
	assert.Contains(t, result.Message, "**Classroom Technology Services**")
	assert.Equal(t, int32(0), env.backendCalls.Load())
}

func TestExecuteContactInfoFallback(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, `{}`)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolContactInfo,
		Args: map[string]any{"query": "something entirely unrelated"},
	})

	assert.Contains(t, result.Message, "I couldn't determine a specific contact")
}

func TestExecuteDirectReply(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, `{}`)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolDirectReply,
		Args: map[string]any{"message": "Hello there!"},
	})

	assert.False(t, result.ToolCalled)
	assert.Equal(t, "Hello there!", result.Message)
	assert.Equal(t, int32(0), env.backendCalls.Load())
	assert.Equal(t, int32(0), env.mapsCalls.Load())
}

func TestExecuteValidateAddress(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, `{
		"status": "OK",
		"results": [{"formatted_address": "Baker Library, Hanover, NH 03755, USA",
			"geometry": {"location_type": "ROOFTOP"}}]
	}`)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolValidateAddress,
		Args: map[string]any{"address": "Baker Library"},
	})

	assert.True(t, result.ToolCalled)
	assert.Contains(t, result.Message, "Address confirmed: Baker Library, Hanover, NH 03755, USA (ROOFTOP)")
}

func TestExecuteDistance(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, `{
		"status": "OK",
		"rows": [{"elements": [
			{"status": "OK", "distance": {"value": 1200, "text": "1.2 km"}, "duration": {"text": "15 mins"}}
		]}]
	}`)

	result := env.agent.Execute(context.Background(), &nlu.ParseResult{
		Tool: nlu.ToolDistance,
		Args: map[string]any{"origin": "A", "destination": "B"},
	})

	assert.Equal(t, "1.2 km (15 mins walking)", result.Message)
}

func TestExecuteNilIntentCounted(t *testing.T) {
	t.Parallel()

	directory, err := contacts.New([]contacts.Contact{{Name: "Registrar's Office"}}, nil)
	require.NoError(t, err)

	log := logger.New("error")
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	backend := classroom.NewClient("http://localhost:0", time.Second, 0, m)
	mapsClient := maps.NewClient("http://localhost:0", "", time.Second, m)
	ranker := rank.New(mapsClient, campus, log)
	ag := New(directory, backend, mapsClient, ranker, nil, m, log, 2)

	result := ag.Execute(context.Background(), nil)
	assert.False(t, result.ToolCalled)
	assert.Equal(t, nlu.ToolDirectReply, result.Tool)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.ChatRequestsTotal.WithLabelValues(nlu.ToolDirectReply, "direct")))
}

func TestChatUsesHeuristicWithoutParser(t *testing.T) {
	t.Parallel()
	env := setupAgent(t, twoRoomsBody, `{}`)

	result := env.agent.Chat(context.Background(), "I need to book a room for Friday")
	assert.Contains(t, result.Message, "Registrar's Office")

	result = env.agent.Chat(context.Background(), "seminar room for 20 people")
	assert.Contains(t, result.Message, "Found 2 classrooms:")
}
