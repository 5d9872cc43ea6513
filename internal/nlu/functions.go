// This file declares the tool functions offered to the model. The
// declarations use genai schema types; buildOpenAITools in openai.go
// lowercases them for OpenAI-compatible providers.
package nlu

import "google.golang.org/genai"

// BuildToolFunctions returns the function declarations for intent parsing.
func BuildToolFunctions() []*genai.FunctionDeclaration {
	styleProps := map[string]*genai.Schema{
		"seminar_setup": {
			Type:        genai.TypeBoolean,
			Description: "True when the user wants a seminar-style room.",
		},
		"lecture_setup": {
			Type:        genai.TypeBoolean,
			Description: "True when the user wants a lecture-style room.",
		},
		"group_learning": {
			Type:        genai.TypeBoolean,
			Description: "True when the user wants a room set up for group work.",
		},
		"class_size": {
			Type:        genai.TypeInteger,
			Description: "Expected number of attendees, e.g. 20.",
		},
	}

	amenityProps := map[string]*genai.Schema{
		"department": {
			Type:        genai.TypeString,
			Description: "Owning department when the user names one.",
		},
		"projector": {
			Type:        genai.TypeBoolean,
			Description: "Projector required (true) or explicitly unwanted (false). Omit when not mentioned.",
		},
		"whiteboard": {
			Type:        genai.TypeBoolean,
			Description: "Whiteboard required (true) or explicitly unwanted (false). Omit when not mentioned.",
		},
		"zoom_room": {
			Type:        genai.TypeBoolean,
			Description: "Zoom-capable room required (true) or explicitly unwanted (false). Omit when not mentioned.",
		},
		"lecture_capture": {
			Type:        genai.TypeBoolean,
			Description: "Lecture capture required (true) or explicitly unwanted (false). Omit when not mentioned.",
		},
		"computer_lab": {
			Type:        genai.TypeBoolean,
			Description: "Computer lab required (true) or explicitly unwanted (false). Omit when not mentioned.",
		},
	}

	withStyle := func(extra map[string]*genai.Schema) map[string]*genai.Schema {
		merged := make(map[string]*genai.Schema, len(styleProps)+len(extra))
		for k, v := range styleProps {
			merged[k] = v
		}
		for k, v := range extra {
			merged[k] = v
		}
		return merged
	}

	return []*genai.FunctionDeclaration{
		{
			Name:        ToolClassroomsBasic,
			Description: "Search classrooms by teaching style and class size.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: styleProps,
			},
		},
		{
			Name:        ToolClassroomsAmenities,
			Description: "Search classrooms by style, size, and amenity constraints such as projector, whiteboard, Zoom, lecture capture, or computer lab.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: withStyle(amenityProps),
			},
		},
		{
			Name:        ToolSortByDistance,
			Description: "Search classrooms and sort the results by travel distance from the user's location.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: withStyle(map[string]*genai.Schema{
					"origin": {
						Type:        genai.TypeString,
						Description: "Starting address, e.g. \"Baker Library, Hanover NH\".",
					},
					"mode": {
						Type:        genai.TypeString,
						Description: "Travel mode: walking, driving, bicycling, or transit. Defaults to walking.",
					},
				}),
				Required: []string{"origin"},
			},
		},
		{
			Name:        ToolDistance,
			Description: "Get travel distance and time between two locations.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"origin": {
						Type:        genai.TypeString,
						Description: "Starting address.",
					},
					"destination": {
						Type:        genai.TypeString,
						Description: "Ending address.",
					},
					"mode": {
						Type:        genai.TypeString,
						Description: "Travel mode: walking, driving, bicycling, or transit. Defaults to walking.",
					},
				},
				Required: []string{"origin", "destination"},
			},
		},
		{
			Name:        ToolValidateAddress,
			Description: "Verify that an address exists and is correctly formatted before calculating distances.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"address": {
						Type:        genai.TypeString,
						Description: "The address to validate.",
					},
				},
				Required: []string{"address"},
			},
		},
		{
			Name:        ToolContactInfo,
			Description: "Route a question about booking, scheduling, availability, accessibility, furniture, technology problems, or anything beyond classroom search to the right campus office.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "The user's question that needs to be routed.",
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        ToolDirectReply,
			Description: "Answer directly when no classroom search, distance lookup, or contact routing is needed.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"message": {
						Type:        genai.TypeString,
						Description: "The reply to show the user.",
					},
				},
				Required: []string{"message"},
			},
		},
	}
}

// knownTools is used to validate function names coming back from models.
var knownTools = map[string]bool{
	ToolClassroomsBasic:     true,
	ToolClassroomsAmenities: true,
	ToolSortByDistance:      true,
	ToolDistance:            true,
	ToolValidateAddress:     true,
	ToolContactInfo:         true,
	ToolDirectReply:         true,
}

// systemPrompt instructs the model on tool selection.
const systemPrompt = `You are the intent parser for a campus classroom finder.
Map the user's message onto exactly one tool call.

Rules:
- Use ` + ToolClassroomsBasic + ` for style/size-only searches.
- Use ` + ToolClassroomsAmenities + ` when the user mentions equipment (projector, whiteboard, Zoom, lecture capture, computer lab) or a department.
- Use ` + ToolSortByDistance + ` when the user wants rooms near a location.
- Use ` + ToolDistance + ` for a distance between two named places.
- Use ` + ToolValidateAddress + ` only to check an address the user supplied.
- Use ` + ToolContactInfo + ` for booking, scheduling, availability, accessibility, furniture, broken equipment, or administrative questions.
- Otherwise use ` + ToolDirectReply + ` with a short helpful message.
Only set a boolean argument when the user expressed it; leave it out otherwise.`
