package domain

// ChatAnalysis is the engine's reading of a single chat turn.
// It lives only for the duration of the request that produced it;
// there is no cross-request conversational state.
type ChatAnalysis struct {
	Intent     Intent
	Category   Category
	Urgency    Urgency
	Entities   Entities
	Confidence float64 // category classifier confidence, carried into the reply
	Message    string  // original text, needed by the synthesizer
}

// ChatReply is the terminal artifact returned to the conversational caller.
type ChatReply struct {
	Response         string   `json:"response"`
	ResponseType     string   `json:"response_type"`
	SuggestedActions []string `json:"suggested_actions"`
	UrgencyLevel     string   `json:"urgency_level"`
	Confidence       float64  `json:"confidence"`
}

// Reply type labels. These are wire values consumed by the frontend,
// not an enum of intents: complaint maps to complaint_guidance and
// thanks shares the general label.
const (
	ReplyTypeGreeting  = "greeting"
	ReplyTypeComplaint = "complaint_guidance"
	ReplyTypeStatus    = "status_help"
	ReplyTypeEmergency = "emergency"
	ReplyTypeGeneral   = "general"
)
