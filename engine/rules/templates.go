package rules

// Response templates for the chat synthesizer. Placeholders use {name}
// markers filled by the synthesizer; the markup and emoji are part of the
// wire contract with the frontend.
const (
	EmergencyTemplate = "🚨 **EMERGENCY ASSISTANCE REQUIRED!**\n\nIMMEDIATE ACTIONS:\n{actions}\n\nCONTACT: {contacts}\n\nYour safety is the top priority!"

	ComplaintTemplate = "📋 **COMPLAINT GUIDANCE - {category}**\n\nIssue: {issue}\nExpected Resolution: {resolution}\n\nRECOMMENDED STEPS:\n{steps}\n\nContacts: {contacts}"

	StatusTemplate = "🔍 **COMPLAINT STATUS CHECKING**\n\nTo check status:\n1. Use complaint ID on Rail Madad portal\n2. SMS: COMP <ComplaintID> to 139\n3. Call: 139 with complaint details\n\nNeed your complaint ID for specific status."

	GreetingTemplate = "🚆 **Rail Madad AI Assistant**\n\nHello! I can help you with:\n• Railway complaints & guidance\n• Status checking procedures\n• Emergency contacts\n• Platform assistance\n\nHow can I assist you today?"

	ThanksTemplate = "You're welcome! 😊 I'm glad I could help. If you have any more railway-related questions or need further assistance, feel free to ask. Safe travels! 🚆"

	// FallbackTemplate is the hard-coded helpline answer returned when reply
	// synthesis fails for any reason. The conversational endpoint must never
	// surface an internal failure, so it degrades to this maximally cautious
	// message instead.
	FallbackTemplate = "I'm experiencing technical difficulties. For immediate help, please call Railway Helpline: 139 or Emergency: 182."
)

// Default contact and action lists used by the emergency branch when the
// resolved category carries no rule of its own.
var (
	DefaultEmergencyContacts = []string{"RPF 182", "139", "108"}
	DefaultEmergencyActions  = []string{
		"Call RPF 182 immediately",
		"Alert coach attendant/TTE",
		"Move to safe location if possible",
	}
)

// Static suggested-action lists per reply branch.
var (
	EmergencyActions = []string{
		"🚨 Call RPF 182 immediately",
		"📞 Contact Railway Emergency 139",
		"👮 Alert Coach Attendant/TTE",
		"🏥 Medical: Call 108",
	}
	ComplaintActions = []string{
		"📋 Register formal complaint",
		"📞 Contact appropriate department",
		"🕒 Note expected resolution time",
		"📸 Take photos as evidence",
	}
	StatusActions = []string{
		"🔍 Check online with complaint ID",
		"📞 Call 139 for status update",
		"📱 SMS COMP <ID> to 139",
		"🔄 Escalation process",
	}
	GreetingActions = []string{
		"🚆 Register a complaint",
		"🔍 Check complaint status",
		"📞 Emergency contacts",
		"ℹ️ Platform guidance",
	}
	ThanksActions = []string{
		"⭐ Rate our service",
		"📋 New complaint assistance",
		"🔍 Status checking help",
		"📞 Contact information",
	}
	FallbackActions = []string{"Call 139", "Contact RPF 182", "Use complaint form"}
)

// GeneralTopic is one keyword-sniffing sub-branch of the general reply.
// Topics are checked in declaration order; the first hit wins.
type GeneralTopic struct {
	Keywords []string
	Response string
	Actions  []string
}

var GeneralTopics = []GeneralTopic{
	{
		Keywords: []string{"time", "schedule", "arrival", "departure"},
		Response: "For train schedules and timings, please check:\n• NTES app\n• Indian Railway website\n• Station enquiry counter\n• Call 139 for live status",
		Actions:  []string{"Check train schedule", "Live running status", "Platform numbers", "PNR enquiry"},
	},
	{
		Keywords: []string{"fare", "price", "cost", "ticket price"},
		Response: "For fare information:\n• IRCTC website/app\n• Railway reservation counter\n• Authorized agents\n• Call 139 for general fare queries",
		Actions:  []string{"Check fare online", "Booking information", "Refund policy", "Ticket cancellation"},
	},
	{
		Keywords: []string{"platform", "station", "location"},
		Response: "For station information:\n• Check station code (e.g., NDLS for New Delhi)\n• Station enquiry number\n• Railway website\n• Google Maps for location",
		Actions:  []string{"Station facilities", "Platform numbers", "Amenities available", "Contact numbers"},
	},
}

// GeneralFallback is the "need more detail" answer when no topic matches.
var GeneralFallback = GeneralTopic{
	Response: "I understand you're looking for railway assistance. I can help you with:\n• Complaint registration process\n• Status checking guidance\n• Emergency contact information\n• Platform usage help\n\nCould you please provide more specific details?",
	Actions:  []string{"Complaint guidance", "Status checking", "Emergency contacts", "General information"},
}

// Fixed confidences of the non-classifier reply branches.
const (
	GreetingConfidence = 0.95
	ThanksConfidence   = 0.95
	StatusConfidence   = 0.9
	GeneralBranchConf  = 0.8
	FallbackConfidence = 0.7
)
