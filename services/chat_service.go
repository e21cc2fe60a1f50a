package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"rail-madad/domain"
	"rail-madad/engine"
	"rail-madad/engine/rules"
	apperrors "rail-madad/errors"
	"rail-madad/observability"
)

type IChatService interface {
	Respond(ctx context.Context, cmd ChatCommand) (ChatTurn, error)
	Capabilities() Capabilities
}

// ChatCommand is one inbound conversational turn. SessionID is optional;
// a missing one is minted so the caller can correlate follow-up turns.
type ChatCommand struct {
	SessionID string
	Message   string
}

// ChatTurn pairs the engine reply with the session it belongs to.
type ChatTurn struct {
	SessionID string           `json:"session_id"`
	Reply     domain.ChatReply `json:"reply"`
}

// Capabilities describes what the rule engine can do, served verbatim to the
// frontend.
type Capabilities struct {
	Engine       string   `json:"ai_engine"`
	RulesVersion string   `json:"rules_version"`
	Capabilities []string `json:"capabilities"`
}

type ChatService struct {
	engine  *engine.Engine
	monitor *observability.MonitoringManager
	log     *slog.Logger
}

func NewChatService(eng *engine.Engine, monitor *observability.MonitoringManager, log *slog.Logger) *ChatService {
	return &ChatService{engine: eng, monitor: monitor, log: log}
}

// Respond runs one chat turn through the engine. Empty or whitespace-only
// messages are rejected before the engine sees them; everything else is
// guaranteed a reply because the engine degrades to its helpline fallback
// instead of failing.
func (s *ChatService) Respond(ctx context.Context, cmd ChatCommand) (ChatTurn, error) {
	if err := ctx.Err(); err != nil {
		return ChatTurn{}, err
	}
	if strings.TrimSpace(cmd.Message) == "" {
		return ChatTurn{}, apperrors.ErrEmptyMessage
	}

	sessionID := cmd.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Language is logged for operators, not acted upon: the rule tables are
	// English-only and translation is out of scope.
	info := whatlanggo.Detect(cmd.Message)

	reply := s.engine.AnalyzeAndReply(cmd.Message)

	s.monitor.IncrChatTurns()
	if reply.Response == rules.FallbackTemplate {
		s.monitor.IncrFallbackReplies()
	}

	s.log.Info("Chat turn answered",
		"session_id", sessionID,
		"response_type", reply.ResponseType,
		"urgency", reply.UrgencyLevel,
		"confidence", reply.Confidence,
		"language", info.Lang.Iso6391(),
	)

	return ChatTurn{SessionID: sessionID, Reply: reply}, nil
}

func (s *ChatService) Capabilities() Capabilities {
	return Capabilities{
		Engine:       "Advanced Rule-Based Railway AI",
		RulesVersion: rules.Version,
		Capabilities: []string{
			"Intent recognition (6 categories)",
			"Entity extraction (train, coach, seat numbers)",
			"Urgency detection (4 levels)",
			"Category classification (6 complaint types)",
			"Context-aware responses",
			"Emergency handling",
		},
	}
}
