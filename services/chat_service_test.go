package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"rail-madad/domain"
	"rail-madad/engine"
	apperrors "rail-madad/errors"
	"rail-madad/observability"
)

func newTestChatService(t *testing.T) *ChatService {
	t.Helper()
	req := require.New(t)

	eng, err := engine.New(slog.Default())
	req.NoError(err)
	return NewChatService(eng, observability.NewMonitoringManager(slog.Default()), slog.Default())
}

func TestChatService_RejectsEmptyMessage(t *testing.T) {
	req := require.New(t)
	service := newTestChatService(t)

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := service.Respond(context.Background(), ChatCommand{Message: message})
		req.ErrorIs(err, apperrors.ErrEmptyMessage)
	}
}

func TestChatService_MintsSessionID(t *testing.T) {
	req := require.New(t)
	service := newTestChatService(t)

	turn, err := service.Respond(context.Background(), ChatCommand{Message: "hello"})
	req.NoError(err)
	req.NotEmpty(turn.SessionID)
	req.Equal(domain.ReplyTypeGreeting, turn.Reply.ResponseType)
}

func TestChatService_KeepsCallerSessionID(t *testing.T) {
	req := require.New(t)
	service := newTestChatService(t)

	turn, err := service.Respond(context.Background(), ChatCommand{
		SessionID: "session-42",
		Message:   "the toilet in my coach is very dirty",
	})
	req.NoError(err)
	req.Equal("session-42", turn.SessionID)
	req.Equal(domain.ReplyTypeComplaint, turn.Reply.ResponseType)
}

func TestChatService_Capabilities(t *testing.T) {
	req := require.New(t)
	service := newTestChatService(t)

	caps := service.Capabilities()
	req.NotEmpty(caps.Engine)
	req.NotEmpty(caps.RulesVersion)
	req.NotEmpty(caps.Capabilities)
}
