// Package bot orquesta el pipeline de cada evento: filtro, cuota, historial,
// completado y respuesta.
package bot

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/masanaritanaka/line-gpt-bot/internal/domain"
	"github.com/masanaritanaka/line-gpt-bot/internal/llm"
	"github.com/masanaritanaka/line-gpt-bot/internal/quota"
	"github.com/masanaritanaka/line-gpt-bot/internal/session"
)

// ReplyClient es el contrato mínimo que el pipeline necesita para responder.
type ReplyClient interface {
	Reply(ctx context.Context, replyToken, text string) error
}

// Service procesa los eventos de un webhook ya autenticado.
type Service struct {
	logger   *zap.Logger
	quota    quota.Store
	sessions session.Store
	llm      llm.Client
	replies  ReplyClient
	persona  string
	now      func() time.Time
}

// NewService crea el servicio con sus colaboradores.
func NewService(
	logger *zap.Logger,
	quotaStore quota.Store,
	sessionStore session.Store,
	llmClient llm.Client,
	replyClient ReplyClient,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger:   logger,
		quota:    quotaStore,
		sessions: sessionStore,
		llm:      llmClient,
		replies:  replyClient,
		persona:  PersonaPrompt,
		now:      time.Now,
	}
}

// HandleEvents procesa el lote en orden de llegada, cada evento completo antes
// del siguiente. El fallo de un evento nunca afecta a los demás del lote.
func (s *Service) HandleEvents(ctx context.Context, events []domain.Event) {
	for _, ev := range events {
		s.handleEvent(ctx, ev)
	}
}

func (s *Service) handleEvent(ctx context.Context, ev domain.Event) {
	if !ShouldProcess(ev) {
		s.logger.Info("event skipped",
			zap.String("type", ev.Type),
			zap.String("message_type", ev.Message.Type),
			zap.Bool("redelivery", ev.DeliveryContext.IsRedelivery),
		)
		return
	}

	userID := ev.Source.UserID
	res, err := s.quota.CheckAndIncrement(ctx, userID, s.now())
	if err != nil {
		s.logger.Warn("quota check failed", zap.Error(err), zap.String("user_id", userID))
	}
	if !res.Allowed {
		s.logger.Info("quota exceeded",
			zap.String("user_id", userID),
			zap.Int("count", res.Count),
		)
		if err := s.replies.Reply(ctx, ev.ReplyToken, UpgradeNotice); err != nil {
			s.logger.Error("upgrade reply failed", zap.Error(err), zap.String("user_id", userID))
		}
		return
	}

	history := s.sessions.History(userID)
	answer, err := s.llm.Complete(ctx, s.persona, history, ev.Message.Text)
	if err != nil {
		// El evento se abandona sin tocar el historial y sin responder.
		s.logger.Error("completion failed", zap.Error(err), zap.String("user_id", userID))
		return
	}

	s.sessions.AppendExchange(userID, ev.Message.Text, answer)

	if err := s.replies.Reply(ctx, ev.ReplyToken, answer); err != nil {
		// El historial ya quedó escrito; no se revierte ni se reintenta.
		s.logger.Error("reply failed", zap.Error(err), zap.String("user_id", userID))
		return
	}

	s.logger.Info("reply sent",
		zap.String("user_id", userID),
		zap.Int("quota_count", res.Count),
	)
}
