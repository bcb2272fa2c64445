package telegram

import (
	"context"

	"go.uber.org/zap"

	"github.com/Chendasum/7daymoneyflowreset/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			_ = h.sendText(chatID, msgInternalError)
			return nil
		}
		return nil
	}
}

// requiresFeature gates a handler behind the access check for a feature.
// Denied users get the denial message and the handler never runs.
func (h *Handler) requiresFeature(userID int64, feature service.Feature, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		access := h.accessService.CheckAccess(ctx, userID, feature)
		if !access.HasAccess {
			h.logger.Debug("feature access denied",
				zap.Int64("user_id", userID),
				zap.String("feature", string(feature)),
				zap.String("tier", string(access.UserTier)),
			)
			return h.sendText(chatID, access.Message)
		}
		return fn(ctx, chatID)
	}
}
