package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Chendasum/7daymoneyflowreset/internal/service"
)

type QuizService interface {
	Start(userID int64) string
	IsQuizMessage(userID int64, text string) bool
	HandleMessage(userID int64, text string) (replies []string, followUp string, handled bool)
}

type AccessService interface {
	CheckAccess(ctx context.Context, userID int64, feature service.Feature) service.AccessResult
	GetUserTierInfo(ctx context.Context, userID int64) service.TierStatus
	TierHelp(ctx context.Context, userID int64) string
	SupportMessage(ctx context.Context, userID int64) string
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, username string) error
}

// Options carries delivery tuning knobs.
type Options struct {
	MaxMessageLength int
	ChunkDelay       time.Duration
	FollowUpDelay    time.Duration
}

type Handler struct {
	bot           *tgbotapi.BotAPI
	logger        *zap.Logger
	quizService   QuizService
	accessService AccessService
	userService   UserService
	opts          Options
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	accessService AccessService,
	userService UserService,
	opts Options,
) *Handler {
	if opts.MaxMessageLength <= 0 {
		opts.MaxMessageLength = MaxMessageLength
	}
	return &Handler{
		bot:           bot,
		logger:        logger,
		quizService:   quizService,
		accessService: accessService,
		userService:   userService,
		opts:          opts,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		h.logger.Debug("update without message")
		return
	}

	from := update.Message.From
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", text),
	)

	if err := h.userService.EnsureUser(ctx, from.ID, chatID, from.UserName); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		h.handleCommand(ctx, update)
		return
	}

	// Plain text goes to the quiz engine first.
	if h.quizService.IsQuizMessage(from.ID, text) {
		_ = h.withErrorHandling(h.quizFlowHandler(from.ID, text))(ctx, chatID)
		return
	}

	_ = h.sendText(chatID, msgTextHint)
}

func (h *Handler) handleCommand(ctx context.Context, update tgbotapi.Update) {
	from := update.Message.From
	chatID := update.Message.Chat.ID
	command := update.Message.Command()

	switch command {
	case "start":
		_ = h.sendText(chatID, msgWelcome)

	case "financial_quiz", "health_check":
		_ = h.sendText(chatID, h.quizService.Start(from.ID))

	case "pricing":
		_ = h.sendText(chatID, msgPricing)

	case "help":
		_ = h.withErrorHandling(h.helpHandler(from.ID))(ctx, chatID)

	case "whoami":
		_ = h.withErrorHandling(h.whoamiHandler(from.ID))(ctx, chatID)

	case "admin_contact":
		_ = h.withErrorHandling(
			h.requiresFeature(from.ID, service.FeatureAdminContact, h.adminContactHandler()),
		)(ctx, chatID)

	case "book_session":
		_ = h.withErrorHandling(
			h.requiresFeature(from.ID, service.FeatureBookingSystem, h.bookSessionHandler()),
		)(ctx, chatID)

	default:
		if day, ok := lessonDay(command); ok {
			_ = h.withErrorHandling(
				h.requiresFeature(from.ID, service.FeatureDailyLessons, h.lessonHandler(day)),
			)(ctx, chatID)
			return
		}
		_ = h.sendText(chatID, msgUnknownCommand)
	}
}

// quizFlowHandler feeds a message through the quiz engine, starting the
// quiz when an entry keyword arrives without an active session.
func (h *Handler) quizFlowHandler(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		replies, followUp, handled := h.quizService.HandleMessage(userID, text)
		if !handled {
			return h.sendText(chatID, h.quizService.Start(userID))
		}

		for _, reply := range replies {
			if err := h.sendLong(ctx, chatID, reply); err != nil {
				return err
			}
		}

		if followUp != "" {
			h.scheduleFollowUp(chatID, followUp)
		}

		return nil
	}
}

func (h *Handler) helpHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendLong(ctx, chatID, h.accessService.TierHelp(ctx, userID))
	}
}

func (h *Handler) whoamiHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		status := h.accessService.GetUserTierInfo(ctx, userID)
		support := h.accessService.SupportMessage(ctx, userID)
		return h.sendText(chatID, whoamiText(status)+"\n\n"+support)
	}
}

func (h *Handler) adminContactHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendText(chatID, msgAdminContact)
	}
}

func (h *Handler) bookSessionHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendText(chatID, msgBookSession)
	}
}

func (h *Handler) lessonHandler(day int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendLong(ctx, chatID, lessonContent(day))
	}
}

// scheduleFollowUp delivers the post-quiz follow-up after a delay,
// independent of the (already deleted) session. Best-effort: a failed
// send is only logged.
func (h *Handler) scheduleFollowUp(chatID int64, text string) {
	time.AfterFunc(h.opts.FollowUpDelay, func() {
		if err := h.sendText(chatID, text); err != nil {
			h.logger.Error("failed to send follow-up",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
	})
}

func (h *Handler) sendText(chatID int64, text string) error {
	_, err := h.bot.Send(newPlainMessage(chatID, text))
	if err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
	return err
}

func (h *Handler) sendLong(ctx context.Context, chatID int64, text string) error {
	send := func(chatID int64, chunk string) error {
		_, err := h.bot.Send(newPlainMessage(chatID, chunk))
		return err
	}
	return SendChunks(ctx, send, chatID, text, h.opts.MaxMessageLength, h.opts.ChunkDelay)
}

// lessonDay parses /day1../day7 commands.
func lessonDay(command string) (int, bool) {
	rest, ok := strings.CutPrefix(command, "day")
	if !ok {
		return 0, false
	}
	day, err := strconv.Atoi(rest)
	if err != nil || day < 1 || day > 7 {
		return 0, false
	}
	return day, true
}
