package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/usecase"
)

// BotHandler relays Telegram chats to the assistant. The chat ID doubles as
// the dialogue session key, so every chat carries at most one open estimate.
type BotHandler struct {
	bot    *tgbotapi.BotAPI
	assist usecase.AssistUseCase
	pool   *workerPool
	log    *zap.Logger
}

func NewBotHandler(token string, assist usecase.AssistUseCase, log *zap.Logger) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	h := &BotHandler{bot: bot, assist: assist, log: log}
	h.pool = newWorkerPool(h, 0)
	return h, nil
}

const welcomeMessage = "أهلاً بك! اسألني عن جمارك أي صنف، مثلاً: كم جمارك شاشة 50 بوصة؟"

// Start consumes the update stream until ctx is canceled.
func (h *BotHandler) Start(ctx context.Context) {
	h.log.Info("telegram bot started", zap.String("username", h.bot.Self.UserName))

	h.pool.start(ctx)
	defer h.pool.shutdown()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			h.log.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			h.dispatch(ctx, update.Message)
		}
	}
}

func (h *BotHandler) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			h.sendPlain(msg.Chat.ID, welcomeMessage)
		}
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if !h.pool.submit(&turnRequest{ctx: ctx, chatID: msg.Chat.ID, text: text}) {
		h.log.Warn("turn dropped, queue full", zap.Int64("chat", msg.Chat.ID))
	}
}
