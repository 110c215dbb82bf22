package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
)

func (h *BotHandler) sendPlain(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		h.log.Warn("send failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}

// sendReply renders a dialogue reply. Quick choices become a one-shot reply
// keyboard; a finished or failed dialogue removes any keyboard left behind.
func (h *BotHandler) sendReply(chatID int64, reply entity.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)

	if len(reply.Choices) > 0 {
		rows := make([][]tgbotapi.KeyboardButton, 0, len(reply.Choices))
		for _, choice := range reply.Choices {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(choice)))
		}
		keyboard := tgbotapi.NewReplyKeyboard(rows...)
		keyboard.OneTimeKeyboard = true
		keyboard.ResizeKeyboard = true
		msg.ReplyMarkup = keyboard
	} else {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	if _, err := h.bot.Send(msg); err != nil {
		h.log.Warn("send failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}
