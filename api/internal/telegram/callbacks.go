package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"threpsi-bot/api/internal/triage"
)

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		// stale button: Telegram stops attaching the message after a while
		return
	}
	cid := cb.Message.Chat.ID
	data := cb.Data
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")) // ack

	switch {
	case data == "back":
		clearTool(cid)
		// drop the stale keyboard so old buttons stop working
		edit := tgbotapi.NewEditMessageReplyMarkup(cid, cb.Message.MessageID, tgbotapi.InlineKeyboardMarkup{})
		_, _ = r.Bot.Send(edit)
		r.showDashboard(cid)

	case strings.HasPrefix(data, "tool:"):
		id := strings.TrimPrefix(data, "tool:")
		tool, err := triage.ToolByID(id)
		if err != nil {
			r.send(cid, "That tool is gone. Use /start.")
			return
		}
		setTool(cid, tool.ID)
		msg := tgbotapi.NewMessage(cid, toolIntro(tool))
		msg.ReplyMarkup = makeBackKeyboard()
		_, _ = r.Bot.Send(msg)
	}
}
