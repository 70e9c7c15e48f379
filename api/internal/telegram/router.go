package telegram

import (
	"context"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"threpsi-bot/api/internal/triage"
)

type Router struct {
	Bot      *tgbotapi.BotAPI
	Analyzer *triage.Analyzer
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}

	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}

	if txt := strings.TrimSpace(upd.Message.Text); txt != "" {
		r.acceptText(cid, txt)
	}
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		clearTool(cid)
		r.showDashboard(cid)
	case "health":
		r.send(cid, "✅ OK: bot is up; model "+r.Analyzer.Engine.GetModel())
	default:
		r.send(cid, "Unknown command. Use /start.")
	}
}

func (r *Router) showDashboard(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, dashboardText)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = makeDashboardKeyboard()
	_, _ = r.Bot.Send(msg)
}

// runTool executes one analysis for the chat's active tool and renders
// the outcome. Synchronous: one logical request per user action.
func (r *Router) runTool(chatID int64, toolID string, image []byte, text string) {
	out := r.Analyzer.Run(context.Background(), toolID, image, text)

	if out.Warning != "" {
		r.sendMarkdown(chatID, out.Warning)
	}

	body := out.Markdown
	if toolID == "rx" && !out.Blocked && !out.Failed {
		body += rxDisclaimer
	}
	r.sendResult(chatID, body)
}

func (r *Router) send(chatID int64, text string) {
	_, _ = r.Bot.Send(tgbotapi.NewMessage(chatID, text))
}

func (r *Router) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, _ = r.Bot.Send(msg)
}

// truncate cuts text to at most max bytes without splitting a rune;
// Telegram rejects messages carrying invalid UTF-8.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "…"
}

func (r *Router) sendResult(chatID int64, text string) {
	text = truncate(text, 3900)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = makeBackKeyboard()
	if _, err := r.Bot.Send(msg); err != nil {
		// Model output sometimes breaks Telegram markdown; resend plain.
		plain := tgbotapi.NewMessage(chatID, text)
		plain.ReplyMarkup = makeBackKeyboard()
		_, _ = r.Bot.Send(plain)
	}
}
