package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"threpsi-bot/api/internal/triage"
)

const dashboardText = `🏥 *Health Command Center*
AI understands your input and guides you safely.

Classification is advisory — pick a tool:`

const rxDisclaimer = "\n\n⚠️ _Informational only. Consult a licensed doctor._"

// makeDashboardKeyboard renders one button per tool, plus nothing else:
// tool switching always goes through the dashboard.
func makeDashboardKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(triage.Tools()))
	for _, t := range triage.Tools() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.Title, "tool:"+t.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func makeBackKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("← Back", "back"),
	))
}

// toolIntro is what the bot asks for right after a tool is selected.
func toolIntro(t triage.ToolSpec) string {
	if t.WantsImage {
		return t.Title + "\n\nSend a photo (JPEG/PNG). Multi-page documents: send one rendered page."
	}
	return t.Title + "\n\nDescribe your symptoms in a message."
}
