package telegram

import (
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"threpsi-bot/api/internal/triage"
	"threpsi-bot/api/internal/util"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID

	toolID := getTool(cid)
	if toolID == "" {
		r.send(cid, "Pick a tool first — use /start.")
		return
	}
	tool, err := triage.ToolByID(toolID)
	if err != nil || !tool.WantsImage {
		r.send(cid, "This tool takes text, not photos. Describe your symptoms instead.")
		return
	}

	// largest preview Telegram offers
	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.send(cid, "Could not fetch the photo: "+err.Error())
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	img, err := download(url)
	if err != nil {
		r.send(cid, "Could not download the photo: "+err.Error())
		return
	}
	if !util.IsSupportedImage(img) {
		r.send(cid, "Only JPEG/PNG images are supported. For documents, send a rendered page image.")
		return
	}

	r.send(cid, "Got it, analyzing…")
	r.runTool(cid, tool.ID, img, "")
}

func (r *Router) acceptText(chatID int64, text string) {
	toolID := getTool(chatID)
	if toolID == "" {
		r.send(chatID, "Pick a tool first — use /start.")
		return
	}
	tool, err := triage.ToolByID(toolID)
	if err != nil {
		r.send(chatID, "Pick a tool first — use /start.")
		return
	}
	if tool.WantsImage {
		r.send(chatID, "This tool expects a photo upload.")
		return
	}

	r.send(chatID, "Got it, analyzing…")
	r.runTool(chatID, tool.ID, nil, text)
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}
