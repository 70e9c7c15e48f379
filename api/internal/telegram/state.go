package telegram

import "sync"

// Per-chat active tool. Empty string means the dashboard. This is the
// only session state anywhere; the triage core stays stateless and the
// active tool is passed into it on every call.
var chatTool sync.Map // chatID -> string: "" | "rx" | "lab" | "food" | "sym"

func setTool(chatID int64, toolID string) { chatTool.Store(chatID, toolID) }

func getTool(chatID int64) string {
	if v, ok := chatTool.Load(chatID); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}

func clearTool(chatID int64) { chatTool.Delete(chatID) }
