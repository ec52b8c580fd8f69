package core

import (
	"log"
	"strings"

	"github.com/Rorical/RoriChat/internal/models"
)

const titlePromptPrefix = "Summarize the following conversation in at most five words. " +
	"Reply with the title only, no quotes and no punctuation at the end.\n\n"

// buildTitlePrompt joins all message contents with newlines and wraps
// them in the summarization instruction. Empty transcript yields "".
func buildTitlePrompt(messages []models.Message) string {
	if len(messages) == 0 {
		return ""
	}
	contents := make([]string, len(messages))
	for i, msg := range messages {
		contents[i] = msg.Content
	}
	return titlePromptPrefix + strings.Join(contents, "\n")
}

// generateTitleSuggestion derives a short title for the chat from its
// transcript. On an empty transcript no transport call is made; on any
// failure the title is left unchanged and the error is only logged.
func (cs *ChatService) generateTitleSuggestion(chatID string) {
	chat := cs.state.GetChat(chatID)
	if chat == nil {
		return
	}

	prompt := buildTitlePrompt(chat.Messages)
	if prompt == "" {
		return
	}

	resp, err := cs.client.Generate(cs.ctx, cs.state.SelectedModel(), prompt)
	if err != nil {
		log.Printf("title generation failed for chat %s: %v", chatID, err)
		return
	}

	title := strings.TrimSpace(resp.Response)
	if title == "" {
		return
	}
	if cs.state.SetTitle(chatID, title, title) {
		cs.pushStateToUI()
	}
}
