package core

import (
	"sync"

	"github.com/Rorical/RoriChat/internal/models"
)

// ChatState is the single source of truth for all chats, selection,
// model choice, and request lifecycle flags.
type ChatState struct {
	mu             sync.RWMutex
	chats          []*models.Chat
	selectedChatID string
	// Model selection
	availableModels []string
	selectedModel   string
	// Request lifecycle
	lastError error
	busyChats map[string]bool // chats with an outstanding generation
}

func NewChatState() *ChatState {
	return &ChatState{
		chats:     make([]*models.Chat, 0),
		busyChats: make(map[string]bool),
	}
}

// CreateChat appends a new chat with a placeholder title and selects it.
func (cs *ChatState) CreateChat() *models.Chat {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	chat := models.NewChat()
	cs.chats = append(cs.chats, chat)
	cs.selectedChatID = chat.ID
	return chat.Clone()
}

// UpdateChat replaces the stored chat matching the given id. Returns
// false without touching state when no chat matches; callers must not
// notify observers in that case.
func (cs *ChatState) UpdateChat(chat *models.Chat) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.updateChatLocked(chat)
}

func (cs *ChatState) updateChatLocked(chat *models.Chat) bool {
	for i, existing := range cs.chats {
		if existing.ID == chat.ID {
			cs.chats[i] = chat.Clone()
			return true
		}
	}
	return false
}

// AppendMessage locates the chat and appends the message through the
// update path. Returns false when the chat does not exist.
func (cs *ChatState) AppendMessage(chatID string, msg models.Message) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	chat := cs.findChatLocked(chatID)
	if chat == nil {
		return false
	}
	updated := chat.Clone()
	updated.Messages = append(updated.Messages, msg)
	return cs.updateChatLocked(updated)
}

func (cs *ChatState) findChatLocked(chatID string) *models.Chat {
	for _, chat := range cs.chats {
		if chat.ID == chatID {
			return chat
		}
	}
	return nil
}

// GetChat returns a copy of the chat, or nil if absent.
func (cs *ChatState) GetChat(chatID string) *models.Chat {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	chat := cs.findChatLocked(chatID)
	if chat == nil {
		return nil
	}
	return chat.Clone()
}

// GetChatSummaries returns the sidebar view of all chats in creation order.
func (cs *ChatState) GetChatSummaries() []models.ChatSummary {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	summaries := make([]models.ChatSummary, len(cs.chats))
	for i, chat := range cs.chats {
		summaries[i] = models.ChatSummary{
			ID:       chat.ID,
			Title:    chat.Title,
			Selected: chat.ID == cs.selectedChatID,
		}
	}
	return summaries
}

// GetSelectedMessages returns the message sequence of the selected chat.
func (cs *ChatState) GetSelectedMessages() []models.Message {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	chat := cs.findChatLocked(cs.selectedChatID)
	if chat == nil {
		return nil
	}
	result := make([]models.Message, len(chat.Messages))
	copy(result, chat.Messages)
	return result
}

// SelectChat switches the active conversation. The id must reference an
// existing chat.
func (cs *ChatState) SelectChat(chatID string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.findChatLocked(chatID) == nil {
		return false
	}
	cs.selectedChatID = chatID
	return true
}

func (cs *ChatState) SelectedChatID() string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.selectedChatID
}

// SetModels replaces the available model list with the given names,
// dropping duplicates. An empty selection defaults to the first entry;
// a selection that no longer appears in the list is reset to the first
// entry so the invariant selectedModel ∈ availableModels holds after
// every refresh.
func (cs *ChatState) SetModels(names []string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	seen := make(map[string]bool, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			distinct = append(distinct, name)
		}
	}
	cs.availableModels = distinct

	if len(distinct) == 0 {
		return
	}
	if cs.selectedModel == "" || !seen[cs.selectedModel] {
		cs.selectedModel = distinct[0]
	}
}

func (cs *ChatState) AvailableModels() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	result := make([]string, len(cs.availableModels))
	copy(result, cs.availableModels)
	return result
}

// SelectModel picks a model for subsequent generations. The name must
// be a member of the available list.
func (cs *ChatState) SelectModel(name string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for _, available := range cs.availableModels {
		if available == name {
			cs.selectedModel = name
			return true
		}
	}
	return false
}

func (cs *ChatState) SelectedModel() string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.selectedModel
}

// IsLoading reports whether any chat has an outstanding generation.
// Derived from the busy set so one chat settling cannot hide another
// chat's in-flight request.
func (cs *ChatState) IsLoading() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.busyChats) > 0
}

func (cs *ChatState) LastError() error {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.lastError
}

func (cs *ChatState) SetError(err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.lastError = err
}

func (cs *ChatState) IsBusy(chatID string) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.busyChats[chatID]
}

// Atomic operations for event ordering

// StartSendWithUserMessage marks the chat busy and appends the user
// turn in one step. Returns false when the chat is unknown or already
// has an outstanding generation; state is untouched in that case.
func (cs *ChatState) StartSendWithUserMessage(chatID string, msg models.Message) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	chat := cs.findChatLocked(chatID)
	if chat == nil || cs.busyChats[chatID] {
		return false
	}

	cs.busyChats[chatID] = true
	cs.lastError = nil

	updated := chat.Clone()
	updated.Messages = append(updated.Messages, msg)
	cs.updateChatLocked(updated)
	return true
}

// FinishSendWithAssistantMessage clears the chat's busy mark and
// appends the assistant turn in one step.
func (cs *ChatState) FinishSendWithAssistantMessage(chatID string, msg models.Message) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.busyChats, chatID)
	cs.lastError = nil

	chat := cs.findChatLocked(chatID)
	if chat == nil {
		return
	}
	updated := chat.Clone()
	updated.Messages = append(updated.Messages, msg)
	cs.updateChatLocked(updated)
}

// FinishSendWithError clears the chat's busy mark and records the
// failure. The message list keeps only the user turn.
func (cs *ChatState) FinishSendWithError(chatID string, err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.busyChats, chatID)
	cs.lastError = err
}

// SetTitle records a generated or user-provided title. The suggestion
// field keeps the raw generated text. No-op on an unknown chat.
func (cs *ChatState) SetTitle(chatID, title, suggestion string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	chat := cs.findChatLocked(chatID)
	if chat == nil {
		return false
	}
	updated := chat.Clone()
	updated.Title = title
	if suggestion != "" {
		updated.NameSuggestion = suggestion
	}
	return cs.updateChatLocked(updated)
}
