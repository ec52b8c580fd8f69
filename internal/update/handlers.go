package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, input *textinput.Model, keyMsg tea.KeyMsg, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit, true
	case "enter":
		prompt := strings.TrimSpace(input.Value())
		if prompt == "" {
			return nil, true
		}
		if appModel.SelectedModel == "" {
			appModel.Status = "No model selected - press ctrl+r to refresh models"
			return nil, true
		}
		if err := eb.SendToCore(eventbus.SendMessageEvent{
			ChatID: appModel.SelectedChatID,
			Prompt: prompt,
		}); err != nil {
			appModel.Status = "Error sending message: " + err.Error()
			return nil, true
		}
		// Only manage local UI state - clear input
		input.Reset()
		return nil, true
	case "ctrl+n":
		if err := eb.SendToCore(eventbus.NewChatEvent{}); err != nil {
			appModel.Status = "Error creating chat: " + err.Error()
		}
		return nil, true
	case "ctrl+p":
		return selectAdjacentChat(appModel, eb, -1), true
	case "ctrl+o":
		return selectAdjacentChat(appModel, eb, +1), true
	case "tab":
		return cycleModel(appModel, eb), true
	case "ctrl+r":
		if err := eb.SendToCore(eventbus.FetchModelsEvent{}); err != nil {
			appModel.Status = "Error refreshing models: " + err.Error()
		}
		return nil, true
	}
	return nil, false
}

// selectAdjacentChat moves the selection up or down the sidebar.
func selectAdjacentChat(appModel *models.AppModel, eb *eventbus.EventBus, delta int) tea.Cmd {
	if len(appModel.Chats) == 0 {
		return nil
	}
	current := 0
	for i, chat := range appModel.Chats {
		if chat.ID == appModel.SelectedChatID {
			current = i
			break
		}
	}
	next := (current + delta + len(appModel.Chats)) % len(appModel.Chats)
	if err := eb.SendToCore(eventbus.SelectChatEvent{ChatID: appModel.Chats[next].ID}); err != nil {
		appModel.Status = "Error switching chat: " + err.Error()
	}
	return nil
}

// cycleModel advances the model selection through the available list.
func cycleModel(appModel *models.AppModel, eb *eventbus.EventBus) tea.Cmd {
	if len(appModel.AvailableModels) == 0 {
		return nil
	}
	current := 0
	for i, name := range appModel.AvailableModels {
		if name == appModel.SelectedModel {
			current = i
			break
		}
	}
	next := (current + 1) % len(appModel.AvailableModels)
	if err := eb.SendToCore(eventbus.SelectModelEvent{Name: appModel.AvailableModels[next]}); err != nil {
		appModel.Status = "Error switching model: " + err.Error()
	}
	return nil
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		// Update UI state from core state
		appModel.Chats = event.Chats
		appModel.Messages = event.Messages
		appModel.SelectedChatID = event.SelectedChatID
		appModel.AvailableModels = event.AvailableModels
		appModel.SelectedModel = event.SelectedModel
		appModel.Loading = event.IsLoading

		// Update status based on core state
		if event.Error != nil {
			appModel.Status = "Error: " + event.Error.Error()
		} else if event.IsLoading {
			appModel.Status = "Generating"
		} else {
			appModel.Status = "Ready"
		}
	}

	return nil
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}
