package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
)

// HandleUpdateWithEventBus routes a Bubble Tea message to its handler.
// The boolean result reports whether the message was consumed; the
// caller forwards unconsumed key presses to the text input.
func HandleUpdateWithEventBus(appModel *models.AppModel, input *textinput.Model, msg tea.Msg, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, input, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil, true
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg), true
	}
	return nil, false
}
