package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/update"
	"github.com/Rorical/RoriChat/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	input      textinput.Model
	spin       spinner.Model
	dispatcher *dispatcher.EventDispatcher
	theme      string
}

func newAppModel(cfg *config.Config, disp *dispatcher.EventDispatcher, serverReady bool) *AppModel {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	status := "Ready"
	if !serverReady {
		status = "Server unreachable at " + cfg.ServerURL + " - is it running?"
	}

	return &AppModel{
		appModel: models.AppModel{
			Status:      status,
			ServerReady: serverReady,
		},
		input:      input,
		spin:       spin,
		dispatcher: disp,
		theme:      cfg.Theme,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	// Keep the spinner animating
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(tick)
		return m, cmd
	}

	// Route through the event bus handlers; unconsumed keys fall
	// through to the text input
	eventBus := m.dispatcher.GetEventBus()
	cmd, handled := update.HandleUpdateWithEventBus(&m.appModel, &m.input, msg, eventBus)
	if handled {
		return m, cmd
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, tea.Batch(cmd, inputCmd)
}

func (m *AppModel) View() string {
	sidebar := components.RenderSidebar(m.appModel.Chats, m.appModel.Height)
	conversation := components.RenderMessages(m.appModel.Messages, m.appModel.Width-components.SidebarWidth, m.theme)

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, conversation)

	spin := ""
	if m.appModel.Loading {
		spin = m.spin.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		components.RenderInput(m.input.View(), m.appModel.Width),
		components.RenderStatus(m.appModel.Status, m.appModel.SelectedModel, spin, m.appModel.Width),
	)
}
