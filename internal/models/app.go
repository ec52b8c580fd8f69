package models

// ChatSummary is the sidebar view of a chat.
type ChatSummary struct {
	ID       string
	Title    string
	Selected bool
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Chats           []ChatSummary // Sidebar entries
	Messages        []Message     // Messages of the selected chat
	SelectedChatID  string
	AvailableModels []string
	SelectedModel   string
	Status          string // Status bar text
	Loading         bool   // Loading state from core
	Width           int    // Terminal width
	Height          int    // Terminal height
	ServerReady     bool   // Whether the generation server answered the health probe
}
