package components

import (
	"strings"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/ui/styles"
)

// SidebarWidth is the fixed column width reserved for the chat list.
const SidebarWidth = 24

// RenderSidebar renders the chat list with the active chat marked.
func RenderSidebar(chats []models.ChatSummary, height int) string {
	itemStyle := styles.SidebarItemStyle()
	selectedStyle := styles.SidebarSelectedStyle()

	var b strings.Builder
	b.WriteString("Chats\n\n")
	for _, chat := range chats {
		title := truncateTitle(chat.Title, SidebarWidth-4)
		if chat.Selected {
			b.WriteString(selectedStyle.Render("> "+title) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+title) + "\n")
		}
	}

	return styles.SidebarStyle(height - 4).Width(SidebarWidth).Render(b.String())
}

// truncateTitle shortens a title to max cells, counting runes so a
// multi-byte character is never split mid-sequence.
func truncateTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max-1]) + "…"
}
