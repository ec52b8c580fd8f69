package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func boldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func italicStyle() lipgloss.Style {
	return lipgloss.NewStyle().Italic(true)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func linkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Underline(true)
}

func listStyle() lipgloss.Style {
	return lipgloss.NewStyle().MarginLeft(2)
}

func inlineCodeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1)
}

var (
	orderedListRegex = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
	inlineCodeRegex  = regexp.MustCompile("`[^`]*`")
	linkRegex        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldRegex        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRegex      = regexp.MustCompile(`_([^_]+)_`)
)

// RenderMarkdown applies basic markdown rendering to prose text.
// Fenced code blocks are handled by the caller before this runs.
func RenderMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result strings.Builder

	for _, line := range lines {
		// Handle titles (# ## ###) - remove marks for cleaner visual
		if title, found := strings.CutPrefix(line, "### "); found {
			result.WriteString(titleStyle().Render(processInline(title)) + "\n")
			continue
		} else if title, found := strings.CutPrefix(line, "## "); found {
			result.WriteString(titleStyle().Render(processInline(title)) + "\n")
			continue
		} else if title, found := strings.CutPrefix(line, "# "); found {
			result.WriteString(titleStyle().Render(processInline(title)) + "\n")
			continue
		}

		// Handle unordered lists (- or *)
		if item, found := strings.CutPrefix(line, "- "); found {
			result.WriteString(listStyle().Render("• "+processInline(item)) + "\n")
			continue
		} else if item, found := strings.CutPrefix(line, "* "); found {
			result.WriteString(listStyle().Render("• "+processInline(item)) + "\n")
			continue
		}

		// Handle ordered lists (1. 2. etc.)
		if matches := orderedListRegex.FindStringSubmatch(line); len(matches) == 3 {
			result.WriteString(listStyle().Render(matches[1]+". "+processInline(matches[2])) + "\n")
			continue
		}

		result.WriteString(processInline(line) + "\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

// processInline handles inline markdown elements. Code spans go first
// so their content is not touched by the other rules.
func processInline(line string) string {
	line = inlineCodeRegex.ReplaceAllStringFunc(line, func(match string) string {
		return inlineCodeStyle().Render(strings.Trim(match, "`"))
	})

	line = linkRegex.ReplaceAllStringFunc(line, func(match string) string {
		matches := linkRegex.FindStringSubmatch(match)
		if len(matches) == 3 {
			return linkStyle().Render(matches[1])
		}
		return match
	})

	line = boldRegex.ReplaceAllStringFunc(line, func(match string) string {
		return boldStyle().Render(strings.Trim(match, "*"))
	})

	line = italicRegex.ReplaceAllStringFunc(line, func(match string) string {
		return italicStyle().Render(strings.Trim(match, "_"))
	})

	return line
}
