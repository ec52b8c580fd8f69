package components

import (
	"strings"

	"github.com/Rorical/RoriChat/internal/highlight"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/utils"
	"github.com/Rorical/RoriChat/ui/styles"
)

// RenderMessages renders the selected chat's transcript. Fenced code
// blocks inside assistant replies are syntax highlighted; everything
// else goes through the inline markdown renderer.
func RenderMessages(messages []models.Message, width int, theme string) string {
	var b strings.Builder

	userStyle := styles.UserStyle()
	assistantStyle := styles.AssistantStyle()
	if width > 10 {
		userStyle = userStyle.Width(width - 6)
		assistantStyle = assistantStyle.Width(width - 6)
	}

	for _, msg := range messages {
		switch msg.Role {
		case models.User:
			b.WriteString(userStyle.Render("You: "+msg.Content) + "\n\n")
		case models.Assistant:
			body := renderBody(msg.Content, theme)
			b.WriteString(assistantStyle.Render("Assistant: "+body) + "\n\n")
		}
	}

	return b.String()
}

// renderBody splits a message into prose and fenced-code segments and
// renders each part with the appropriate renderer.
func renderBody(text, theme string) string {
	var out []string
	for _, seg := range splitFences(text) {
		if seg.fenced {
			out = append(out, renderCodeBlock(seg.body, theme))
		} else {
			out = append(out, utils.RenderMarkdown(seg.body))
		}
	}
	return strings.Join(out, "\n")
}

func renderCodeBlock(fencedText, theme string) string {
	code, language := highlight.ExtractLanguage(fencedText)
	language = highlight.NormalizeLanguage(language)

	badge := styles.LanguageBadgeStyle().Render(language)
	highlighted := highlight.Render(code, language, theme)
	return badge + "\n" + styles.CodeBlockStyle().Render(highlighted)
}

type segment struct {
	fenced bool
	body   string
}

// splitFences cuts a message into alternating prose and fenced-code
// segments. Fenced segments keep their fence lines so the extractor
// sees the original block. An unclosed fence runs to the end of text.
func splitFences(text string) []segment {
	lines := strings.Split(text, "\n")
	var segments []segment
	var current []string
	fenced := false

	flush := func() {
		if len(current) == 0 {
			return
		}
		segments = append(segments, segment{fenced: fenced, body: strings.Join(current, "\n")})
		current = nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if fenced {
				current = append(current, line)
				flush()
				fenced = false
				continue
			}
			flush()
			fenced = true
			current = append(current, line)
			continue
		}
		current = append(current, line)
	}
	if fenced {
		// close the block so the extractor drops only the fence lines
		current = append(current, "```")
	}
	flush()

	if len(segments) == 0 {
		return []segment{{body: text}}
	}
	return segments
}
