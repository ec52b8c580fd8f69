package components

import (
	"github.com/Rorical/RoriChat/ui/styles"
)

func RenderStatus(status, model, spinner string, width int) string {
	content := status
	if model != "" {
		content += "  |  model: " + model
	}
	if spinner != "" {
		content = spinner + " " + content
	}
	return styles.StatusStyle(width).Render(content)
}
