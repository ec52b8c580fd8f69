// Package highlight extracts fenced code blocks from message text and
// renders them with terminal syntax highlighting.
package highlight

import "strings"

const fenceMarker = "```"

// languageAliases maps short language tags to the canonical identifiers
// the highlighter understands. Unrecognized tags pass through unchanged.
var languageAliases = map[string]string{
	"py":     "python",
	"js":     "javascript",
	"ts":     "typescript",
	"rb":     "ruby",
	"cpp":    "cpp",
	"c++":    "cpp",
	"cs":     "csharp",
	"csharp": "csharp",
	"sh":     "bash",
	"bash":   "bash",
	"shell":  "bash",
	"golang": "go",
	"yml":    "yaml",
}

// ExtractLanguage splits a message body into code and language tag.
//
// If text begins with a fence marker, the first line (sans marker and
// whitespace) is the language tag and the body is everything between
// the first and last line. The closing fence is assumed, not verified.
// Text without a leading fence is returned unchanged with language
// "plaintext".
func ExtractLanguage(text string) (code, language string) {
	if !strings.HasPrefix(text, fenceMarker) {
		return text, "plaintext"
	}

	lines := strings.Split(text, "\n")
	language = strings.TrimSpace(strings.TrimPrefix(lines[0], fenceMarker))
	if language == "" {
		language = "plaintext"
	}

	if len(lines) > 2 {
		code = strings.Join(lines[1:len(lines)-1], "\n")
	}
	return code, language
}

// NormalizeLanguage lower-cases a language tag and resolves known
// aliases to their canonical identifier.
func NormalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if canonical, ok := languageAliases[tag]; ok {
		return canonical
	}
	return tag
}
