package models

import "github.com/google/uuid"

type MessageRole int

const (
	User MessageRole = iota
	Assistant
)

// Message is one turn in a conversation. Content and Role are set at
// creation and never mutated afterwards.
type Message struct {
	ID      string
	Content string
	Role    MessageRole
}

func NewMessage(role MessageRole, content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Content: content,
		Role:    role,
	}
}

// Chat is a titled, ordered conversation. Messages are append-only and
// keep insertion order.
type Chat struct {
	ID             string
	Title          string
	Messages       []Message
	NameSuggestion string
}

func NewChat() *Chat {
	return &Chat{
		ID:       uuid.NewString(),
		Title:    "New Chat",
		Messages: make([]Message, 0),
	}
}

// Clone returns a deep copy so callers can hand chats across goroutine
// boundaries without sharing the message slice.
func (c *Chat) Clone() *Chat {
	messages := make([]Message, len(c.Messages))
	copy(messages, c.Messages)
	return &Chat{
		ID:             c.ID,
		Title:          c.Title,
		Messages:       messages,
		NameSuggestion: c.NameSuggestion,
	}
}
