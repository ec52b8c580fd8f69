package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChat(t *testing.T) {
	chat := NewChat()
	assert.NotEmpty(t, chat.ID)
	assert.Equal(t, "New Chat", chat.Title)
	assert.Empty(t, chat.Messages)

	other := NewChat()
	assert.NotEqual(t, chat.ID, other.ID)
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage(User, "hi")
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, User, msg.Role)
	assert.Equal(t, "hi", msg.Content)

	other := NewMessage(Assistant, "hi")
	assert.NotEqual(t, msg.ID, other.ID)
}

func TestChatCloneIsIndependent(t *testing.T) {
	chat := NewChat()
	chat.Messages = append(chat.Messages, NewMessage(User, "hi"))

	clone := chat.Clone()
	clone.Title = "changed"
	clone.Messages = append(clone.Messages, NewMessage(Assistant, "Hello!"))

	assert.Equal(t, "New Chat", chat.Title)
	require.Len(t, chat.Messages, 1)
	require.Len(t, clone.Messages, 2)
}
