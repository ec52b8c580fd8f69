package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/models"
)

func TestCreateChatSelectsNewChat(t *testing.T) {
	state := NewChatState()

	first := state.CreateChat()
	assert.Equal(t, first.ID, state.SelectedChatID())
	assert.Equal(t, "New Chat", first.Title)
	assert.Empty(t, first.Messages)

	second := state.CreateChat()
	assert.Equal(t, second.ID, state.SelectedChatID())
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, state.GetChatSummaries(), 2)
}

func TestUpdateChatUnknownIDIsNoOp(t *testing.T) {
	state := NewChatState()
	state.CreateChat()

	ghost := models.NewChat()
	ghost.Title = "ghost"
	assert.False(t, state.UpdateChat(ghost))

	summaries := state.GetChatSummaries()
	require.Len(t, summaries, 1)
	assert.Equal(t, "New Chat", summaries[0].Title)
}

func TestAppendMessage(t *testing.T) {
	state := NewChatState()
	chat := state.CreateChat()

	msg := models.NewMessage(models.User, "hello")
	assert.True(t, state.AppendMessage(chat.ID, msg))
	assert.False(t, state.AppendMessage("missing", msg))

	stored := state.GetChat(chat.ID)
	require.NotNil(t, stored)
	require.Len(t, stored.Messages, 1)
	assert.Equal(t, "hello", stored.Messages[0].Content)
	assert.Equal(t, models.User, stored.Messages[0].Role)
}

func TestSelectChatRequiresExistingID(t *testing.T) {
	state := NewChatState()
	first := state.CreateChat()
	second := state.CreateChat()

	assert.True(t, state.SelectChat(first.ID))
	assert.Equal(t, first.ID, state.SelectedChatID())

	assert.False(t, state.SelectChat("missing"))
	assert.Equal(t, first.ID, state.SelectedChatID())

	assert.True(t, state.SelectChat(second.ID))
}

func TestSetModelsDefaultsSelection(t *testing.T) {
	state := NewChatState()

	state.SetModels([]string{"llama3", "qwen", "llama3"})
	assert.Equal(t, []string{"llama3", "qwen"}, state.AvailableModels(), "duplicates dropped")
	assert.Equal(t, "llama3", state.SelectedModel(), "empty selection defaults to first")
}

func TestSetModelsRevalidatesStaleSelection(t *testing.T) {
	state := NewChatState()

	state.SetModels([]string{"llama3", "qwen"})
	require.True(t, state.SelectModel("qwen"))

	// selection survives a refresh that still contains it
	state.SetModels([]string{"mistral", "qwen"})
	assert.Equal(t, "qwen", state.SelectedModel())

	// a refresh without it resets to the first entry
	state.SetModels([]string{"mistral", "phi3"})
	assert.Equal(t, "mistral", state.SelectedModel())
}

func TestSelectModelRequiresMembership(t *testing.T) {
	state := NewChatState()
	state.SetModels([]string{"llama3"})

	assert.False(t, state.SelectModel("missing"))
	assert.Equal(t, "llama3", state.SelectedModel())
}

func TestStartSendGuardsBusyChat(t *testing.T) {
	state := NewChatState()
	chat := state.CreateChat()

	ok := state.StartSendWithUserMessage(chat.ID, models.NewMessage(models.User, "first"))
	require.True(t, ok)
	assert.True(t, state.IsLoading())
	assert.True(t, state.IsBusy(chat.ID))

	// second send on the same chat is rejected and leaves state untouched
	ok = state.StartSendWithUserMessage(chat.ID, models.NewMessage(models.User, "second"))
	assert.False(t, ok)
	require.Len(t, state.GetChat(chat.ID).Messages, 1)

	// unknown chat is rejected too
	assert.False(t, state.StartSendWithUserMessage("missing", models.NewMessage(models.User, "x")))
}

func TestLoadingTracksAllBusyChats(t *testing.T) {
	state := NewChatState()
	first := state.CreateChat()
	second := state.CreateChat()
	require.True(t, state.StartSendWithUserMessage(first.ID, models.NewMessage(models.User, "a")))
	require.True(t, state.StartSendWithUserMessage(second.ID, models.NewMessage(models.User, "b")))

	// first reply landing must not hide the second chat's in-flight request
	state.FinishSendWithAssistantMessage(first.ID, models.NewMessage(models.Assistant, "done"))
	assert.True(t, state.IsLoading())
	assert.True(t, state.IsBusy(second.ID))

	state.FinishSendWithAssistantMessage(second.ID, models.NewMessage(models.Assistant, "done"))
	assert.False(t, state.IsLoading())
}

func TestFinishSendWithAssistantMessage(t *testing.T) {
	state := NewChatState()
	chat := state.CreateChat()
	require.True(t, state.StartSendWithUserMessage(chat.ID, models.NewMessage(models.User, "hi")))

	state.FinishSendWithAssistantMessage(chat.ID, models.NewMessage(models.Assistant, "Hello!"))

	assert.False(t, state.IsLoading())
	assert.False(t, state.IsBusy(chat.ID))
	assert.NoError(t, state.LastError())

	messages := state.GetChat(chat.ID).Messages
	require.Len(t, messages, 2)
	assert.Equal(t, models.User, messages[0].Role)
	assert.Equal(t, models.Assistant, messages[1].Role)
	assert.Equal(t, "Hello!", messages[1].Content)
}

func TestFinishSendWithErrorKeepsUserTurnOnly(t *testing.T) {
	state := NewChatState()
	chat := state.CreateChat()
	require.True(t, state.StartSendWithUserMessage(chat.ID, models.NewMessage(models.User, "hi")))

	failure := errors.New("connection refused")
	state.FinishSendWithError(chat.ID, failure)

	assert.False(t, state.IsLoading())
	assert.False(t, state.IsBusy(chat.ID))
	assert.ErrorIs(t, state.LastError(), failure)

	messages := state.GetChat(chat.ID).Messages
	require.Len(t, messages, 1)
	assert.Equal(t, models.User, messages[0].Role)
}

func TestSetTitle(t *testing.T) {
	state := NewChatState()
	chat := state.CreateChat()

	assert.True(t, state.SetTitle(chat.ID, "Go Questions", "Go Questions"))
	stored := state.GetChat(chat.ID)
	assert.Equal(t, "Go Questions", stored.Title)
	assert.Equal(t, "Go Questions", stored.NameSuggestion)

	// manual rename keeps existing suggestion
	assert.True(t, state.SetTitle(chat.ID, "My Chat", ""))
	stored = state.GetChat(chat.ID)
	assert.Equal(t, "My Chat", stored.Title)
	assert.Equal(t, "Go Questions", stored.NameSuggestion)

	assert.False(t, state.SetTitle("missing", "x", "x"))
}
