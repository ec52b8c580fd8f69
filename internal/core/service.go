package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/ollama"
)

// GenerationClient is the transport surface the service depends on.
// *ollama.Client satisfies it; tests substitute fakes.
type GenerationClient interface {
	ListModels(ctx context.Context) ([]ollama.ModelInfo, error)
	Generate(ctx context.Context, model, prompt string) (*ollama.GenerateResponse, error)
}

// ChatService owns all ChatState mutation. UI intents arrive over the
// event bus and are applied by the service's event loop; every
// successful mutation is followed by a full state push so the UI never
// observes partial updates.
type ChatService struct {
	client   GenerationClient
	config   *config.Config
	state    *ChatState
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc

	prefOnce sync.Once // configured default model applies once, on first refresh
}

func NewChatService(cfg *config.Config, client GenerationClient, eb *eventbus.EventBus) *ChatService {
	state := NewChatState()
	ctx, cancel := context.WithCancel(context.Background())

	service := &ChatService{
		client:   client,
		config:   cfg,
		state:    state,
		eventBus: eb,
		ctx:      ctx,
		cancel:   cancel,
	}

	// Start with one empty conversation so the UI always has a target.
	state.CreateChat()

	return service
}

// Start runs the core logic in a goroutine and kicks off the initial
// model list fetch.
func (cs *ChatService) Start() {
	cs.pushStateToUI()
	cs.fetchModels()
	go cs.eventLoop()
}

func (cs *ChatService) Stop() {
	cs.cancel()
}

func (cs *ChatService) eventLoop() {
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *ChatService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SendMessageEvent:
		cs.processSend(e.ChatID, e.Prompt)
	case eventbus.NewChatEvent:
		cs.state.CreateChat()
		cs.pushStateToUI()
	case eventbus.SelectChatEvent:
		if cs.state.SelectChat(e.ChatID) {
			cs.pushStateToUI()
		}
	case eventbus.SelectModelEvent:
		if cs.state.SelectModel(e.Name) {
			cs.pushStateToUI()
		}
	case eventbus.RenameChatEvent:
		if cs.state.SetTitle(e.ChatID, e.Title, "") {
			cs.pushStateToUI()
		}
	case eventbus.FetchModelsEvent:
		cs.fetchModels()
	}
}

// processSend appends the user turn synchronously, then resolves the
// generation asynchronously. A second send on a chat with an
// outstanding generation is rejected rather than interleaved.
func (cs *ChatService) processSend(chatID, prompt string) {
	if prompt == "" {
		return
	}
	model := cs.state.SelectedModel()
	if model == "" {
		cs.state.SetError(fmt.Errorf("no model selected"))
		cs.pushStateToUI()
		return
	}

	if cs.state.GetChat(chatID) == nil {
		cs.state.SetError(fmt.Errorf("chat not found: %s", chatID))
		cs.pushStateToUI()
		return
	}

	userMsg := models.NewMessage(models.User, prompt)
	if !cs.state.StartSendWithUserMessage(chatID, userMsg) {
		cs.state.SetError(fmt.Errorf("chat is busy, wait for the current reply"))
		cs.pushStateToUI()
		return
	}
	cs.pushStateToUI()

	go func() {
		resp, err := cs.client.Generate(cs.ctx, model, prompt)
		if err != nil {
			cs.state.FinishSendWithError(chatID, fmt.Errorf("generate failed: %w", err))
			cs.pushStateToUI()
			return
		}

		assistantMsg := models.NewMessage(models.Assistant, resp.Response)
		cs.state.FinishSendWithAssistantMessage(chatID, assistantMsg)
		cs.pushStateToUI()

		// Detached title generation; its failure is swallowed inside.
		go cs.generateTitleSuggestion(chatID)
	}()
}

// fetchModels refreshes the available model list. On failure the prior
// list is left unchanged and the error is surfaced for display only.
func (cs *ChatService) fetchModels() {
	go func() {
		infos, err := cs.client.ListModels(cs.ctx)
		if err != nil {
			cs.state.SetError(fmt.Errorf("list models failed: %w", err))
			cs.pushStateToUI()
			return
		}

		names := make([]string, len(infos))
		for i, info := range infos {
			names[i] = info.Name
		}
		cs.state.SetModels(names)

		// Prefer the configured default model the first time the list
		// arrives; later refreshes keep the user's in-session pick.
		cs.prefOnce.Do(func() {
			if cs.config.Model != "" {
				cs.state.SelectModel(cs.config.Model)
			}
		})
		cs.pushStateToUI()
	}()
}

func (cs *ChatService) pushStateToUI() {
	snapshot := eventbus.StateUpdateEvent{
		Chats:           cs.state.GetChatSummaries(),
		Messages:        cs.state.GetSelectedMessages(),
		SelectedChatID:  cs.state.SelectedChatID(),
		AvailableModels: cs.state.AvailableModels(),
		SelectedModel:   cs.state.SelectedModel(),
		IsLoading:       cs.state.IsLoading(),
		Error:           cs.state.LastError(),
	}

	if err := cs.eventBus.SendToUI(snapshot); err != nil {
		log.Printf("Error sending state to UI: %v", err)
	}
}

// State exposes the store for command-line helpers and tests.
func (cs *ChatService) State() *ChatState {
	return cs.state
}
