package ai

import (
	"context"
	"log"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/confs"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful personal finance advisor. Give clear, " +
	"practical guidance on budgeting, saving, debt and retirement planning. " +
	"Keep answers concise and never present them as professional financial advice."

const fallbackReply = "I'm sorry, I'm having trouble reaching the advice " +
	"service right now. Please try again in a moment."

const DefaultModel = openai.GPT4oMini

// Advisor turns a user message plus prior conversation turns into advice
// text. Implementations never return an error: any failure talking to the
// external API becomes a user-facing fallback reply.
type Advisor interface {
	Advise(ctx context.Context, message string, history []entities.ChatMessage, model string) string
}

type openAIAdvisor struct {
	client       *openai.Client
	defaultModel string
	hasKey       bool
}

// NewAdvisor builds an Advisor from configuration. An empty base URL uses the
// public OpenAI endpoint; setting it points the client at any
// OpenAI-compatible gateway (or a test server).
func NewAdvisor(cfg *confs.Config) Advisor {
	clientCfg := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	model := cfg.AIModel
	if model == "" {
		model = DefaultModel
	}
	return &openAIAdvisor{
		client:       openai.NewClientWithConfig(clientCfg),
		defaultModel: model,
		hasKey:       cfg.OpenAIKey != "",
	}
}

func (a *openAIAdvisor) Advise(ctx context.Context, message string, history []entities.ChatMessage, model string) string {
	if !a.hasKey {
		log.Println("advisor: no API key configured, returning fallback reply")
		return fallbackReply
	}
	if model == "" {
		model = a.defaultModel
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleAssistant
		if turn.IsUserMessage {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Message,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		log.Printf("advisor: chat completion failed: %v", err)
		return fallbackReply
	}
	if len(resp.Choices) == 0 {
		log.Println("advisor: chat completion returned no choices")
		return fallbackReply
	}
	return resp.Choices[0].Message.Content
}
