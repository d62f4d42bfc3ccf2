package util

import (
	"fmt"

	"github.com/aayushsoam1/cogni-mind/pkg/ai"
	oai "github.com/aayushsoam1/cogni-mind/pkg/ai/ollama"
	gai "github.com/aayushsoam1/cogni-mind/pkg/ai/openai"
)

// DefaultChatModel is used when AI_CHAT_MODEL is not set.
const DefaultChatModel = "google/gemini-2.5-flash"

// NewAIClientFromEnv builds the completion client selected by AI_ADAPTER
// ("openai", the default, or "ollama").
func NewAIClientFromEnv() (ai.GraphAIClient, error) {
	model := GetEnvString("AI_CHAT_MODEL", DefaultChatModel)

	switch adapter := GetEnvString("AI_ADAPTER", "openai"); adapter {
	case "ollama":
		client, err := oai.NewGraphOllamaClient(oai.NewGraphOllamaClientParams{
			ChatModel: model,

			BaseURL: GetEnv("AI_CHAT_URL"),
			ApiKey:  GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(GetEnvNumeric("AI_PARALLEL_REQ", 4)),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return client, nil
	case "openai":
		return gai.NewGraphOpenAIClient(gai.NewGraphOpenAIClientParams{
			ChatModel: model,
			ChatURL:   GetEnv("AI_CHAT_URL"),
			ChatKey:   GetEnv("AI_CHAT_KEY"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown AI_ADAPTER %q", adapter)
	}
}
