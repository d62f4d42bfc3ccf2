package openai

import (
	"github.com/aayushsoam1/cogni-mind/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GraphOpenAIClient talks to an OpenAI compatible chat completions endpoint,
// such as the OpenAI API itself or a gateway in front of Gemini.
//
// A GraphOpenAIClient should be created using NewGraphOpenAIClient.
type GraphOpenAIClient struct {
	chatModel string

	metrics ai.MetricsRecorder

	ChatClient *openai.Client
}

// NewGraphOpenAIClientParams defines the configuration parameters for creating
// a new GraphOpenAIClient.
//
// ChatModel is used when a request does not pick a model itself.
// ChatURL and ChatKey configure the chat/completion API endpoint; an empty
// ChatURL means the default OpenAI endpoint.
type NewGraphOpenAIClientParams struct {
	ChatModel string
	ChatURL   string
	ChatKey   string

	// Extra request options, mostly useful to inject an HTTP client in tests.
	Options []option.RequestOption
}

// NewGraphOpenAIClient creates and returns a new GraphOpenAIClient.
//
// Example:
//
//	client := openai.NewGraphOpenAIClient(openai.NewGraphOpenAIClientParams{
//		ChatModel: "google/gemini-2.5-flash",
//		ChatURL:   "https://ai.gateway.example/v1",
//		ChatKey:   os.Getenv("AI_CHAT_KEY"),
//	})
func NewGraphOpenAIClient(
	params NewGraphOpenAIClientParams,
) *GraphOpenAIClient {
	options := []option.RequestOption{
		option.WithAPIKey(params.ChatKey),
		// No automatic retries: a failed generation is reported once.
		option.WithMaxRetries(0),
	}
	if params.ChatURL != "" {
		options = append(options, option.WithBaseURL(params.ChatURL))
	}
	options = append(options, params.Options...)

	client := openai.NewClient(options...)

	return &GraphOpenAIClient{
		chatModel:  params.ChatModel,
		ChatClient: &client,
	}
}

// ResetMetrics clears the accumulated token usage.
func (c *GraphOpenAIClient) ResetMetrics() {
	c.metrics.Reset()
}

// GetMetrics returns the accumulated token usage and timing since the last reset.
func (c *GraphOpenAIClient) GetMetrics() ai.ModelMetrics {
	return c.metrics.Snapshot()
}
