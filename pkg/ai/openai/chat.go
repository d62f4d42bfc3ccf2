package openai

import (
	"context"
	"errors"
	"time"

	"github.com/aayushsoam1/cogni-mind/pkg/ai"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// GenerateCompletion sends a single-turn prompt to the chat model and
// returns the generated completion as plain text.
//
// Non-success responses are returned as *ai.UpstreamError, everything else
// (DNS, connection resets, timeouts) as the underlying error.
//
// Example:
//
//	resp, err := client.GenerateCompletion(ctx, "DSA study plan",
//		ai.WithSystemPrompts(systemPrompt),
//		ai.WithTemperature(0.7),
//	)
func (c *GraphOpenAIClient) GenerateCompletion(
	ctx context.Context,
	prompt string,
	opts ...ai.GenerateOption,
) (string, error) {
	options := ai.ApplyOptions(ai.GenerateOptions{
		Model:       c.chatModel,
		Temperature: 0.3,
	}, opts...)

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(options.SystemPrompts)+1)
	for _, sp := range options.SystemPrompts {
		msgs = append(msgs, openai.SystemMessage(sp))
	}
	msgs = append(msgs, openai.UserMessage(prompt))

	body := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(options.Model),
		Messages:    msgs,
		Temperature: openai.Float(options.Temperature),
	}
	if options.JSONMode {
		body.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	start := time.Now()
	response, err := c.ChatClient.Chat.Completions.New(ctx, body)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			logger.Error("[OpenAI] Completion request rejected", "status", apiErr.StatusCode, "model", options.Model)
			return "", &ai.UpstreamError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
		}
		return "", err
	}
	duration := time.Since(start).Milliseconds()

	c.metrics.Record(ai.ModelMetrics{
		InputTokens:  int(response.Usage.PromptTokens),
		OutputTokens: int(response.Usage.CompletionTokens),
		TotalTokens:  int(response.Usage.TotalTokens),
		DurationMs:   duration,
	})

	if len(response.Choices) == 0 {
		return "", &ai.UpstreamError{Message: "no choices in response from model"}
	}

	return response.Choices[0].Message.Content, nil
}

// LoadModel is a no-op, hosted models need no warm-up.
func (c *GraphOpenAIClient) LoadModel(ctx context.Context, opts ...ai.GenerateOption) error {
	return nil
}
