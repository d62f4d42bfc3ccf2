package ollama

import (
	"context"
	"errors"

	"github.com/aayushsoam1/cogni-mind/pkg/ai"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"

	"github.com/ollama/ollama/api"
)

const (
	defaultContext  = 4096
	contextHeadroom = 2048
)

// GenerateCompletion sends a single-turn prompt and returns assistant text.
// The context window is widened when system and user prompt do not fit the
// default one, leaving room for the generated mind map.
func (c *GraphOllamaClient) GenerateCompletion(
	ctx context.Context,
	prompt string,
	opts ...ai.GenerateOption,
) (string, error) {
	options := ai.ApplyOptions(ai.GenerateOptions{
		Model:       c.chatModel,
		Temperature: 0.3,
	}, opts...)

	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.reqLock.Release(1)

	msgs := make([]api.Message, 0, len(options.SystemPrompts)+1)
	for _, sys := range options.SystemPrompts {
		msgs = append(msgs, api.Message{Role: "system", Content: sys})
	}
	msgs = append(msgs, api.Message{Role: "user", Content: prompt})

	stream := false
	req := &api.ChatRequest{
		Model:    options.Model,
		Messages: msgs,
		Stream:   &stream,
		Options:  map[string]any{"temperature": options.Temperature},
	}
	if options.JSONMode {
		req.Format = []byte(`"json"`)
	}

	texts := append([]string{prompt}, options.SystemPrompts...)
	if tokens := c.estimateTokens(texts...) + contextHeadroom; tokens > defaultContext {
		req.Options["num_ctx"] = tokens
	}

	var final api.ChatResponse
	err := c.Client.Chat(ctx, req, func(cr api.ChatResponse) error {
		final.Message.Content += cr.Message.Content
		if cr.Done {
			final.Done = true
			final.Metrics = cr.Metrics
		}
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			logger.Error("[Ollama] Completion request rejected", "status", statusErr.StatusCode, "model", options.Model)
			return "", &ai.UpstreamError{StatusCode: statusErr.StatusCode, Message: statusErr.ErrorMessage}
		}
		return "", err
	}

	c.metrics.Record(ai.ModelMetrics{
		InputTokens:  final.Metrics.PromptEvalCount,
		OutputTokens: final.Metrics.EvalCount,
		TotalTokens:  final.Metrics.PromptEvalCount + final.Metrics.EvalCount,
		DurationMs:   final.Metrics.TotalDuration.Milliseconds(),
	})

	return final.Message.Content, nil
}

// LoadModel preloads a model into memory to reduce latency on the first generation.
func (c *GraphOllamaClient) LoadModel(ctx context.Context, opts ...ai.GenerateOption) error {
	options := ai.ApplyOptions(ai.GenerateOptions{Model: c.chatModel}, opts...)

	req := &api.ChatRequest{
		Model: options.Model,
	}

	return c.Client.Chat(ctx, req, func(cr api.ChatResponse) error {
		return nil
	})
}
