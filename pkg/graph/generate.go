package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aayushsoam1/cogni-mind/pkg/ai"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"
)

const defaultTemperature = 0.7

// Generator turns a free-text prompt into a RawPayload with exactly one call
// to the completion service. It never retries.
type Generator struct {
	client       ai.GraphAIClient
	systemPrompt string

	model       string
	temperature float64
	repairJSON  bool
	jsonMode    bool
}

// NewGeneratorParams configures a Generator.
//
// Model overrides the client's default model when set. Temperature defaults
// to 0.7. RepairJSON runs malformed completions through a JSON repair step
// before they are rejected. JSONMode asks the provider for a bare JSON object.
type NewGeneratorParams struct {
	Client      ai.GraphAIClient
	Model       string
	Temperature float64
	RepairJSON  bool
	JSONMode    bool
}

// NewGenerator builds the fixed system contract and returns a Generator.
func NewGenerator(params NewGeneratorParams) (*Generator, error) {
	if params.Client == nil {
		return nil, errors.New("generator needs an AI client")
	}

	schema, err := ai.SchemaJSON(RawPayload{})
	if err != nil {
		return nil, fmt.Errorf("failed to build payload schema: %w", err)
	}

	temperature := params.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &Generator{
		client:       params.Client,
		systemPrompt: fmt.Sprintf(ai.MindMapPrompt, schema),
		model:        params.Model,
		temperature:  temperature,
		repairJSON:   params.RepairJSON,
		jsonMode:     params.JSONMode,
	}, nil
}

// SystemPrompt returns the contract sent as system message.
func (g *Generator) SystemPrompt() string {
	return g.systemPrompt
}

// Generate sends prompt to the completion service and parses the result.
// Every failure is a *GenerationError.
func (g *Generator) Generate(ctx context.Context, prompt string) (*RawPayload, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, InvalidInput("prompt must not be empty")
	}

	opts := []ai.GenerateOption{
		ai.WithSystemPrompts(g.systemPrompt),
		ai.WithTemperature(g.temperature),
		ai.WithJSONMode(g.jsonMode),
	}
	if g.model != "" {
		opts = append(opts, ai.WithModel(g.model))
	}

	logger.Info("[Generate] Requesting mind map", "prompt_chars", len(prompt))

	start := time.Now()
	content, err := g.client.GenerateCompletion(ctx, prompt, opts...)
	if err != nil {
		var upErr *ai.UpstreamError
		if errors.As(err, &upErr) {
			logger.Error("[Generate] Upstream rejected request", "status", upErr.StatusCode, "err", upErr.Message)
			return nil, &GenerationError{
				Kind:       KindUpstreamError,
				Message:    "completion service returned an error",
				StatusCode: upErr.StatusCode,
				Cause:      err,
			}
		}
		logger.Error("[Generate] Completion request failed", "err", err)
		return nil, newError(KindTransportFailure, "completion request failed", err)
	}

	logger.Debug("[Generate] Completion received", "chars", len(content), "duration_ms", time.Since(start).Milliseconds())

	payload, err := ParsePayload(content, g.repairJSON)
	if err != nil {
		logger.Error("[Generate] Unusable completion", "kind", KindOf(err), "err", err)
		return nil, err
	}

	for _, w := range payload.Warnings {
		logger.Warn("[Generate] Payload repaired", "detail", w)
	}
	logger.Info("[Generate] Mind map generated", "topic", payload.Topic, "nodes", len(payload.Nodes), "edges", len(payload.Edges))

	return payload, nil
}
