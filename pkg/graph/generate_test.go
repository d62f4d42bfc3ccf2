package graph

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aayushsoam1/cogni-mind/pkg/ai"
	"github.com/aayushsoam1/cogni-mind/pkg/ai/aitest"
	"github.com/aayushsoam1/cogni-mind/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studyPlanCompletion = "```json\n" + `{
  "topic": "DSA study plan",
  "nodes": [
    {"id": "study_parent", "label": "📚 Study Materials", "type": "topic", "category": "study", "children": ["s1"]},
    {"id": "s1", "label": "Arrays & Strings", "type": "study", "category": "study",
     "resources": [{"r_id": "r1", "title": "NPTEL DSA", "provider": "NPTEL", "url": "https://nptel.ac.in", "type": "course", "meta": {"official": true, "score": 0.9}}]},
    {"id": "jobs_parent", "label": "💼 Jobs & Internships", "type": "topic", "category": "job"}
  ],
  "edges": [{"from": "study_parent", "to": "jobs_parent", "relation": "leads_to"}]
}` + "\n```"

func newTestGenerator(t *testing.T, client *aitest.FakeClient) *Generator {
	t.Helper()
	g, err := NewGenerator(NewGeneratorParams{Client: client})
	require.NoError(t, err)
	return g
}

func TestNewGenerator_RequiresClient(t *testing.T) {
	_, err := NewGenerator(NewGeneratorParams{})
	assert.Error(t, err)
}

func TestGenerator_SystemPrompt(t *testing.T) {
	g := newTestGenerator(t, &aitest.FakeClient{})

	prompt := g.SystemPrompt()
	assert.Contains(t, prompt, "study_parent")
	assert.Contains(t, prompt, "jobs_parent")
	assert.Contains(t, prompt, "notes_parent")
	assert.Contains(t, prompt, `"nodes"`)
	assert.NotContains(t, prompt, "%!")
}

func TestGenerator_EmptyPromptMakesNoCall(t *testing.T) {
	client := &aitest.FakeClient{Response: studyPlanCompletion}
	g := newTestGenerator(t, client)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := g.Generate(context.Background(), prompt)
		require.Error(t, err)
		assert.Equal(t, KindInvalidInput, KindOf(err))
	}
	assert.Empty(t, client.Calls())
}

func TestGenerator_SingleCallWithContract(t *testing.T) {
	client := &aitest.FakeClient{Response: studyPlanCompletion}
	g, err := NewGenerator(NewGeneratorParams{Client: client, Model: "test-model", JSONMode: true})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "DSA study plan")
	require.NoError(t, err)

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "DSA study plan", calls[0].Prompt)
	assert.Equal(t, []string{g.SystemPrompt()}, calls[0].Options.SystemPrompts)
	assert.Equal(t, 0.7, calls[0].Options.Temperature)
	assert.Equal(t, "test-model", calls[0].Options.Model)
	assert.True(t, calls[0].Options.JSONMode)
}

func TestGenerator_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		err        error
		wantKind   ErrorKind
		wantStatus int
	}{
		{
			name:       "upstream status",
			err:        &ai.UpstreamError{StatusCode: 429, Message: "rate limited"},
			wantKind:   KindUpstreamError,
			wantStatus: 429,
		},
		{
			name:     "transport failure",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: KindTransportFailure,
		},
		{
			name:     "context deadline",
			err:      context.DeadlineExceeded,
			wantKind: KindTransportFailure,
		},
		{
			name:     "prose instead of json",
			response: "I cannot help with that.",
			wantKind: KindMalformedResponse,
		},
		{
			name:     "no nodes array",
			response: `{"topic":"x"}`,
			wantKind: KindInvalidSchema,
		},
		{
			name:     "error payload",
			response: `{"error":"model overloaded"}`,
			wantKind: KindUpstreamError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &aitest.FakeClient{Response: tt.response, Err: tt.err}
			g := newTestGenerator(t, client)

			p, err := g.Generate(context.Background(), "anything")
			require.Error(t, err)
			assert.Nil(t, p)
			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.True(t, tt.wantKind.IsUpstream())

			var genErr *GenerationError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, tt.wantStatus, genErr.StatusCode)
			assert.Len(t, client.Calls(), 1)
		})
	}
}

func TestGenerator_StudyPlanEndToEnd(t *testing.T) {
	client := &aitest.FakeClient{Response: studyPlanCompletion}
	g := newTestGenerator(t, client)

	p, err := g.Generate(context.Background(), "DSA study plan")
	require.NoError(t, err)
	assert.Equal(t, "DSA study plan", p.Topic)

	graph := Build(p, DefaultLayout())
	require.Len(t, graph.Nodes, 3)

	byID := map[string]common.Node{}
	for _, n := range graph.Nodes {
		byID[n.ID] = n
	}
	assert.Equal(t, common.Position{X: 100, Y: 100}, byID["study_parent"].Position)
	assert.Equal(t, common.Position{X: 100, Y: 100}, byID["s1"].Position)
	assert.Equal(t, common.Position{X: 500, Y: 100}, byID["jobs_parent"].Position)
	assert.True(t, byID["study_parent"].Parent)
	assert.True(t, byID["jobs_parent"].Parent)
	assert.Equal(t, 0.9, byID["s1"].Resources[0].Meta.Score)

	require.Len(t, graph.Edges, 2)
	assert.Equal(t, "e-study_parent-jobs_parent", graph.Edges[0].ID)
	assert.Equal(t, "leads_to", graph.Edges[0].Relation)
	assert.True(t, graph.Edges[0].Animated)
	assert.Equal(t, "e-study_parent-s1", graph.Edges[1].ID)
	assert.True(t, graph.Edges[1].Animated)
	assert.Empty(t, graph.Edges[1].Relation)
}

func TestGenerator_RepairJSON(t *testing.T) {
	truncated := strings.TrimSuffix(`{"nodes":[{"id":"a","label":"A"}]}`, "]}")

	strict := newTestGenerator(t, &aitest.FakeClient{Response: truncated})
	_, err := strict.Generate(context.Background(), "x")
	assert.Equal(t, KindMalformedResponse, KindOf(err))

	lenient, err := NewGenerator(NewGeneratorParams{
		Client:     &aitest.FakeClient{Response: truncated},
		RepairJSON: true,
	})
	require.NoError(t, err)
	p, err := lenient.Generate(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, p.Nodes, 1)
	assert.Equal(t, "A", p.Nodes[0].Label)
}
