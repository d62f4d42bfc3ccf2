package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aayushsoam1/cogni-mind/pkg/ai/aitest"
	"github.com/aayushsoam1/cogni-mind/pkg/common"
	"github.com/aayushsoam1/cogni-mind/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completion = `{
  "topic": "Data science",
  "nodes": [
    {"id": "study_parent", "label": "📚 Study Materials", "type": "topic"},
    {"id": "v1", "label": "Pandas crash course", "type": "video", "category": "video"}
  ],
  "edges": [{"from": "study_parent", "to": "v1", "relation": "contains"}]
}`

func newGenerator(t *testing.T, response string) *graph.Generator {
	t.Helper()
	gen, err := graph.NewGenerator(graph.NewGeneratorParams{Client: &aitest.FakeClient{Response: response}})
	require.NoError(t, err)
	return gen
}

func TestRunGenerate_LaidOut(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), newGenerator(t, completion), "Data science", generateOptions{}, &out)
	require.NoError(t, err)

	var g common.Graph
	require.NoError(t, json.Unmarshal(out.Bytes(), &g))
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, common.Position{X: 500, Y: 800}, g.Nodes[1].Position)
}

func TestRunGenerate_Video(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), newGenerator(t, completion), "Data science", generateOptions{Video: true}, &out)
	require.NoError(t, err)

	var g common.Graph
	require.NoError(t, json.Unmarshal(out.Bytes(), &g))
	assert.Equal(t, common.Position{X: 1300, Y: 100}, g.Nodes[1].Position)
}

func TestRunGenerate_Raw(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), newGenerator(t, completion), "Data science", generateOptions{Raw: true}, &out)
	require.NoError(t, err)

	var p graph.RawPayload
	require.NoError(t, json.Unmarshal(out.Bytes(), &p))
	assert.Equal(t, "Data science", p.Topic)
	assert.Equal(t, []graph.RawEdge{{From: "study_parent", To: "v1", Relation: "contains"}}, p.Edges)
}

func TestRunGenerate_Human(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), newGenerator(t, completion), "Data science", generateOptions{Human: true}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Data science")
	assert.Contains(t, text, "* ( 100, 100) 📚 Study Materials")
	assert.Contains(t, text, "study_parent -> v1 (contains)")
}

func TestRunGenerate_Error(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), newGenerator(t, "not json"), "x", generateOptions{}, &out)
	assert.Equal(t, graph.KindMalformedResponse, graph.KindOf(err))
	assert.Empty(t, out.String())
}
