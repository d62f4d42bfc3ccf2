package graph

import (
	"testing"

	"github.com/aayushsoam1/cogni-mind/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeEdges(t *testing.T) {
	tests := []struct {
		name string
		p    RawPayload
		want []common.Edge
	}{
		{
			name: "no edges",
			p:    RawPayload{Nodes: []RawNode{{ID: "a"}}},
			want: []common.Edge{},
		},
		{
			name: "explicit edge wins over child",
			p: RawPayload{
				Nodes: []RawNode{{ID: "a", Children: []string{"b"}}, {ID: "b"}},
				Edges: []RawEdge{{From: "a", To: "b", Relation: "contains"}},
			},
			want: []common.Edge{
				{ID: "e-a-b", Source: "a", Target: "b", Relation: "contains", Stroke: "#8b5cf6"},
			},
		},
		{
			name: "explicit edges first then children",
			p: RawPayload{
				Nodes: []RawNode{{ID: "a", Children: []string{"c", "b"}}, {ID: "b"}, {ID: "c"}},
				Edges: []RawEdge{{From: "b", To: "c", Relation: "leads_to"}},
			},
			want: []common.Edge{
				{ID: "e-b-c", Source: "b", Target: "c", Relation: "leads_to", Animated: true, Stroke: "#10b981"},
				{ID: "e-a-c", Source: "a", Target: "c", Animated: true},
				{ID: "e-a-b", Source: "a", Target: "b", Animated: true},
			},
		},
		{
			name: "duplicate explicit edges keep the first",
			p: RawPayload{
				Edges: []RawEdge{
					{From: "a", To: "b", Relation: "related"},
					{From: "a", To: "b", Relation: "part_of"},
				},
			},
			want: []common.Edge{
				{ID: "e-a-b", Source: "a", Target: "b", Relation: "related", Animated: true, Stroke: "#8b5cf6"},
			},
		},
		{
			name: "reverse direction is a different edge",
			p: RawPayload{
				Nodes: []RawNode{{ID: "b", Children: []string{"a"}}},
				Edges: []RawEdge{{From: "a", To: "b"}},
			},
			want: []common.Edge{
				{ID: "e-a-b", Source: "a", Target: "b", Stroke: "#8b5cf6"},
				{ID: "e-b-a", Source: "b", Target: "a", Animated: true},
			},
		},
		{
			name: "dangling ends are kept",
			p: RawPayload{
				Nodes: []RawNode{{ID: "a", Children: []string{"ghost"}}},
			},
			want: []common.Edge{
				{ID: "e-a-ghost", Source: "a", Target: "ghost", Animated: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeEdges(&tt.p)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizeEdges_UniqueIDs(t *testing.T) {
	p := &RawPayload{
		Nodes: []RawNode{
			{ID: "a", Children: []string{"b", "b", "c"}},
			{ID: "b", Children: []string{"c"}},
		},
		Edges: []RawEdge{{From: "a", To: "c"}, {From: "b", To: "c"}},
	}

	seen := map[string]bool{}
	for _, e := range SynthesizeEdges(p) {
		require.False(t, seen[e.ID], "duplicate edge id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestBuild_StudyPlan(t *testing.T) {
	p, err := ParsePayload(`{
		"topic": "DSA study plan",
		"nodes": [
			{"id": "study_parent", "label": "📚 Study Materials", "type": "topic", "children": ["s1"]},
			{"id": "s1", "label": "Arrays", "type": "study", "category": "study"},
			{"id": "jobs_parent", "label": "💼 Jobs", "type": "topic"}
		],
		"edges": []
	}`, false)
	require.NoError(t, err)

	g := Build(p, DefaultLayout())

	require.Len(t, g.Nodes, 3)
	assert.Equal(t, "study_parent", g.Nodes[0].ID)
	assert.Equal(t, common.Position{X: 100, Y: 100}, g.Nodes[0].Position)
	assert.True(t, g.Nodes[0].Parent)
	assert.Equal(t, "s1", g.Nodes[1].ID)
	assert.Equal(t, common.Position{X: 100, Y: 100}, g.Nodes[1].Position)
	assert.Equal(t, "jobs_parent", g.Nodes[2].ID)
	assert.Equal(t, common.Position{X: 500, Y: 100}, g.Nodes[2].Position)

	assert.Equal(t, []common.Edge{
		{ID: "e-study_parent-s1", Source: "study_parent", Target: "s1", Animated: true},
	}, g.Edges)
}
