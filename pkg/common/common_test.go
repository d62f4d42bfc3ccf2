package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampedScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{name: "in range", score: 0.42, want: 0.42},
		{name: "lower bound", score: 0, want: 0},
		{name: "upper bound", score: 1, want: 1},
		{name: "negative", score: -3, want: 0},
		{name: "above one", score: 95, want: 1},
		{name: "nan", score: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceMeta{Score: tt.score}.ClampedScore())
		})
	}
}

func TestEdgeID(t *testing.T) {
	assert.Equal(t, "e-study_parent-s1", EdgeID("study_parent", "s1"))
	assert.Equal(t, "e-a-a", EdgeID("a", "a"))
}

func TestGraphLookups(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a"}, {ID: "b"}},
		Edges: []Edge{{ID: EdgeID("a", "b"), Source: "a", Target: "b"}},
	}

	assert.Equal(t, 1, g.NodeIndex("b"))
	assert.Equal(t, -1, g.NodeIndex("c"))
	assert.True(t, g.HasEdge("e-a-b"))
	assert.False(t, g.HasEdge("e-b-a"))
}

func TestIsAnimatedRelation(t *testing.T) {
	assert.True(t, IsAnimatedRelation(RelationLeadsTo))
	assert.True(t, IsAnimatedRelation(RelationRelated))
	assert.False(t, IsAnimatedRelation(RelationContains))
	assert.False(t, IsAnimatedRelation(""))
}

func TestGraphClone_IsDeep(t *testing.T) {
	g := Graph{
		Nodes: []Node{{
			ID:   "a",
			Tags: []string{"x"},
			Resources: []Resource{{
				ID:   "r1",
				Meta: ResourceMeta{Tags: []string{"t"}},
			}},
		}},
		Edges: []Edge{{ID: "e-a-b", Source: "a", Target: "b"}},
	}

	c := g.Clone()
	c.Nodes[0].Tags[0] = "changed"
	c.Nodes[0].Resources[0].Meta.Tags[0] = "changed"
	c.Edges[0].Relation = "changed"

	assert.Equal(t, "x", g.Nodes[0].Tags[0])
	assert.Equal(t, "t", g.Nodes[0].Resources[0].Meta.Tags[0])
	assert.Empty(t, g.Edges[0].Relation)
}

func TestSeedGraph(t *testing.T) {
	g := SeedGraph()
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "1", g.Nodes[0].ID)
	assert.Equal(t, "My Mind Map", g.Nodes[0].Label)
	assert.Equal(t, Position{X: 250, Y: 150}, g.Nodes[0].Position)
	assert.Empty(t, g.Edges)
	assert.Equal(t, 0, g.NodeIndex("1"))
	assert.Equal(t, -1, g.NodeIndex("missing"))
}

func TestStyleHints(t *testing.T) {
	assert.Equal(t, "blue", CategoryColor(CategoryStudy))
	assert.Equal(t, "neutral", CategoryColor(""))
	assert.Equal(t, "#10b981", EdgeStroke(RelationLeadsTo))
	assert.Equal(t, "#8b5cf6", EdgeStroke(RelationContains))
}
