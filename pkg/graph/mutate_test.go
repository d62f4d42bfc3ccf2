package graph

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/aayushsoam1/cogni-mind/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph() common.Graph {
	return common.Graph{
		Nodes: []common.Node{
			{ID: "x", Label: "X", Description: "first"},
			{ID: "y", Label: "Y"},
			{ID: "z", Label: "Z"},
		},
		Edges: []common.Edge{
			{ID: "e-x-y", Source: "x", Target: "y"},
			{ID: "e-y-x", Source: "y", Target: "x"},
			{ID: "e-y-z", Source: "y", Target: "z"},
		},
	}
}

func TestAddBlankNode(t *testing.T) {
	g := testGraph()
	rng := rand.New(rand.NewPCG(1, 2))
	now := time.UnixMilli(1700000000000)

	for i := 0; i < 50; i++ {
		n, err := AddBlankNode(&g, now, rng)
		require.NoError(t, err)

		assert.Equal(t, BlankNodeLabel, n.Label)
		assert.Equal(t, BlankNodeDescription, n.Description)
		assert.GreaterOrEqual(t, n.Position.X, 100.0)
		assert.LessOrEqual(t, n.Position.X, 600.0)
		assert.GreaterOrEqual(t, n.Position.Y, 100.0)
		assert.LessOrEqual(t, n.Position.Y, 500.0)
		assert.True(t, strings.HasPrefix(n.ID, "1700000000000"))
	}

	// same instant every time: ids still unique
	seen := map[string]bool{}
	for _, n := range g.Nodes {
		require.False(t, seen[n.ID], "duplicate node id %s", n.ID)
		seen[n.ID] = true
	}
	assert.Len(t, g.Nodes, 53)
	assert.Len(t, g.Edges, 3)
	assert.Equal(t, strconv.FormatInt(now.UnixMilli(), 10), g.Nodes[3].ID)
}

func TestUpdateNode(t *testing.T) {
	g := testGraph()

	ok := UpdateNode(&g, "x", "Renamed", nil)
	require.True(t, ok)
	assert.Equal(t, "Renamed", g.Nodes[0].Label)
	assert.Equal(t, "first", g.Nodes[0].Description)
	assert.Equal(t, "x", g.Nodes[0].ID)

	desc := ""
	ok = UpdateNode(&g, "x", "Renamed", &desc)
	require.True(t, ok)
	assert.Empty(t, g.Nodes[0].Description)

	before := testGraph()
	before.Nodes[0].Label = "Renamed"
	before.Nodes[0].Description = ""
	assert.False(t, UpdateNode(&g, "missing", "nope", &desc))
	assert.Equal(t, before, g)
}

func TestDeleteNode_CascadesEdges(t *testing.T) {
	g := testGraph()

	require.True(t, DeleteNode(&g, "x"))

	assert.Equal(t, []string{"y", "z"}, []string{g.Nodes[0].ID, g.Nodes[1].ID})
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "e-y-z", g.Edges[0].ID)
}

func TestDeleteNode_Unknown(t *testing.T) {
	g := testGraph()
	g.Edges = append(g.Edges, common.Edge{ID: "e-ghost-x", Source: "ghost", Target: "x"})

	assert.False(t, DeleteNode(&g, "ghost"))
	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 3)
}

func TestConnect(t *testing.T) {
	g := testGraph()

	e := Connect(&g, "z", "x", "")
	assert.Equal(t, common.Edge{ID: "e-z-x", Source: "z", Target: "x"}, e)

	loop := Connect(&g, "x", "x", "leads_to")
	assert.Equal(t, "e-x-x", loop.ID)
	assert.True(t, loop.Animated)
	assert.Equal(t, "#10b981", loop.Stroke)

	dangling := Connect(&g, "x", "nowhere", "related")
	assert.Equal(t, "nowhere", dangling.Target)

	assert.Len(t, g.Edges, 6)
	assert.True(t, g.HasEdge("e-x-nowhere"))
}

func TestReplaceGraph(t *testing.T) {
	g := testGraph()

	ReplaceGraph(&g, common.Graph{})
	assert.NotNil(t, g.Nodes)
	assert.NotNil(t, g.Edges)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)

	ReplaceGraph(&g, testGraph())
	assert.Equal(t, testGraph(), g)
}
