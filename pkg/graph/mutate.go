package graph

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/aayushsoam1/cogni-mind/pkg/common"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Blank node defaults and the viewport rectangle it is dropped into.
const (
	BlankNodeLabel       = "New Node"
	BlankNodeDescription = "Add description..."

	blankMinX  = 100.0
	blankSpanX = 500.0
	blankMinY  = 100.0
	blankSpanY = 400.0
)

// AddBlankNode appends a node with a time derived id at a random position
// inside x ∈ [100,600], y ∈ [100,500] and returns it. No edges are created.
// If the time derived id is taken, a short random suffix is appended.
func AddBlankNode(g *common.Graph, now time.Time, rng *rand.Rand) (common.Node, error) {
	id := strconv.FormatInt(now.UnixMilli(), 10)
	for g.NodeIndex(id) >= 0 {
		suffix, err := gonanoid.New(6)
		if err != nil {
			return common.Node{}, fmt.Errorf("failed to generate node id: %w", err)
		}
		id = strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
	}

	n := common.Node{
		ID:          id,
		Label:       BlankNodeLabel,
		Description: BlankNodeDescription,
		Kind:        common.KindTopic,
		Tags:        []string{},
		Resources:   []common.Resource{},
		Lang:        defaultLang,
		Position: common.Position{
			X: blankMinX + rng.Float64()*blankSpanX,
			Y: blankMinY + rng.Float64()*blankSpanY,
		},
	}
	g.Nodes = append(g.Nodes, n)
	return n, nil
}

// UpdateNode replaces label and, when description is not nil, the description
// of the node with the given id. Everything else, including the node's place in
// the sequence, is kept. It reports false and changes nothing if id is unknown.
func UpdateNode(g *common.Graph, id string, label string, description *string) bool {
	i := g.NodeIndex(id)
	if i < 0 {
		return false
	}
	g.Nodes[i].Label = label
	if description != nil {
		g.Nodes[i].Description = *description
	}
	return true
}

// DeleteNode removes the node with the given id together with every edge
// that starts or ends at it. It reports whether a node was removed; edges
// touching id are removed either way.
func DeleteNode(g *common.Graph, id string) bool {
	removed := false
	nodes := g.Nodes[:0]
	for _, n := range g.Nodes {
		if n.ID == id {
			removed = true
			continue
		}
		nodes = append(nodes, n)
	}
	clear(g.Nodes[len(nodes):])
	g.Nodes = nodes

	edges := g.Edges[:0]
	for _, e := range g.Edges {
		if e.Source == id || e.Target == id {
			continue
		}
		edges = append(edges, e)
	}
	clear(g.Edges[len(edges):])
	g.Edges = edges

	return removed
}

// Connect appends an edge from source to target and returns it.
// Neither end has to exist, and parallel edges and self-loops are allowed;
// keeping the id unique is up to the caller.
func Connect(g *common.Graph, source, target, relation string) common.Edge {
	e := common.Edge{
		ID:       common.EdgeID(source, target),
		Source:   source,
		Target:   target,
		Relation: relation,
		Animated: common.IsAnimatedRelation(relation),
	}
	if relation != "" {
		e.Stroke = common.EdgeStroke(relation)
	}
	g.Edges = append(g.Edges, e)
	return e
}

// ReplaceGraph swaps the whole node and edge sequences of g for next's.
func ReplaceGraph(g *common.Graph, next common.Graph) {
	if next.Nodes == nil {
		next.Nodes = []common.Node{}
	}
	if next.Edges == nil {
		next.Edges = []common.Edge{}
	}
	g.Nodes = next.Nodes
	g.Edges = next.Edges
}
