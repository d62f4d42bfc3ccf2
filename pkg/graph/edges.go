package graph

import "github.com/aayushsoam1/cogni-mind/pkg/common"

// SynthesizeEdges builds the renderable edges of a payload.
//
// Explicit edges come first, in payload order, labeled with their relation and
// animated for leads_to and related. Then every node's children produce an
// animated, unlabeled edge unless an edge with the same id already exists.
// Edge ids are unique in the result; the first edge with a given id wins.
func SynthesizeEdges(p *RawPayload) []common.Edge {
	edges := make([]common.Edge, 0, len(p.Edges))
	seen := make(map[string]struct{}, len(p.Edges))

	for _, e := range p.Edges {
		id := common.EdgeID(e.From, e.To)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		edges = append(edges, common.Edge{
			ID:       id,
			Source:   e.From,
			Target:   e.To,
			Relation: e.Relation,
			Animated: common.IsAnimatedRelation(e.Relation),
			Stroke:   common.EdgeStroke(e.Relation),
		})
	}

	for _, n := range p.Nodes {
		for _, child := range n.Children {
			id := common.EdgeID(n.ID, child)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			edges = append(edges, common.Edge{
				ID:       id,
				Source:   n.ID,
				Target:   child,
				Animated: true,
			})
		}
	}

	return edges
}

// Build lays out the payload's nodes and synthesizes its edges.
func Build(p *RawPayload, layout Layout) common.Graph {
	return common.Graph{
		Nodes: layout.Apply(p.Nodes),
		Edges: SynthesizeEdges(p),
	}
}
