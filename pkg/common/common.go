package common

// Graph is the node and edge aggregate of one mind map. It is owned by a
// single editing session, replaced wholesale after a successful generation
// and edited incrementally afterwards.
//
// Node ids are unique within Nodes. Edge ids are unique within Edges. Edges may
// reference node ids that are not present (dangling edges are tolerated).
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeKind tags the role a node had at generation time. The set is open:
// unknown kinds coming from newer prompt variants are kept as they are.
type NodeKind string

const (
	KindTopic      NodeKind = "topic"
	KindStudy      NodeKind = "study"
	KindJob        NodeKind = "job"
	KindNote       NodeKind = "note"
	KindVideo      NodeKind = "video"
	KindSkill      NodeKind = "skill"
	KindInternship NodeKind = "internship"
	KindCourse     NodeKind = "course"
	KindResource   NodeKind = "resource"
	KindProject    NodeKind = "project"
	KindSub        NodeKind = "sub"
	KindMain       NodeKind = "main"
)

// Category drives layout and coloring only. It is independent of NodeKind.
// The empty Category means "none".
type Category string

const (
	CategoryStudy Category = "study"
	CategoryJob   Category = "job"
	CategoryNote  Category = "note"
	CategoryVideo Category = "video"
)

// Position is a 2-D canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a positioned, renderable mind map node.
//
// Parent is set by the layout engine for a bucket's designated root that is
// rendered larger than its children.
type Node struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description,omitempty"`
	Kind        NodeKind   `json:"type"`
	Category    Category   `json:"category,omitempty"`
	Tags        []string   `json:"tags"`
	Resources   []Resource `json:"resources"`
	Lang        string     `json:"lang"`
	Position    Position   `json:"position"`
	Parent      bool       `json:"parent,omitempty"`
}

// ResourceView tells the presentation layer how to open a resource.
type ResourceView string

const (
	ViewInner ResourceView = "inner"
	ViewWeb   ResourceView = "web"
)

// Resource is a learning, job or reference link attached to a node.
// ID is unique within its owning node.
type Resource struct {
	ID       string       `json:"r_id" jsonschema_description:"Unique id of the resource within its node"`
	Title    string       `json:"title"`
	Provider string       `json:"provider" jsonschema_description:"Provider name, e.g. NPTEL, SWAYAM, YouTube, Coursera, LinkedIn, Internshala, GitHub"`
	URL      string       `json:"url" jsonschema_description:"Direct link to the resource"`
	Type     string       `json:"type" jsonschema_description:"One of pdf, course, video, job, internship, article, guideline"`
	Meta     ResourceMeta `json:"meta"`
}

// ResourceMeta carries ranking and presentation hints of a Resource.
//
// Score is expected in [0,1]. Values outside the range are reported by
// validation and clamped by ClampedScore, never rejected.
type ResourceMeta struct {
	Official  bool         `json:"official" jsonschema_description:"True for government resources"`
	Mock      bool         `json:"mock,omitempty"`
	Score     float64      `json:"score" jsonschema_description:"Relevance score between 0 and 1"`
	Tags      []string     `json:"tags,omitempty"`
	Snippet   string       `json:"snippet,omitempty"`
	YoutubeID string       `json:"youtube_id,omitempty"`
	View      ResourceView `json:"view,omitempty" jsonschema:"enum=inner,enum=web"`
}

// ClampedScore returns Score clamped into [0,1], for proportional indicators.
func (m ResourceMeta) ClampedScore() float64 {
	switch {
	case m.Score != m.Score: // NaN
		return 0
	case m.Score < 0:
		return 0
	case m.Score > 1:
		return 1
	default:
		return m.Score
	}
}

// Edge is a directed, optionally labeled connection between two nodes.
//
// Stroke is a color hint for the renderer and is empty when the renderer
// should use its default.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation,omitempty"`
	Animated bool   `json:"animated"`
	Stroke   string `json:"stroke,omitempty"`
}

// Known edge relations.
const (
	RelationContains     = "contains"
	RelationLeadsTo      = "leads_to"
	RelationRelated      = "related"
	RelationPrerequisite = "prerequisite"
	RelationPartOf       = "part_of"
)

// EdgeID returns the canonical id of a synthesized edge from source to target.
func EdgeID(source, target string) string {
	return "e-" + source + "-" + target
}

// IsAnimatedRelation reports whether edges with this relation are drawn animated.
func IsAnimatedRelation(relation string) bool {
	return relation == RelationLeadsTo || relation == RelationRelated
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = n.Clone()
	}
	copy(out.Edges, g.Edges)
	return out
}

// Clone returns a deep copy of n.
func (n Node) Clone() Node {
	n.Tags = append([]string{}, n.Tags...)
	resources := make([]Resource, len(n.Resources))
	for i, r := range n.Resources {
		r.Meta.Tags = append([]string(nil), r.Meta.Tags...)
		resources[i] = r
	}
	n.Resources = resources
	return n
}

// NodeIndex returns the position of the node with the given id, or -1.
func (g *Graph) NodeIndex(id string) int {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// HasEdge reports whether an edge with the given id exists.
func (g *Graph) HasEdge(id string) bool {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			return true
		}
	}
	return false
}

// SeedGraph returns the graph every editing session starts with.
func SeedGraph() Graph {
	return Graph{
		Nodes: []Node{
			{
				ID:          "1",
				Label:       "My Mind Map",
				Description: "Click to edit or add nodes",
				Kind:        KindTopic,
				Tags:        []string{},
				Resources:   []Resource{},
				Lang:        "en",
				Position:    Position{X: 250, Y: 150},
			},
		},
		Edges: []Edge{},
	}
}
