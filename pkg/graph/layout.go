package graph

import (
	"strings"

	"github.com/aayushsoam1/cogni-mind/pkg/common"
)

// Layout constants shared by the bucket columns.
const (
	parentRowY   = 100.0
	childBaseY   = 300.0
	childStepY   = 200.0
	otherColumnX = 500.0
	otherBaseY   = 800.0
	otherStepY   = 150.0
)

// Bucket is a named partition of generated nodes bound to one column.
//
// A node belongs to the first bucket whose Category equals the node's category
// or whose ParentID equals the node's id. The node with ParentID is pinned to
// the top row; it is rendered as a parent when it is a topic node whose label
// contains one of Markers.
type Bucket struct {
	Name     string
	Category common.Category
	ParentID string
	Column   float64
	Markers  []string
}

// Matches reports whether the raw node belongs to the bucket.
func (b Bucket) Matches(n RawNode) bool {
	return (b.Category != "" && common.Category(n.Category) == b.Category) ||
		(b.ParentID != "" && n.ID == b.ParentID)
}

// OtherBand places the nodes no bucket claimed.
type OtherBand struct {
	Column float64
	BaseY  float64
	StepY  float64
}

// Layout assigns deterministic positions to generated nodes. Apply depends
// only on the order of its input.
type Layout struct {
	Buckets []Bucket
	Other   OtherBand
}

// DefaultBuckets returns the study, job and note columns.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Name: "study", Category: common.CategoryStudy, ParentID: "study_parent", Column: 100, Markers: []string{"Study"}},
		{Name: "job", Category: common.CategoryJob, ParentID: "jobs_parent", Column: 500, Markers: []string{"Jobs"}},
		{Name: "note", Category: common.CategoryNote, ParentID: "notes_parent", Column: 900, Markers: []string{"Notes"}},
	}
}

// VideoBuckets returns DefaultBuckets plus a video column.
func VideoBuckets() []Bucket {
	return append(DefaultBuckets(), Bucket{
		Name: "video", Category: common.CategoryVideo, ParentID: "videos_parent", Column: 1300, Markers: []string{"Video"},
	})
}

// NewLayout returns a Layout over buckets with the standard "other" band.
func NewLayout(buckets []Bucket) Layout {
	return Layout{
		Buckets: buckets,
		Other:   OtherBand{Column: otherColumnX, BaseY: otherBaseY, StepY: otherStepY},
	}
}

// DefaultLayout is NewLayout(DefaultBuckets()).
func DefaultLayout() Layout {
	return NewLayout(DefaultBuckets())
}

// LayoutByName returns the layout variant with the given name ("default" or
// "video"). The empty name selects the default.
func LayoutByName(name string) (Layout, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultLayout(), true
	case "video":
		return NewLayout(VideoBuckets()), true
	}
	return Layout{}, false
}

// Apply partitions raw into buckets and positions every node.
//
// Output order is bucket order, then the "other" band; within each, the input
// order is kept. A bucket's parent sits at y=100; its other nodes are stacked
// at y = 300 + (index-1)*200, index counting the bucket's non-parent nodes from
// 0. The first child therefore shares the parent's row. "Other" nodes are
// stacked at y = 800 + index*150.
func (l Layout) Apply(raw []RawNode) []common.Node {
	members := make([][]RawNode, len(l.Buckets))
	var others []RawNode

	for _, n := range raw {
		placed := false
		for i, b := range l.Buckets {
			if b.Matches(n) {
				members[i] = append(members[i], n)
				placed = true
				break
			}
		}
		if !placed {
			others = append(others, n)
		}
	}

	out := make([]common.Node, 0, len(raw))
	for i, b := range l.Buckets {
		index := 0
		for _, rn := range members[i] {
			n := NormalizeNode(rn)
			if n.Category == "" {
				n.Category = b.Category
			}

			if n.ID == b.ParentID {
				n.Position = common.Position{X: b.Column, Y: parentRowY}
				n.Parent = n.Kind == common.KindTopic && containsAny(n.Label, b.Markers)
			} else {
				n.Position = common.Position{X: b.Column, Y: childBaseY + float64(index-1)*childStepY}
				index++
			}
			out = append(out, n)
		}
	}

	for index, rn := range others {
		n := NormalizeNode(rn)
		n.Position = common.Position{X: l.Other.Column, Y: l.Other.BaseY + float64(index)*l.Other.StepY}
		out = append(out, n)
	}

	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
