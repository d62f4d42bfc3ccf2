package graph

import (
	"testing"

	"github.com/aayushsoam1/cogni-mind/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(nodes []common.Node) map[string]common.Position {
	out := make(map[string]common.Position, len(nodes))
	for _, n := range nodes {
		out[n.ID] = n.Position
	}
	return out
}

func ids(nodes []common.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func sampleRawNodes() []RawNode {
	return []RawNode{
		{ID: "o1", Label: "Loose idea"},
		{ID: "study_parent", Label: "📚 Study Materials", Type: "topic", Category: "study"},
		{ID: "s1", Category: "study"},
		{ID: "j1", Category: "job"},
		{ID: "s2", Category: "study"},
		{ID: "jobs_parent", Label: "💼 Jobs & Internships", Type: "topic"},
		{ID: "notes_parent", Label: "📝 Notes & Guides", Type: "topic", Category: "note"},
		{ID: "n1", Category: "note"},
		{ID: "o2", Category: "misc"},
	}
}

func TestLayoutApply_Columns(t *testing.T) {
	nodes := DefaultLayout().Apply(sampleRawNodes())

	assert.Equal(t, []string{"study_parent", "s1", "s2", "j1", "jobs_parent", "notes_parent", "n1", "o1", "o2"}, ids(nodes))

	got := positions(nodes)
	want := map[string]common.Position{
		"study_parent": {X: 100, Y: 100},
		"s1":           {X: 100, Y: 100},
		"s2":           {X: 100, Y: 300},
		"j1":           {X: 500, Y: 100},
		"jobs_parent":  {X: 500, Y: 100},
		"notes_parent": {X: 900, Y: 100},
		"n1":           {X: 900, Y: 100},
		"o1":           {X: 500, Y: 800},
		"o2":           {X: 500, Y: 950},
	}
	assert.Equal(t, want, got)
}

func TestLayoutApply_ParentMarkerAndCategory(t *testing.T) {
	nodes := DefaultLayout().Apply(sampleRawNodes())
	byID := make(map[string]common.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	assert.True(t, byID["study_parent"].Parent)
	assert.True(t, byID["jobs_parent"].Parent)
	assert.True(t, byID["notes_parent"].Parent)
	assert.False(t, byID["s1"].Parent)

	// bucket members without a category inherit the bucket's
	assert.Equal(t, common.CategoryJob, byID["jobs_parent"].Category)
	assert.Empty(t, byID["o1"].Category)
	assert.Equal(t, common.Category("misc"), byID["o2"].Category)
}

func TestLayoutApply_ParentWithoutMarker(t *testing.T) {
	nodes := DefaultLayout().Apply([]RawNode{
		{ID: "study_parent", Label: "Learning", Type: "topic"},
		{ID: "notes_parent", Label: "Notes", Type: "note"},
	})
	require.Len(t, nodes, 2)
	assert.False(t, nodes[0].Parent)
	assert.False(t, nodes[1].Parent)
	assert.Equal(t, common.Position{X: 100, Y: 100}, nodes[0].Position)
}

func TestLayoutApply_BucketWithoutParent(t *testing.T) {
	nodes := DefaultLayout().Apply([]RawNode{
		{ID: "j1", Category: "job"},
		{ID: "j2", Category: "job"},
		{ID: "j3", Category: "job"},
	})
	assert.Equal(t, []common.Position{{X: 500, Y: 100}, {X: 500, Y: 300}, {X: 500, Y: 500}}, []common.Position{
		nodes[0].Position, nodes[1].Position, nodes[2].Position,
	})
}

func TestLayoutApply_Deterministic(t *testing.T) {
	layout := DefaultLayout()
	first := layout.Apply(sampleRawNodes())
	second := layout.Apply(sampleRawNodes())
	assert.Equal(t, first, second)
}

func TestLayoutApply_Empty(t *testing.T) {
	assert.Empty(t, DefaultLayout().Apply(nil))
}

func TestLayoutApply_VideoBucket(t *testing.T) {
	layout, ok := LayoutByName("video")
	require.True(t, ok)

	nodes := layout.Apply([]RawNode{
		{ID: "videos_parent", Label: "🎬 Video Lectures", Type: "topic"},
		{ID: "v1", Category: "video"},
		{ID: "v2", Category: "video"},
	})
	assert.Equal(t, map[string]common.Position{
		"videos_parent": {X: 1300, Y: 100},
		"v1":            {X: 1300, Y: 100},
		"v2":            {X: 1300, Y: 300},
	}, positions(nodes))
	assert.True(t, nodes[0].Parent)

	// without the video bucket these nodes fall into the other band
	plain := DefaultLayout().Apply([]RawNode{{ID: "v1", Category: "video"}})
	assert.Equal(t, common.Position{X: 500, Y: 800}, plain[0].Position)
}

func TestLayoutApply_FirstMatchingBucketWins(t *testing.T) {
	// category says job, but the id is the study parent: study is tested first
	nodes := DefaultLayout().Apply([]RawNode{{ID: "study_parent", Category: "job"}})
	assert.Equal(t, common.Position{X: 100, Y: 100}, nodes[0].Position)
	assert.Equal(t, common.CategoryJob, nodes[0].Category)
}

func TestLayoutByName(t *testing.T) {
	_, ok := LayoutByName("")
	assert.True(t, ok)
	_, ok = LayoutByName("Default")
	assert.True(t, ok)
	_, ok = LayoutByName("spiral")
	assert.False(t, ok)
}
