// Package session holds the editable mind maps of connected clients.
package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/aayushsoam1/cogni-mind/pkg/common"
	"github.com/aayushsoam1/cogni-mind/pkg/graph"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"
)

var (
	ErrNotFound     = errors.New("session not found")
	ErrClosed       = errors.New("session closed")
	ErrNodeNotFound = errors.New("node not found")
)

// Generator produces a raw payload from a prompt. *graph.Generator implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*graph.RawPayload, error)
}

// Session is one client's mind map together with its selection.
//
// All operations are serialized by the session mutex. A generation releases the
// mutex while it waits for the completion service; at most one generation per
// session is in flight.
type Session struct {
	ID    string
	Owner string

	mu         sync.Mutex
	graph      common.Graph
	selected   string
	generating bool
	closed     bool
	lastUsed   time.Time

	rng *rand.Rand
	now func() time.Time
}

// Snapshot is a consistent copy of a session's state.
type Snapshot struct {
	ID             string       `json:"id"`
	Graph          common.Graph `json:"graph"`
	SelectedNodeID string       `json:"selected_node_id,omitempty"`
	Generating     bool         `json:"generating"`
}

// DeleteResult reports the outcome of DeleteNode.
type DeleteResult struct {
	Removed          bool `json:"removed"`
	SelectionCleared bool `json:"selection_cleared"`
}

func newSession(id, owner string, now func() time.Time) *Session {
	return &Session{
		ID:       id,
		Owner:    owner,
		graph:    common.SeedGraph(),
		lastUsed: now(),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:      now,
	}
}

// lock acquires the session mutex and refreshes the idle timer.
func (s *Session) lock() {
	s.mu.Lock()
	s.lastUsed = s.now()
}

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:             s.ID,
		Graph:          s.graph.Clone(),
		SelectedNodeID: s.selected,
		Generating:     s.generating,
	}
}

// Generate asks gen for a new mind map and, on success, replaces the session
// graph with its laid out form. On failure the graph is left untouched.
//
// The upstream call is not cancelled when ctx is; it is bounded by timeout
// instead. If the session is closed before the call returns, the result is
// discarded and ErrClosed is returned.
func (s *Session) Generate(ctx context.Context, gen Generator, layout graph.Layout, prompt string, timeout time.Duration) (Snapshot, error) {
	if strings.TrimSpace(prompt) == "" {
		return Snapshot{}, graph.InvalidInput("prompt must not be empty")
	}

	s.lock()
	if s.closed {
		s.mu.Unlock()
		return Snapshot{}, ErrClosed
	}
	if s.generating {
		s.mu.Unlock()
		logger.Warn("[Session] Generation already in progress", "session", s.ID)
		return Snapshot{}, graph.AlreadyInProgress()
	}
	s.generating = true
	s.mu.Unlock()

	genCtx := context.WithoutCancel(ctx)
	if timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(genCtx, timeout)
		defer cancel()
	}

	payload, err := gen.Generate(genCtx, prompt)

	s.lock()
	defer s.mu.Unlock()
	s.generating = false

	if s.closed {
		logger.Debug("[Session] Dropping result for closed session", "session", s.ID)
		return Snapshot{}, ErrClosed
	}
	if err != nil {
		return Snapshot{}, err
	}

	graph.ReplaceGraph(&s.graph, graph.Build(payload, layout))
	if s.selected != "" && s.graph.NodeIndex(s.selected) < 0 {
		s.selected = ""
	}
	logger.Info("[Session] Mind map replaced", "session", s.ID, "nodes", len(s.graph.Nodes), "edges", len(s.graph.Edges))

	return s.snapshotLocked(), nil
}

// AddBlankNode appends a blank node at a random position.
func (s *Session) AddBlankNode() (common.Node, error) {
	s.lock()
	defer s.mu.Unlock()
	if s.closed {
		return common.Node{}, ErrClosed
	}
	n, err := graph.AddBlankNode(&s.graph, s.now(), s.rng)
	if err != nil {
		return common.Node{}, err
	}
	return n.Clone(), nil
}

// UpdateNode changes a node's label and, when description is not nil, its
// description. It returns ErrNodeNotFound for unknown ids.
func (s *Session) UpdateNode(id, label string, description *string) (common.Node, error) {
	s.lock()
	defer s.mu.Unlock()
	if s.closed {
		return common.Node{}, ErrClosed
	}
	if !graph.UpdateNode(&s.graph, id, label, description) {
		return common.Node{}, ErrNodeNotFound
	}
	return s.graph.Nodes[s.graph.NodeIndex(id)].Clone(), nil
}

// DeleteNode removes a node and its edges. Deleting the selected node clears
// the selection.
func (s *Session) DeleteNode(id string) (DeleteResult, error) {
	s.lock()
	defer s.mu.Unlock()
	if s.closed {
		return DeleteResult{}, ErrClosed
	}

	res := DeleteResult{Removed: graph.DeleteNode(&s.graph, id)}
	if res.Removed && s.selected == id {
		s.selected = ""
		res.SelectionCleared = true
	}
	return res, nil
}

// Connect appends an edge from source to target.
func (s *Session) Connect(source, target, relation string) (common.Edge, error) {
	s.lock()
	defer s.mu.Unlock()
	if s.closed {
		return common.Edge{}, ErrClosed
	}
	return graph.Connect(&s.graph, source, target, relation), nil
}

// Select marks the node with id as selected. An empty id clears the selection.
func (s *Session) Select(id string) error {
	s.lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if id != "" && s.graph.NodeIndex(id) < 0 {
		return ErrNodeNotFound
	}
	s.selected = id
	return nil
}

func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// idle reports whether the session has been unused since before cutoff and
// has no generation in flight.
func (s *Session) idle(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.generating && s.lastUsed.Before(cutoff)
}
