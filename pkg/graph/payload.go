package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aayushsoam1/cogni-mind/pkg/ai"
	"github.com/aayushsoam1/cogni-mind/pkg/common"
)

// RawPayload is the graph as returned by the language model, before layout.
// Nothing in it is trusted: ParsePayload decodes it field by field and
// Validate repairs what would break the node/edge invariants.
type RawPayload struct {
	Topic string    `json:"topic,omitempty" jsonschema_description:"Short title of the mind map"`
	Nodes []RawNode `json:"nodes" jsonschema_description:"All nodes of the mind map, parents first"`
	Edges []RawEdge `json:"edges,omitempty" jsonschema_description:"Directed, labeled connections between nodes"`

	// Warnings lists everything that was dropped or repaired while decoding.
	Warnings []string `json:"-"`
}

// RawNode is a node as produced by the model. Every field is optional.
type RawNode struct {
	ID          string            `json:"id" jsonschema_description:"Unique node id, e.g. study_parent or s1"`
	Label       string            `json:"label" jsonschema_description:"Short title"`
	Type        string            `json:"type" jsonschema_description:"One of topic, study, job, note, video, skill, internship, course, resource, project, sub, main"`
	Category    string            `json:"category,omitempty" jsonschema_description:"One of study, job, note, video"`
	Description string            `json:"description,omitempty" jsonschema_description:"1-2 line description"`
	Tags        []string          `json:"tags,omitempty"`
	Resources   []common.Resource `json:"resources,omitempty"`
	Children    []string          `json:"children,omitempty" jsonschema_description:"Ids of the nodes directly below this node"`
	Lang        string            `json:"lang,omitempty" jsonschema_description:"Language hint, hi or en"`
	Visual      map[string]any    `json:"visual,omitempty" jsonschema_description:"Optional color and shape hints"`
}

// RawEdge is an explicit edge as produced by the model.
type RawEdge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Relation string `json:"relation,omitempty" jsonschema_description:"One of contains, leads_to, related, prerequisite, part_of"`
}

const (
	defaultLabel = "Node"
	defaultLang  = "en"
)

// NormalizeNode applies the node defaults to raw and returns an unpositioned
// node. Applying it to an already normalized node changes nothing.
func NormalizeNode(raw RawNode) common.Node {
	n := common.Node{
		ID:          raw.ID,
		Label:       raw.Label,
		Description: raw.Description,
		Kind:        common.NodeKind(raw.Type),
		Category:    common.Category(raw.Category),
		Tags:        append([]string{}, raw.Tags...),
		Resources:   append([]common.Resource{}, raw.Resources...),
		Lang:        raw.Lang,
	}
	if strings.TrimSpace(n.Label) == "" {
		n.Label = defaultLabel
	}
	if n.Kind == "" {
		n.Kind = common.KindTopic
	}
	if n.Lang == "" {
		n.Lang = defaultLang
	}
	return n
}

// ParsePayload turns completion text into a RawPayload.
//
// The text may be wrapped in a markdown code fence. When repair is set,
// malformed JSON is passed through a JSON repair step before it is rejected.
// It fails with KindMalformedResponse when no JSON can be read, with
// KindUpstreamError when the JSON is an explicit {"error": ...} payload and
// with KindInvalidSchema when there is no "nodes" array.
func ParsePayload(content string, repair bool) (*RawPayload, error) {
	text := ai.StripCodeFence(content)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		valid := json.Valid([]byte(text))
		if !repair {
			if valid {
				return nil, newError(KindInvalidSchema, "response is not a JSON object", err)
			}
			return nil, newError(KindMalformedResponse, "failed to parse AI response as JSON", err)
		}
		top = nil
		if ferr := ai.UnmarshalFlexible(text, &top); ferr != nil {
			if valid {
				return nil, newError(KindInvalidSchema, "response is not a JSON object", err)
			}
			return nil, newError(KindMalformedResponse, "failed to parse AI response as JSON", ferr)
		}
	}

	nodesRaw, ok := top["nodes"]
	if !ok || isNull(nodesRaw) {
		if msg, isErr := errorPayload(top); isErr {
			return nil, newError(KindUpstreamError, "completion contained an error payload", fmt.Errorf("%s", msg))
		}
		return nil, newError(KindInvalidSchema, "response has no nodes array", nil)
	}

	var nodeItems []json.RawMessage
	if err := json.Unmarshal(nodesRaw, &nodeItems); err != nil {
		return nil, newError(KindInvalidSchema, "nodes is not an array", err)
	}

	p := &RawPayload{
		Nodes: make([]RawNode, 0, len(nodeItems)),
	}

	if v, ok := top["topic"]; ok {
		if err := decodeField(v, &p.Topic); err != nil {
			p.warnf("topic ignored: %v", err)
		}
	}

	for i, item := range nodeItems {
		n, warnings, err := decodeRawNode(item)
		if err != nil {
			p.warnf("node[%d] dropped: %v", i, err)
			continue
		}
		for _, w := range warnings {
			p.warnf("node[%d]: %s", i, w)
		}
		p.Nodes = append(p.Nodes, n)
	}

	if v, ok := top["edges"]; ok && !isNull(v) {
		var edgeItems []json.RawMessage
		if err := json.Unmarshal(v, &edgeItems); err != nil {
			p.warnf("edges ignored: %v", err)
		}
		for i, item := range edgeItems {
			e, err := decodeRawEdge(item)
			if err != nil {
				p.warnf("edge[%d] dropped: %v", i, err)
				continue
			}
			p.Edges = append(p.Edges, e)
		}
	}

	p.Warnings = append(p.Warnings, Validate(p)...)

	return p, nil
}

// Validate repairs p in place so that it satisfies the graph invariants and
// returns a description of every repair:
//   - nodes without id get "node-<index>"
//   - later nodes with an already used id are dropped
//   - resources without id, or with an id already used in the node, get "<node id>-r<index>"
//
// Resource scores outside [0,1] are reported but left as they are.
func Validate(p *RawPayload) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	seen := make(map[string]struct{}, len(p.Nodes))
	kept := p.Nodes[:0]
	for i, n := range p.Nodes {
		if strings.TrimSpace(n.ID) == "" {
			n.ID = "node-" + strconv.Itoa(i)
			warn("node[%d] has no id, using %q", i, n.ID)
		}
		if _, dup := seen[n.ID]; dup {
			warn("node[%d] duplicates id %q and was dropped", i, n.ID)
			continue
		}
		seen[n.ID] = struct{}{}

		resIDs := make(map[string]struct{}, len(n.Resources))
		for j := range n.Resources {
			r := &n.Resources[j]
			if _, dup := resIDs[r.ID]; r.ID == "" || dup {
				fixed := n.ID + "-r" + strconv.Itoa(j)
				warn("node %q resource[%d] id %q replaced by %q", n.ID, j, r.ID, fixed)
				r.ID = fixed
			}
			resIDs[r.ID] = struct{}{}
			if s := r.Meta.Score; s < 0 || s > 1 || s != s {
				warn("node %q resource %q score %v outside [0,1]", n.ID, r.ID, s)
			}
		}
		kept = append(kept, n)
	}
	p.Nodes = kept

	return warnings
}

func (p *RawPayload) warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

func decodeRawNode(data json.RawMessage) (RawNode, []string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return RawNode{}, nil, fmt.Errorf("not an object: %w", err)
	}

	var (
		n        RawNode
		warnings []string
	)
	if v, ok := fields["id"]; ok && !isNull(v) {
		id, err := decodeID(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("field id ignored: %v", err))
		}
		n.ID = id
	}
	optionalField(fields, "label", &n.Label, &warnings)
	optionalField(fields, "type", &n.Type, &warnings)
	optionalField(fields, "category", &n.Category, &warnings)
	optionalField(fields, "description", &n.Description, &warnings)
	optionalField(fields, "tags", &n.Tags, &warnings)
	optionalField(fields, "lang", &n.Lang, &warnings)
	optionalField(fields, "visual", &n.Visual, &warnings)

	if v, ok := fields["resources"]; ok && !isNull(v) {
		var items []json.RawMessage
		if err := json.Unmarshal(v, &items); err != nil {
			warnings = append(warnings, fmt.Sprintf("field resources ignored: %v", err))
		}
		for i, item := range items {
			var r common.Resource
			if err := decodeField(item, &r); err != nil {
				warnings = append(warnings, fmt.Sprintf("resource[%d] dropped: %v", i, err))
				continue
			}
			n.Resources = append(n.Resources, r)
		}
	}

	if v, ok := fields["children"]; ok && !isNull(v) {
		var items []json.RawMessage
		if err := json.Unmarshal(v, &items); err != nil {
			warnings = append(warnings, fmt.Sprintf("field children ignored: %v", err))
		}
		for i, item := range items {
			id, err := decodeID(item)
			if err != nil || id == "" {
				warnings = append(warnings, fmt.Sprintf("child[%d] dropped", i))
				continue
			}
			n.Children = append(n.Children, id)
		}
	}

	return n, warnings, nil
}

func decodeRawEdge(data json.RawMessage) (RawEdge, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return RawEdge{}, fmt.Errorf("not an object: %w", err)
	}

	var e RawEdge
	var err error
	if e.From, err = decodeID(fields["from"]); err != nil || e.From == "" {
		return RawEdge{}, fmt.Errorf("missing from")
	}
	if e.To, err = decodeID(fields["to"]); err != nil || e.To == "" {
		return RawEdge{}, fmt.Errorf("missing to")
	}
	if v, ok := fields["relation"]; ok && !isNull(v) {
		// An unreadable relation leaves the edge unlabeled.
		_ = decodeField(v, &e.Relation)
	}
	return e, nil
}

// optionalField decodes fields[key] into dst when present and not null. A
// value of the wrong type is reported in warnings and leaves dst untouched.
func optionalField[T any](fields map[string]json.RawMessage, key string, dst *T, warnings *[]string) {
	v, ok := fields[key]
	if !ok || isNull(v) {
		return
	}
	if err := decodeField(v, dst); err != nil {
		*warnings = append(*warnings, fmt.Sprintf("field %s ignored: %v", key, err))
	}
}

// decodeField unmarshals data into dst, leaving dst untouched on failure.
func decodeField[T any](data json.RawMessage, dst *T) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}

// decodeID accepts ids written as strings or as numbers.
func decodeID(data json.RawMessage) (string, error) {
	if len(data) == 0 || isNull(data) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}
	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil {
		return "", fmt.Errorf("id must be a string or number")
	}
	return num.String(), nil
}

func errorPayload(top map[string]json.RawMessage) (string, bool) {
	v, ok := top["error"]
	if !ok || isNull(v) {
		return "", false
	}
	var msg string
	if err := json.Unmarshal(v, &msg); err == nil {
		return msg, true
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(v, &obj); err == nil {
		return obj.Message, true
	}
	return string(v), true
}

func isNull(data json.RawMessage) bool {
	return string(bytes.TrimSpace(data)) == "null"
}
