// core/histree/histree.go
// History tree built from the decompressed cloning-history markup.
package histree

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// ErrCyclicHistory is returned when an element declares an identifier
// already present on its ancestor path. The markup itself is a tree,
// so this can only happen in malformed or adversarial input.
var ErrCyclicHistory = errors.New("histree: identifier cycle")

// Operation is the cloning operation recorded on a node. Values the
// enumerated set does not cover are preserved verbatim; Known reports
// membership.
type Operation string

const (
	OpInvalid       Operation = "invalid"
	OpPCR           Operation = "pcr"
	OpRestriction   Operation = "restrictionDigest"
	OpLigation      Operation = "ligation"
	OpMutagenesis   Operation = "mutagenesis"
	OpGibson        Operation = "gibsonAssembly"
	OpInFusion      Operation = "inFusionCloning"
	OpGateway       Operation = "gatewayCloning"
	OpTACloning     Operation = "taCloning"
	OpTOPOCloning   Operation = "topoCloning"
	OpAnnealedOligo Operation = "annealedOligos"
	OpLinearized    Operation = "linearized"
	OpSynthesized   Operation = "synthesized"
	OpImported      Operation = "imported"
)

var knownOps = map[Operation]bool{
	OpInvalid: true, OpPCR: true, OpRestriction: true, OpLigation: true,
	OpMutagenesis: true, OpGibson: true, OpInFusion: true, OpGateway: true,
	OpTACloning: true, OpTOPOCloning: true, OpAnnealedOligo: true,
	OpLinearized: true, OpSynthesized: true, OpImported: true,
}

func (o Operation) Known() bool { return knownOps[o] }

// Node is one recorded sequence state. Children are arena indexes into
// the owning Tree; there are no parent back-pointers.
type Node struct {
	ID            int
	Name          string
	Kind          string
	SeqLen        int
	Topology      string // "linear" or "circular"
	Strandedness  string // "single" or "double"
	Op            Operation
	UpstreamMod   string
	DownstreamMod string
	Resurrectable bool

	// Sub-records carried verbatim as serialized markup.
	InputSummaries []string
	Oligos         []string
	Parameters     []string

	Children []int
}

// Tree owns the node arena. The root element is the current sequence
// state; descendants are progressively earlier states.
type Tree struct {
	nodes []Node
	byID  map[int]int
	root  int
}

// Root returns the current-state node.
func (t *Tree) Root() *Node { return &t.nodes[t.root] }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node at an arena index.
func (t *Tree) Node(i int) *Node { return &t.nodes[i] }

// ByID looks a node up by its declared identifier.
func (t *Tree) ByID(id int) (*Node, bool) {
	i, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	return &t.nodes[i], true
}

// Walk returns every node exactly once in pre-order: root first, then
// children left to right.
func (t *Tree) Walk() []*Node {
	out := make([]*Node, 0, len(t.nodes))
	var rec func(i int)
	rec = func(i int) {
		out = append(out, &t.nodes[i])
		for _, c := range t.nodes[i].Children {
			rec(c)
		}
	}
	rec(t.root)
	return out
}

// Build converts the markup element tree rooted at el into a Tree.
func Build(el *etree.Element) (*Tree, error) {
	t := &Tree{byID: map[int]int{}}
	root, err := t.build(el, map[int]bool{})
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *Tree) build(el *etree.Element, onPath map[int]bool) (int, error) {
	n := Node{
		ID:            attrInt(el, "ID", -1),
		Name:          el.SelectAttrValue("Name", ""),
		Kind:          el.SelectAttrValue("Type", ""),
		SeqLen:        attrInt(el, "SeqLen", 0),
		Topology:      el.SelectAttrValue("Topology", "linear"),
		Strandedness:  el.SelectAttrValue("Strandedness", "double"),
		Op:            Operation(el.SelectAttrValue("Operation", string(OpInvalid))),
		UpstreamMod:   el.SelectAttrValue("UpstreamModification", ""),
		DownstreamMod: el.SelectAttrValue("DownstreamModification", ""),
		Resurrectable: el.SelectAttrValue("Resurrectable", "0") == "1",
	}
	if onPath[n.ID] {
		return 0, fmt.Errorf("%w: node %d is its own ancestor", ErrCyclicHistory, n.ID)
	}
	idx := len(t.nodes)
	t.nodes = append(t.nodes, n)
	if _, dup := t.byID[n.ID]; !dup {
		t.byID[n.ID] = idx
	}

	onPath[n.ID] = true
	defer delete(onPath, n.ID)

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "InputSummary":
			t.nodes[idx].InputSummaries = append(t.nodes[idx].InputSummaries, elementString(child))
		case "Oligo":
			t.nodes[idx].Oligos = append(t.nodes[idx].Oligos, elementString(child))
		case "Parameter":
			t.nodes[idx].Parameters = append(t.nodes[idx].Parameters, elementString(child))
		case "Node":
			ci, err := t.build(child, onPath)
			if err != nil {
				return 0, err
			}
			t.nodes[idx].Children = append(t.nodes[idx].Children, ci)
		}
	}
	return idx, nil
}

func attrInt(el *etree.Element, name string, def int) int {
	s := el.SelectAttrValue(name, "")
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func elementString(el *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}
