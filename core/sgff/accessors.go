// core/sgff/accessors.go
package sgff

import (
	"github.com/merv1n34k/sgffp/core/feature"
	"github.com/merv1n34k/sgffp/core/histree"
	"github.com/merv1n34k/sgffp/core/ztr"
)

// Sequence returns the current sequence: the first plain sequence
// block, or the expansion of a compressed-DNA block when no plain one
// exists. Returns nil when the container has neither.
func (c *Container) Sequence() (*Sequence, error) {
	for _, t := range []byte{TypeSequenceDNA, TypeSequenceProtein, TypeSequenceRNA} {
		if b := c.First(t); b != nil {
			if s, ok := b.Value.(*Sequence); ok {
				return s, nil
			}
		}
	}
	if b := c.First(TypeCompressedDNA); b != nil {
		if cs, ok := b.Value.(*CompressedSequence); ok {
			bases, err := cs.Bases()
			if err != nil {
				return nil, err
			}
			return &Sequence{Kind: KindDNA, Bases: bases}, nil
		}
	}
	return nil, nil
}

// Features decodes the annotation list from the features block.
// Returns nil when the block is absent.
func (c *Container) Features() ([]feature.Feature, error) {
	b := c.First(TypeFeatures)
	if b == nil {
		return nil, nil
	}
	m, ok := b.Value.(*Markup)
	if !ok {
		return nil, nil
	}
	return feature.Parse(m.Text)
}

// HistoryTree builds the cloning-history tree from the compressed
// history-tree block. Returns nil when the block is absent.
func (c *Container) HistoryTree() (*histree.Tree, error) {
	b := c.First(TypeHistoryTree)
	if b == nil {
		return nil, nil
	}
	m, ok := b.Value.(*Markup)
	if !ok {
		return nil, nil
	}
	return BuildHistoryTree(m.Text)
}

// HistoryEntries returns all decoded history entries in file order.
func (c *Container) HistoryEntries() []*HistoryEntry {
	var out []*HistoryEntry
	for _, b := range c.ByType(TypeHistoryEntry) {
		if e, ok := b.Value.(*HistoryEntry); ok {
			out = append(out, e)
		}
	}
	return out
}

// Traces returns the embedded chromatograms in file order.
func (c *Container) Traces() []*ztr.Trace {
	var out []*ztr.Trace
	for _, b := range c.ByType(TypeTraceContainer) {
		if tc, ok := b.Value.(*TraceContainer); ok {
			if t := tc.Trace(); t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}
