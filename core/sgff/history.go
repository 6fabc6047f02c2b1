// core/sgff/history.go
package sgff

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/histree"
)

// Sequence-type tags inside history entry records. The plain tags
// reuse the top-level block ids for the matching kind; tag 29 stores a
// modifier-only state with no sequence snapshot.
const (
	seqTagDNA          = TypeSequenceDNA
	seqTagCompressed   = TypeCompressedDNA
	seqTagProtein      = TypeSequenceProtein
	seqTagRNA          = TypeSequenceRNA
	seqTagModifierOnly = 29
)

// HistoryEntry binds a history-node identifier to its stored sequence
// snapshot. The node itself lives in the history tree; the entry only
// references it by index. Seq is a *Sequence, a *CompressedSequence,
// or nil for modifier-only entries. Info holds the nested node_info
// sub-blocks.
type HistoryEntry struct {
	NodeIndex uint32
	SeqTag    byte
	Seq       Value
	Info      *Container
}

func (*HistoryEntry) blockValue() {}

func decodeHistoryEntry(ctx decCtx, payload []byte) (*HistoryEntry, error) {
	r := binio.NewReader(payload)
	idx, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("history entry: node index: %w", err)
	}
	tag, err := r.U8()
	if err != nil {
		return nil, fmt.Errorf("history entry: sequence tag: %w", err)
	}
	e := &HistoryEntry{NodeIndex: idx, SeqTag: tag}

	switch tag {
	case seqTagModifierOnly:
		// No sequence snapshot.
	case seqTagCompressed:
		cs, err := decodeCompressedSequence(r)
		if err != nil {
			return nil, err
		}
		e.Seq = cs
	case seqTagDNA, seqTagRNA, seqTagProtein:
		seqLen, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("%w: sequence length", ErrTruncatedSequence)
		}
		body, err := r.Take(int(seqLen))
		if err != nil {
			return nil, fmt.Errorf("%w: %d declared, %d available", ErrTruncatedSequence, seqLen, r.Remaining())
		}
		s, err := decodePlainSequence(kindOfTag(tag), body)
		if err != nil {
			return nil, err
		}
		e.Seq = s
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSequenceType, tag)
	}

	// node_info is plain nested TLV; any compression sits inside a
	// type-30 entry within it.
	if r.Remaining() > 0 {
		info, err := parseNested(r.Rest(), ctx.depth)
		if err != nil {
			return nil, err
		}
		e.Info = info
	}
	return e, nil
}

func encodeHistoryEntry(e *HistoryEntry) ([]byte, error) {
	var w binio.Writer
	w.U32(e.NodeIndex)
	w.U8(e.SeqTag)

	switch v := e.Seq.(type) {
	case nil:
		if e.SeqTag != seqTagModifierOnly {
			return nil, fmt.Errorf("tag %d requires a sequence snapshot", e.SeqTag)
		}
	case *CompressedSequence:
		body, err := encodeCompressedSequence(v)
		if err != nil {
			return nil, err
		}
		w.Bytes(body)
	case *Sequence:
		body := encodePlainSequence(v)
		w.U32(uint32(len(body)))
		w.Bytes(body)
	default:
		return nil, fmt.Errorf("unhandled sequence value %T", e.Seq)
	}

	if e.Info != nil {
		if err := serializeBlocks(&w, e.Info.Blocks()); err != nil {
			return nil, err
		}
	}
	return w.Out(), nil
}

func kindOfTag(tag byte) Kind {
	switch tag {
	case seqTagRNA:
		return KindRNA
	case seqTagProtein:
		return KindProtein
	default:
		return KindDNA
	}
}

// BuildHistoryTree converts decompressed history-tree markup into a
// node tree, using the markup collaborator for the attribute-tree
// conversion.
func BuildHistoryTree(markup []byte) (*histree.Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(markup); err != nil {
		return nil, fmt.Errorf("history tree: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("history tree: empty markup")
	}
	return histree.Build(root)
}
