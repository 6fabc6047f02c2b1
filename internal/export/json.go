// internal/export/json.go
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/merv1n34k/sgffp/core/sgff"
	"github.com/merv1n34k/sgffp/core/ztr"
)

// Document is the JSON form of a parsed file.
type Document struct {
	Cookie Cookie  `json:"cookie"`
	Blocks []Block `json:"blocks"`
}

type Cookie struct {
	SequenceKind  string `json:"sequence_kind"`
	ExportVersion uint16 `json:"export_version"`
	ImportVersion uint16 `json:"import_version"`
}

// Block reports one TLV record. Raw carries undecoded payloads as
// base64; Decoded=false flags the types the engine does not map.
type Block struct {
	Type    int    `json:"type"`
	Decoded bool   `json:"decoded"`
	Value   any    `json:"value,omitempty"`
	Raw     []byte `json:"raw,omitempty"`
}

type sequenceJSON struct {
	Kind           string `json:"kind"`
	Circular       bool   `json:"circular"`
	DoubleStranded bool   `json:"double_stranded"`
	Dam            bool   `json:"dam,omitempty"`
	Dcm            bool   `json:"dcm,omitempty"`
	EcoKI          bool   `json:"ecoki,omitempty"`
	Length         int    `json:"length"`
	Bases          string `json:"bases"`
}

type compressedJSON struct {
	Length int    `json:"length"`
	Bases  string `json:"bases"`
}

type markupJSON struct {
	Compressed bool   `json:"compressed,omitempty"`
	Text       string `json:"text"`
}

type historyJSON struct {
	NodeIndex   uint32  `json:"node_index"`
	SequenceTag int     `json:"sequence_tag"`
	Sequence    any     `json:"sequence,omitempty"`
	NodeInfo    []Block `json:"node_info,omitempty"`
}

type traceContainerJSON struct {
	Reverse bool      `json:"reverse"`
	Trace   traceJSON `json:"trace"`
	Blocks  []Block   `json:"blocks"`
}

type traceJSON struct {
	Version []byte      `json:"version"`
	Chunks  []chunkJSON `json:"chunks"`
}

type chunkJSON struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

// FromContainer flattens a parsed container into its JSON document.
func FromContainer(c *sgff.Container) Document {
	doc := Document{
		Cookie: Cookie{
			SequenceKind:  c.Header.Kind.String(),
			ExportVersion: c.Header.ExportVersion,
			ImportVersion: c.Header.ImportVersion,
		},
		Blocks: blocksJSON(c.Blocks()),
	}
	return doc
}

func blocksJSON(blocks []*sgff.Block) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		j := Block{Type: int(b.Type), Decoded: b.Decoded()}
		if b.Decoded() {
			j.Value = valueJSON(b.Value)
		} else {
			j.Raw = b.Raw
		}
		out = append(out, j)
	}
	return out
}

func valueJSON(v sgff.Value) any {
	switch x := v.(type) {
	case *sgff.Sequence:
		return sequenceJSON{
			Kind:           x.Kind.String(),
			Circular:       x.Circular,
			DoubleStranded: x.DoubleStranded,
			Dam:            x.Dam,
			Dcm:            x.Dcm,
			EcoKI:          x.EcoKI,
			Length:         x.Len(),
			Bases:          string(x.Bases),
		}
	case *sgff.CompressedSequence:
		bases, err := x.Bases()
		if err != nil {
			return compressedJSON{Length: x.BaseCount}
		}
		return compressedJSON{Length: x.BaseCount, Bases: string(bases)}
	case *sgff.Markup:
		return markupJSON{Compressed: x.Compressed, Text: string(x.Text)}
	case *sgff.HistoryEntry:
		h := historyJSON{NodeIndex: x.NodeIndex, SequenceTag: int(x.SeqTag)}
		if x.Seq != nil {
			h.Sequence = valueJSON(x.Seq)
		}
		if x.Info != nil {
			h.NodeInfo = blocksJSON(x.Info.Blocks())
		}
		return h
	case *sgff.Nested:
		return blocksJSON(x.Container.Blocks())
	case *sgff.TraceContainer:
		return traceContainerJSON{
			Reverse: x.Reverse,
			Trace:   traceToJSON(x.Trace()),
			Blocks:  blocksJSON(x.Inner.Blocks()),
		}
	case *sgff.TraceBlock:
		return traceToJSON(x.Trace)
	default:
		return fmt.Sprintf("%T", v)
	}
}

func traceToJSON(t *ztr.Trace) traceJSON {
	if t == nil {
		return traceJSON{}
	}
	j := traceJSON{Version: t.Version[:]}
	for _, c := range t.Chunks {
		j.Chunks = append(j.Chunks, chunkJSON{Type: c.Type, Value: chunkValueJSON(c.Value)})
	}
	return j
}

func chunkValueJSON(v ztr.Payload) any {
	switch x := v.(type) {
	case ztr.Bases:
		return string(x.Calls)
	case ztr.Positions:
		return x.Offsets
	case ztr.Confidence:
		return x.Scores
	case ztr.Samples4:
		return map[string][]uint16{"A": x.A, "C": x.C, "G": x.G, "T": x.T}
	case ztr.Samples1:
		return map[string]any{"channel": string([]byte{x.Channel}), "samples": x.Samples}
	case ztr.Text:
		m := make(map[string]string, len(x.Fields))
		for _, f := range x.Fields {
			m[f.Key] = f.Value
		}
		return m
	case ztr.Clip:
		return map[string]uint32{"left": x.Left, "right": x.Right}
	case ztr.Comment:
		return x.Text
	case ztr.Opaque:
		return len(x.Body)
	default:
		return nil
	}
}

// Write streams the document as indented JSON.
func Write(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
