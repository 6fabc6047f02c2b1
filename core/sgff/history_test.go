// core/sgff/history_test.go
package sgff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/histree"
)

func TestHistoryEntryPlainRoundTrip(t *testing.T) {
	info := NewNested()
	info.Append(TypeNotes, &Markup{Text: []byte("<Notes><Description>digest product</Description></Notes>")})

	c := New(testHeader())
	c.Append(TypeHistoryEntry, &HistoryEntry{
		NodeIndex: 3,
		SeqTag:    seqTagDNA,
		Seq: &Sequence{
			Kind:           KindDNA,
			Circular:       true,
			DoubleStranded: true,
			Bases:          []byte("ATGCATGC"),
		},
		Info: info,
	})
	data, err := c.Serialize()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	entries := got.HistoryEntries()
	require.Len(t, entries, 1)

	e := entries[0]
	require.Equal(t, uint32(3), e.NodeIndex)
	require.Equal(t, byte(seqTagDNA), e.SeqTag)
	seq, ok := e.Seq.(*Sequence)
	require.True(t, ok)
	require.Equal(t, "ATGCATGC", string(seq.Bases))
	require.True(t, seq.Circular)
	require.NotNil(t, e.Info)
	notes := e.Info.First(TypeNotes)
	require.NotNil(t, notes)
	require.Contains(t, string(notes.Value.(*Markup).Text), "digest product")

	out, err := got.Serialize()
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestHistoryEntryCompressedSnapshot(t *testing.T) {
	cs, err := NewCompressedSequence([]byte("GGATCCGGATCC"))
	require.NoError(t, err)

	c := New(testHeader())
	c.Append(TypeHistoryEntry, &HistoryEntry{NodeIndex: 0, SeqTag: seqTagCompressed, Seq: cs})
	data, err := c.Serialize()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	e := got.HistoryEntries()[0]
	dec, ok := e.Seq.(*CompressedSequence)
	require.True(t, ok)
	bases, err := dec.Bases()
	require.NoError(t, err)
	require.Equal(t, "GGATCCGGATCC", string(bases))
	require.Nil(t, e.Info)
}

func TestHistoryEntryModifierOnly(t *testing.T) {
	c := New(testHeader())
	c.Append(TypeHistoryEntry, &HistoryEntry{NodeIndex: 7, SeqTag: seqTagModifierOnly})
	data, err := c.Serialize()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	e := got.HistoryEntries()[0]
	require.Equal(t, uint32(7), e.NodeIndex)
	require.Nil(t, e.Seq)
}

func TestHistoryEntryProteinKind(t *testing.T) {
	c := New(Header{Kind: KindProtein, ExportVersion: 17, ImportVersion: 17})
	c.Append(TypeHistoryEntry, &HistoryEntry{
		SeqTag: seqTagProtein,
		Seq:    &Sequence{Kind: KindProtein, Bases: []byte("MKV")},
	})
	data, err := c.Serialize()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	seq := got.HistoryEntries()[0].Seq.(*Sequence)
	require.Equal(t, KindProtein, seq.Kind)
	require.Equal(t, "MKV", string(seq.Bases))
}

func TestHistoryEntryUnknownTag(t *testing.T) {
	var w binio.Writer
	w.U32(1)
	w.U8(77)
	_, err := Parse(rawFile(rawBlock(TypeHistoryEntry, w.Out())))
	require.ErrorIs(t, err, ErrUnknownSequenceType)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, TypeHistoryEntry, pe.BlockType)
}

func TestHistoryEntryEncodeRequiresSnapshot(t *testing.T) {
	c := New(testHeader())
	c.Append(TypeHistoryEntry, &HistoryEntry{SeqTag: seqTagDNA})
	_, err := c.Serialize()

	var se *SerializeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, TypeHistoryEntry, se.BlockType)
}

func TestHistoryTreeFromCompressedBlock(t *testing.T) {
	markup := `
<Node ID="0" Name="pUC19-insert" Operation="ligation" SeqLen="2700">
  <Node ID="1" Name="insert" Operation="pcr" SeqLen="14"/>
  <Node ID="2" Name="pUC19" Operation="restrictionDigest" SeqLen="2686"/>
</Node>`

	c := New(testHeader())
	c.Append(TypeHistoryTree, &Markup{Text: []byte(markup), Compressed: true})
	data, err := c.Serialize()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	hb := got.First(TypeHistoryTree)
	require.NotNil(t, hb)
	require.True(t, hb.Value.(*Markup).Compressed)

	tree, err := got.HistoryTree()
	require.NoError(t, err)
	require.NotNil(t, tree)
	require.Equal(t, 3, tree.Len())
	require.Equal(t, "pUC19-insert", tree.Root().Name)
	require.Equal(t, histree.OpLigation, tree.Root().Op)
	require.Len(t, tree.Root().Children, 2)
}
