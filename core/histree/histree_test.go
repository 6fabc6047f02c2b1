// core/histree/histree_test.go
package histree

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

func mustRoot(t *testing.T, markup string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(markup))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func TestBuildAndWalkPreOrder(t *testing.T) {
	root := mustRoot(t, `
<Node ID="0" Name="current" Operation="ligation" SeqLen="4200" Topology="circular" Resurrectable="1">
  <Node ID="1" Name="insert" Operation="pcr" SeqLen="700"/>
  <Node ID="2" Name="backbone" Operation="restrictionDigest" SeqLen="3500"/>
</Node>`)

	tree, err := Build(root)
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())

	walk := tree.Walk()
	require.Len(t, walk, 3)
	require.Equal(t, []int{0, 1, 2}, []int{walk[0].ID, walk[1].ID, walk[2].ID})

	r := tree.Root()
	require.Equal(t, "current", r.Name)
	require.Equal(t, OpLigation, r.Op)
	require.True(t, r.Op.Known())
	require.Equal(t, 4200, r.SeqLen)
	require.Equal(t, "circular", r.Topology)
	require.True(t, r.Resurrectable)
	require.Len(t, r.Children, 2)

	n, ok := tree.ByID(2)
	require.True(t, ok)
	require.Equal(t, "backbone", n.Name)
	require.Equal(t, OpRestriction, n.Op)
}

func TestUnknownOperationPreserved(t *testing.T) {
	root := mustRoot(t, `<Node ID="0" Operation="crisprKnockIn"/>`)
	tree, err := Build(root)
	require.NoError(t, err)
	require.Equal(t, Operation("crisprKnockIn"), tree.Root().Op)
	require.False(t, tree.Root().Op.Known())
}

func TestMissingOperationIsInvalid(t *testing.T) {
	root := mustRoot(t, `<Node ID="0"/>`)
	tree, err := Build(root)
	require.NoError(t, err)
	require.Equal(t, OpInvalid, tree.Root().Op)
	require.True(t, tree.Root().Op.Known())
}

func TestSubRecordsKeptVerbatim(t *testing.T) {
	root := mustRoot(t, `
<Node ID="0">
  <InputSummary manipulation="PCR"/>
  <Oligo sequence="ACGTACGT"/>
  <Parameter name="cycles" value="30"/>
  <Node ID="1"/>
</Node>`)
	tree, err := Build(root)
	require.NoError(t, err)

	r := tree.Root()
	require.Len(t, r.InputSummaries, 1)
	require.Contains(t, r.InputSummaries[0], `manipulation="PCR"`)
	require.Len(t, r.Oligos, 1)
	require.Contains(t, r.Oligos[0], "ACGTACGT")
	require.Len(t, r.Parameters, 1)
	require.Len(t, r.Children, 1)
}

func TestCyclicIdentifierRejected(t *testing.T) {
	root := mustRoot(t, `
<Node ID="0">
  <Node ID="1">
    <Node ID="0"/>
  </Node>
</Node>`)
	_, err := Build(root)
	require.ErrorIs(t, err, ErrCyclicHistory)
}

func TestDuplicateSiblingIDsAllowed(t *testing.T) {
	root := mustRoot(t, `
<Node ID="0">
  <Node ID="1"/>
  <Node ID="1"/>
</Node>`)
	tree, err := Build(root)
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())
}
