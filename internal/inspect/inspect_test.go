// internal/inspect/inspect_test.go
package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merv1n34k/sgffp/core/sgff"
)

func TestCensus(t *testing.T) {
	c := sgff.New(sgff.Header{Kind: sgff.KindDNA, ExportVersion: 17, ImportVersion: 17})
	c.AppendRaw(sgff.TypeNotes, []byte("<Notes/>"))
	c.AppendRaw(sgff.TypeNotes, []byte("<Notes2/>"))
	c.AppendRaw(9, []byte{1, 2, 3})
	c.AppendRaw(99, []byte{0})

	rows := Census(c)
	require.Len(t, rows, 3)
	require.Equal(t, []int{sgff.TypeNotes, 9, 99}, []int{rows[0].Type, rows[1].Type, rows[2].Type})

	require.Equal(t, 2, rows[0].Count)
	require.Equal(t, len("<Notes/>")+len("<Notes2/>"), rows[0].Bytes)
	require.False(t, rows[0].New)

	require.True(t, rows[1].New)
	require.False(t, rows[2].New)

	require.Equal(t, []int{9}, NewFound(rows))
}
