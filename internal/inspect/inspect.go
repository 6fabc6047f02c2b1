// internal/inspect/inspect.go
package inspect

import (
	"sort"

	"github.com/merv1n34k/sgffp/core/sgff"
)

// NewTypes lists block type ids that have been observed in the wild
// but are not yet decoded; `check` flags them so format gaps surface.
var NewTypes = []int{2, 3, 4, 9, 12, 15, 19, 20, 22, 23, 24, 25, 26, 27, 31}

var newSet = func() map[int]bool {
	m := make(map[int]bool, len(NewTypes))
	for _, t := range NewTypes {
		m[t] = true
	}
	return m
}()

// TypeCount is one row of the block census.
type TypeCount struct {
	Type    int
	Count   int
	Bytes   int
	Decoded bool
	New     bool
}

// Census tallies blocks per type id, ascending.
func Census(c *sgff.Container) []TypeCount {
	byType := map[int]*TypeCount{}
	for _, b := range c.Blocks() {
		t := int(b.Type)
		row, ok := byType[t]
		if !ok {
			row = &TypeCount{Type: t, Decoded: b.Decoded(), New: newSet[t]}
			byType[t] = row
		}
		row.Count++
		row.Bytes += len(b.Raw)
	}
	out := make([]TypeCount, 0, len(byType))
	for _, row := range byType {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// NewFound returns the flagged type ids present in the census.
func NewFound(rows []TypeCount) []int {
	var out []int
	for _, r := range rows {
		if r.New {
			out = append(out, r.Type)
		}
	}
	return out
}
