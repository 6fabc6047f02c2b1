// core/sgff/parse.go
package sgff

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/merv1n34k/sgffp/core/binio"
)

// DefaultMaxDepth bounds nested-container recursion.
const DefaultMaxDepth = 8

type options struct {
	maxDepth int
	workers  int
}

// Option configures Parse.
type Option func(*options)

// WithMaxDepth overrides the nested-container recursion budget.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithWorkers decodes recognized top-level blocks on up to n parallel
// workers. Results land in their original slots, so block order is
// unaffected. Default is sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Parse reads a whole SnapGene file from memory. Structural failures
// (bad header, truncated block) and decode failures of recognized
// block types abort the parse with a *ParseError; unrecognized types
// are retained as raw bytes.
func Parse(data []byte, opts ...Option) (*Container, error) {
	o := options{maxDepth: DefaultMaxDepth, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	r := binio.NewReader(data)
	h, err := parseHeader(r)
	if err != nil {
		return nil, &ParseError{Offset: 0, BlockType: -1, Err: err}
	}
	items, err := scan(r)
	if err != nil {
		return nil, err
	}
	blocks, err := decodeAll(items, decCtx{depth: o.maxDepth}, o.workers)
	if err != nil {
		return nil, err
	}
	return &Container{Header: &h, blocks: blocks}, nil
}

// parseNested runs the dispatcher over a header-less TLV stream, as
// found inside nested containers, history entries, and trace
// containers. depth is the remaining recursion budget.
func parseNested(data []byte, depth int) (*Container, error) {
	if depth <= 0 {
		return nil, ErrNestingTooDeep
	}
	items, err := scan(binio.NewReader(data))
	if err != nil {
		return nil, err
	}
	blocks, err := decodeAll(items, decCtx{depth: depth - 1}, 1)
	if err != nil {
		return nil, err
	}
	return &Container{blocks: blocks}, nil
}

type scanned struct {
	typ     byte
	off     int
	payload []byte
}

// scan slices the stream into (type, payload) records without decoding
// anything. Blocks are located strictly sequentially; a declared
// length running past the input is fatal. Offsets are taken from the
// reader, so for top-level files they are absolute and for nested
// streams they are stream-relative.
func scan(r *binio.Reader) ([]scanned, error) {
	var out []scanned
	for r.Remaining() > 0 {
		off := r.Offset()
		typ, _ := r.U8()
		length, err := r.U32()
		if err != nil {
			return nil, &ParseError{Offset: off, BlockType: int(typ), Err: fmt.Errorf("%w: header cut short", ErrTruncatedBlock)}
		}
		payload, err := r.Take(int(length))
		if err != nil {
			return nil, &ParseError{
				Offset:    off,
				BlockType: int(typ),
				Err:       fmt.Errorf("%w: %d declared, %d available", ErrTruncatedBlock, length, r.Remaining()),
			}
		}
		out = append(out, scanned{typ: typ, off: off, payload: payload})
	}
	return out, nil
}

// decodeAll runs registered codecs over the scanned records. Sibling
// blocks share no mutable state, so with workers > 1 they decode in
// parallel; each result is written back to its own slot.
func decodeAll(items []scanned, ctx decCtx, workers int) ([]*Block, error) {
	blocks := make([]*Block, len(items))
	for i, it := range items {
		blocks[i] = &Block{Type: it.typ, Raw: append([]byte(nil), it.payload...)}
	}
	decodeOne := func(i int) error {
		c, ok := registry[items[i].typ]
		if !ok {
			return nil
		}
		v, err := c.decode(ctx, items[i].payload)
		if err != nil {
			return &ParseError{Offset: items[i].off, BlockType: int(items[i].typ), Err: err}
		}
		blocks[i].Value = v
		return nil
	}

	if workers > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range items {
			i := i
			g.Go(func() error { return decodeOne(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return blocks, nil
	}
	for i := range items {
		if err := decodeOne(i); err != nil {
			return nil, err
		}
	}
	return blocks, nil
}
