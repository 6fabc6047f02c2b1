// core/feature/feature.go
// Annotation features decoded from the Features markup block.
package feature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Strand encodes feature directionality.
type Strand int

const (
	StrandNone Strand = iota
	StrandForward
	StrandReverse
	StrandBoth
)

func (s Strand) String() string {
	switch s {
	case StrandForward:
		return "+"
	case StrandReverse:
		return "-"
	case StrandBoth:
		return "="
	default:
		return "."
	}
}

// Segment is one location range of a feature. Start is 0-based, End is
// 1-based inclusive, so End-Start is the segment length.
type Segment struct {
	Start int
	End   int
	Color string
}

// Feature is one annotation.
type Feature struct {
	Name       string
	Type       string
	Strand     Strand
	Color      string
	Segments   []Segment
	Qualifiers map[string]string
}

// Start returns the leftmost 0-based position across segments.
func (f *Feature) Start() int {
	if len(f.Segments) == 0 {
		return 0
	}
	min := f.Segments[0].Start
	for _, s := range f.Segments[1:] {
		if s.Start < min {
			min = s.Start
		}
	}
	return min
}

// End returns the rightmost 1-based position across segments.
func (f *Feature) End() int {
	max := 0
	for _, s := range f.Segments {
		if s.End > max {
			max = s.End
		}
	}
	return max
}

// Parse decodes the Features markup into annotation records.
func Parse(markup []byte) ([]Feature, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(markup); err != nil {
		return nil, fmt.Errorf("feature: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("feature: empty markup")
	}
	var out []Feature
	for _, el := range root.SelectElements("Feature") {
		f, err := parseFeature(el)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func parseFeature(el *etree.Element) (Feature, error) {
	f := Feature{
		Name:       el.SelectAttrValue("name", ""),
		Type:       el.SelectAttrValue("type", ""),
		Qualifiers: map[string]string{},
	}
	switch el.SelectAttrValue("directionality", "0") {
	case "1":
		f.Strand = StrandForward
	case "2":
		f.Strand = StrandReverse
	case "3":
		f.Strand = StrandBoth
	}
	for _, seg := range el.SelectElements("Segment") {
		s, err := parseRange(seg.SelectAttrValue("range", ""))
		if err != nil {
			return f, fmt.Errorf("feature %q: %w", f.Name, err)
		}
		s.Color = seg.SelectAttrValue("color", "")
		f.Segments = append(f.Segments, s)
		if f.Color == "" {
			f.Color = s.Color
		}
	}
	for _, q := range el.SelectElements("Q") {
		name := q.SelectAttrValue("name", "")
		if v := q.SelectElement("V"); v != nil {
			f.Qualifiers[name] = v.SelectAttrValue("text", v.SelectAttrValue("int", ""))
		}
	}
	return f, nil
}

// parseRange converts a 1-based inclusive "lo-hi" markup range to the
// 0-based start / 1-based end convention.
func parseRange(s string) (Segment, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		hi = lo
	}
	a, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Segment{}, fmt.Errorf("bad range %q", s)
	}
	b, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Segment{}, fmt.Errorf("bad range %q", s)
	}
	if b < a {
		a, b = b, a
	}
	return Segment{Start: a - 1, End: b}, nil
}
