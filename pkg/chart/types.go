package chart

import (
	"encoding/json"
	"fmt"

	"github.com/chartwright/chartwright/pkg/errors"
)

// Kind identifies a chart type. The set is closed: rendering dispatches over
// an exhaustive switch, so an unrecognized kind is a validation error rather
// than a silent no-op.
type Kind string

// Supported chart kinds.
const (
	KindBar           Kind = "bar"
	KindHorizontalBar Kind = "horizontalBar"
	KindLine          Kind = "line"
	KindArea          Kind = "area"
	KindPie           Kind = "pie"
	KindDonut         Kind = "donut"
	KindRadar         Kind = "radar"
	KindGauge         Kind = "gauge"
	KindHeatmap       Kind = "heatmap"
	KindWaterfall     Kind = "waterfall"
)

// Declared but unsupported kinds. They parse, but rendering returns
// UNSUPPORTED_KIND.
const (
	KindScatter      Kind = "scatter"
	KindBubble       Kind = "bubble"
	KindPolarTreemap Kind = "polarTreemap"
)

// Kinds lists every kind that renders, in display order.
var Kinds = []Kind{
	KindBar, KindHorizontalBar, KindLine, KindArea, KindPie, KindDonut,
	KindRadar, KindGauge, KindHeatmap, KindWaterfall,
}

// ParseKind validates a kind tag. Unknown tags return INVALID_KIND.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindBar, KindHorizontalBar, KindLine, KindArea, KindPie, KindDonut,
		KindRadar, KindGauge, KindHeatmap, KindWaterfall,
		KindScatter, KindBubble, KindPolarTreemap:
		return k, nil
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "unknown chart type: %s", s)
}

// Supported reports whether the kind has a drawing routine.
func (k Kind) Supported() bool {
	switch k {
	case KindScatter, KindBubble, KindPolarTreemap:
		return false
	}
	return true
}

// Entry is one data point in a series. Label and the secondary fields are
// optional; Value carries the numeric payload for every chart type except
// heatmap, which reads a row of cell values from Values instead.
type Entry struct {
	Label  string    `json:"label,omitempty" toml:"label"`
	Value  float64   `json:"value" toml:"value"`
	Values []float64 `json:"values,omitempty" toml:"values"`
	Max    float64   `json:"max,omitempty" toml:"max"`
}

// UnmarshalJSON accepts either a bare number or an entry record. Series from
// external sources routinely mix the two forms ([12, {"label":"Feb",
// "value":9}]), so both decode into the same struct.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*e = Entry{Value: num}
		return nil
	}

	type record Entry // avoid recursing into this method
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("series entry must be a number or an object: %w", err)
	}
	*e = Entry(rec)
	return nil
}

// Series is an ordered list of entries.
type Series []Entry

// Labels returns the per-entry labels, substituting a 1-based index string
// for entries without one.
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, e := range s {
		if e.Label != "" {
			labels[i] = e.Label
		} else {
			labels[i] = fmt.Sprintf("%d", i+1)
		}
	}
	return labels
}

// Values returns the primary numeric value of each entry.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s))
	for i, e := range s {
		vals[i] = e.Value
	}
	return vals
}

// Total sums the primary values.
func (s Series) Total() float64 {
	var total float64
	for _, e := range s {
		total += e.Value
	}
	return total
}

// MaxValue returns the largest primary value, or 0 for an empty series.
func (s Series) MaxValue() float64 {
	var max float64
	for _, e := range s {
		if e.Value > max {
			max = e.Value
		}
	}
	return max
}

// MaxCell returns the largest value across all heatmap rows, or 0 when the
// series holds no cells.
func (s Series) MaxCell() float64 {
	var max float64
	for _, e := range s {
		for _, v := range e.Values {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Cumulative returns the running totals of the signed values, one per entry.
// Waterfall charts position each bar between consecutive running totals.
func (s Series) Cumulative() []float64 {
	sums := make([]float64, len(s))
	var running float64
	for i, e := range s {
		running += e.Value
		sums[i] = running
	}
	return sums
}
