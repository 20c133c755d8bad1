// Package aggregate converts raw chart categories into cumulative-total
// records, the intermediate representation every later layout stage
// consumes.
//
// Aggregation is a single left-to-right pass: each record carries its own
// segment total plus the running total before and after it. An optional
// synthetic grand-total record is appended at the end, spanning from zero
// to the final running total.
package aggregate

import "github.com/matzehuels/cascade/pkg/chart"

// Record is the cumulative-total row derived from one input category.
//
// Invariant: Cumulative == PrevCumulative + SegmentTotal, with the first
// record's PrevCumulative == 0. For the synthetic total record
// SegmentTotal == Cumulative == the final running total and
// PrevCumulative == 0.
type Record struct {
	Label          string          `json:"label"`
	Segments       []chart.Segment `json:"segments"`
	SegmentTotal   float64         `json:"segment_total"`
	Cumulative     float64         `json:"cumulative"`
	PrevCumulative float64         `json:"prev_cumulative"`
	SyntheticTotal bool            `json:"synthetic_total,omitempty"`

	// Ordinal is the record's zero-based position, stable across the
	// whole pass. Consumers that stagger entry animations order by it.
	Ordinal int `json:"ordinal"`
}

// Options controls total-bar synthesis during aggregation.
type Options struct {
	AppendTotal bool
	TotalLabel  string
	TotalColor  string
}

// Build derives cumulative-total records from categories. It is a pure
// function: the input slice is never modified and repeated calls with
// equal inputs produce equal outputs.
func Build(categories []chart.Category, opts Options) []Record {
	records := make([]Record, 0, len(categories)+1)

	var running float64
	for i, c := range categories {
		total := c.Total()
		records = append(records, Record{
			Label:          c.Label,
			Segments:       c.Stacks,
			SegmentTotal:   total,
			PrevCumulative: running,
			Cumulative:     running + total,
			Ordinal:        i,
		})
		running += total
	}

	if opts.AppendTotal {
		label := opts.TotalLabel
		if label == "" {
			label = chart.DefaultTotalLabel
		}
		color := opts.TotalColor
		if color == "" {
			color = chart.DefaultTotalColor
		}
		records = append(records, Record{
			Label:          label,
			Segments:       []chart.Segment{{Value: running, Color: color}},
			SegmentTotal:   running,
			PrevCumulative: 0,
			Cumulative:     running,
			SyntheticTotal: true,
			Ordinal:        len(categories),
		})
	}

	return records
}

// Extent returns the minimum and maximum over every record's Cumulative
// and PrevCumulative value. With no records it returns (0, 0).
func Extent(records []Record) (min, max float64) {
	if len(records) == 0 {
		return 0, 0
	}
	min, max = records[0].Cumulative, records[0].Cumulative
	for _, r := range records {
		for _, v := range [2]float64{r.Cumulative, r.PrevCumulative} {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// Labels returns the record labels in order, the x-axis domain.
func Labels(records []Record) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Label
	}
	return labels
}
