package model

import (
	"errors"
	"fmt"
)

// Symbol is a single alphabet letter, always lowercase.
type Symbol byte

// Alphabet is the ordered set of symbols the chart has a column for.
type Alphabet []Symbol

// Latin returns the symbols 'a' through 'z'.
func Latin() Alphabet {
	result := make(Alphabet, 26)
	for i := range 26 {
		result[i] = Symbol('a' + i)
	}

	return result
}

func (a Alphabet) String() string {
	b := make([]byte, len(a))
	for i, s := range a {
		b[i] = byte(s)
	}

	return string(b)
}

// FrequencyTable maps a symbol to its count. Missing symbols count as zero.
type FrequencyTable map[Symbol]int

// Count returns the count for s, or 0 when s was never seen.
func (t FrequencyTable) Count(s Symbol) int {
	v, ok := t[s]
	if !ok {
		return 0
	}

	return v
}

// Add increments the count of s and returns the new value.
func (t FrequencyTable) Add(s Symbol) int {
	v := t.Count(s) + 1
	t[s] = v

	return v
}

// Total is the sum of all counts.
func (t FrequencyTable) Total() int {
	total := 0
	for _, v := range t {
		total += v
	}

	return total
}

// Peak is the largest count in the table, 0 for an empty table.
func (t FrequencyTable) Peak() int {
	peak := 0
	for _, v := range t {
		peak = max(peak, v)
	}

	return peak
}

const (
	DefaultRows       = 10
	DefaultTickStride = 3
	// MaxRows is the largest row count Validate accepts.
	MaxRows = 1 << 16
)

// LayoutParams controls the chart geometry.
type LayoutParams struct {
	// Rows is the amount of horizontal bands the range [0, peak] is split into.
	Rows int
	// TickStride labels every n-th row, counting from the top.
	TickStride int
}

// DefaultLayout is 10 rows with a tick every 3 rows.
func DefaultLayout() LayoutParams {
	return LayoutParams{Rows: DefaultRows, TickStride: DefaultTickStride}
}

// ErrInvalidLayout is wrapped by every LayoutError.
var ErrInvalidLayout = errors.New("invalid layout")

// LayoutError names the layout field that failed validation.
type LayoutError struct {
	Field string
	Value int
	// Max is the upper bound that Value exceeded, 0 when Value was not positive.
	Max int
}

func (e *LayoutError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("%s: %s must be at most %d, got %d", ErrInvalidLayout, e.Field, e.Max, e.Value)
	}

	return fmt.Sprintf("%s: %s must be a positive integer, got %d", ErrInvalidLayout, e.Field, e.Value)
}

func (e *LayoutError) Unwrap() error {
	return ErrInvalidLayout
}

// Validate rejects non-positive row counts and strides, and row counts above MaxRows.
func (p LayoutParams) Validate() error {
	if p.Rows <= 0 {
		return &LayoutError{Field: "rows", Value: p.Rows}
	}

	if p.Rows > MaxRows {
		return &LayoutError{Field: "rows", Value: p.Rows, Max: MaxRows}
	}

	if p.TickStride <= 0 {
		return &LayoutError{Field: "tick stride", Value: p.TickStride}
	}

	return nil
}

// Row is one band of the chart, covering [Floor, Ceil).
type Row struct {
	Index   int
	Floor   float64
	Ceil    float64
	HasTick bool
	Label   int
}
