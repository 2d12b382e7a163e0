package chart

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/dasdy/histogrammer/model"
)

// Glyphs are the characters the chart is drawn with.
type Glyphs struct {
	Fill     string
	Empty    string
	Vertical string
	Corner   string
	Rule     string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{Fill: "*", Empty: " ", Vertical: "|", Corner: "+", Rule: "-"}
}

// Renderer draws a FrequencyTable as a row-based text bar chart.
type Renderer struct {
	Alphabet model.Alphabet
	Layout   model.LayoutParams
	Glyphs   Glyphs
	// Paint, if set, decorates every filled cell. Labels and axes are left as-is.
	Paint func(string) string
}

func NewRenderer(alphabet model.Alphabet, layout model.LayoutParams) *Renderer {
	return &Renderer{
		Alphabet: alphabet,
		Layout:   layout,
		Glyphs:   DefaultGlyphs(),
	}
}

// Render returns the chart rows top to bottom, followed by the horizontal
// axis and the alphabet line. Nothing is rendered for an invalid layout.
func (r *Renderer) Render(table model.FrequencyTable, peak int) ([]string, error) {
	if err := r.Layout.Validate(); err != nil {
		return nil, err
	}

	digits := Digits(peak)
	margin := strings.Repeat(" ", digits)
	lines := make([]string, 0, r.Layout.Rows+2)

	fill := r.Glyphs.Fill
	if r.Paint != nil {
		fill = r.Paint(fill)
	}

	for row := range Rows(peak, r.Layout) {
		var b strings.Builder

		label := ""
		if row.HasTick {
			label = strconv.Itoa(row.Label)
		}

		b.WriteString(padLeft(label, digits))
		b.WriteString(r.Glyphs.Vertical)

		for _, s := range r.Alphabet {
			if Filled(table.Count(s), row) {
				b.WriteString(fill)
			} else {
				b.WriteString(r.Glyphs.Empty)
			}
		}

		lines = append(lines, b.String())
	}

	lines = append(lines,
		margin+r.Glyphs.Corner+strings.Repeat(r.Glyphs.Rule, len(r.Alphabet)),
		margin+r.Glyphs.Vertical+r.Alphabet.String())

	return lines, nil
}

// Rows yields the bands of the chart from the top one (index rows-1) down to 0.
// The layout is expected to be valid.
func Rows(peak int, layout model.LayoutParams) iter.Seq[model.Row] {
	return func(yield func(model.Row) bool) {
		for r := layout.Rows - 1; r >= 0; r-- {
			if !yield(rowAt(r, peak, layout)) {
				return
			}
		}
	}
}

func rowAt(r, peak int, layout model.LayoutParams) model.Row {
	rows := float64(layout.Rows)
	floor := (float64(r) / rows) * float64(peak)
	ceil := (float64(r+1) / rows) * float64(peak)

	row := model.Row{
		Index:   r,
		Floor:   floor,
		Ceil:    ceil,
		HasTick: (layout.Rows-1-r)%layout.TickStride == 0,
	}

	// TODO: the midpoint of the band is used as the label; revisit if floor or ceil reads better.
	if row.HasTick {
		row.Label = int(math.Floor(0.5 * (floor + ceil)))
	}

	return row
}

// Filled reports whether a bar of height count reaches into row.
func Filled(count int, row model.Row) bool {
	return float64(count) > row.Floor
}

// Digits is the width of the label column: the number of decimal digits in
// peak, and 1 when peak is 0.
func Digits(peak int) int {
	if peak <= 0 {
		return 1
	}

	return len(strconv.Itoa(peak))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}
