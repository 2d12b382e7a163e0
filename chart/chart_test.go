package chart_test

import (
	"math"
	"strings"
	"testing"

	"github.com/dasdy/histogrammer/chart"
	"github.com/dasdy/histogrammer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func blank(n int) string {
	return strings.Repeat(" ", n)
}

func TestRender(t *testing.T) {
	t.Run("renders two filled bars", func(t *testing.T) {
		r := chart.NewRenderer(model.Latin(), model.LayoutParams{Rows: 2, TickStride: 1})

		lines, err := r.Render(model.FrequencyTable{'a': 3, 'b': 2}, 3)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"2|**" + blank(24),
			"0|**" + blank(24),
			" +" + strings.Repeat("-", 26),
			" |abcdefghijklmnopqrstuvwxyz",
		}, lines)
	})

	t.Run("renders empty input as blank rows", func(t *testing.T) {
		r := chart.NewRenderer(model.Latin(), model.DefaultLayout())

		lines, err := r.Render(model.FrequencyTable{}, 0)

		require.NoError(t, err)
		require.Len(t, lines, 12)

		for i, line := range lines[:10] {
			if i%3 == 0 {
				assert.Equal(t, "0|"+blank(26), line, "row %d", i)
			} else {
				assert.Equal(t, " |"+blank(26), line, "row %d", i)
			}
		}

		assert.Equal(t, " +"+strings.Repeat("-", 26), lines[10])
		assert.Equal(t, " |abcdefghijklmnopqrstuvwxyz", lines[11])
	})

	t.Run("pads labels to the width of peak", func(t *testing.T) {
		r := chart.NewRenderer(model.Latin(), model.DefaultLayout())

		lines, err := r.Render(model.FrequencyTable{'a': 250, 'z': 1}, 250)

		require.NoError(t, err)
		require.Len(t, lines, 12)

		labels := make([]string, 0, 10)
		for _, line := range lines[:10] {
			assert.Equal(t, "|", line[3:4])
			assert.Len(t, line, 3+1+26)
			labels = append(labels, line[:3])
		}

		assert.Equal(t, []string{
			"237", "   ", "   ", "162", "   ", "   ", " 87", "   ", "   ", " 12",
		}, labels)

		assert.Equal(t, "   +"+strings.Repeat("-", 26), lines[10])
		assert.Equal(t, "   |abcdefghijklmnopqrstuvwxyz", lines[11])

		// 'z' only reaches the bottom row.
		for i, line := range lines[:10] {
			assert.Equal(t, "*", line[4:5], "a at row %d", i)

			if i == 9 {
				assert.Equal(t, "*", line[29:30])
			} else {
				assert.Equal(t, " ", line[29:30], "z at row %d", i)
			}
		}
	})

	t.Run("count equal to a row floor is not filled", func(t *testing.T) {
		r := chart.NewRenderer(model.Alphabet{'a', 'b'}, model.LayoutParams{Rows: 2, TickStride: 1})

		lines, err := r.Render(model.FrequencyTable{'a': 4, 'b': 2}, 4)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"3|* ",
			"1|**",
			" +--",
			" |ab",
		}, lines)
	})

	t.Run("uses custom glyphs and painter", func(t *testing.T) {
		r := chart.NewRenderer(model.Alphabet{'a', 'b'}, model.LayoutParams{Rows: 1, TickStride: 1})
		r.Glyphs.Fill = "#"
		r.Paint = func(s string) string { return "<" + s + ">" }

		lines, err := r.Render(model.FrequencyTable{'b': 1}, 1)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"0| <#>",
			" +--",
			" |ab",
		}, lines)
	})

	t.Run("does not modify the table", func(t *testing.T) {
		table := model.FrequencyTable{'c': 5}
		r := chart.NewRenderer(model.Latin(), model.DefaultLayout())

		_, err := r.Render(table, 5)

		require.NoError(t, err)
		assert.Equal(t, model.FrequencyTable{'c': 5}, table)
	})
}

func TestRenderRejectsInvalidLayout(t *testing.T) {
	testCases := []struct {
		name   string
		layout model.LayoutParams
		field  string
		max    int
	}{
		{"zero rows", model.LayoutParams{Rows: 0, TickStride: 3}, "rows", 0},
		{"negative rows", model.LayoutParams{Rows: -1, TickStride: 3}, "rows", 0},
		{"zero stride", model.LayoutParams{Rows: 10, TickStride: 0}, "tick stride", 0},
		{"rows above limit", model.LayoutParams{Rows: model.MaxRows + 1, TickStride: 1}, "rows", model.MaxRows},
		{"largest int rows", model.LayoutParams{Rows: math.MaxInt, TickStride: 1}, "rows", model.MaxRows},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := chart.NewRenderer(model.Latin(), tc.layout)

			lines, err := r.Render(model.FrequencyTable{'a': 1}, 1)

			require.ErrorIs(t, err, model.ErrInvalidLayout)

			var layoutErr *model.LayoutError
			require.ErrorAs(t, err, &layoutErr)
			assert.Equal(t, tc.field, layoutErr.Field)
			assert.Equal(t, tc.max, layoutErr.Max)
			assert.Nil(t, lines)
		})
	}
}

func TestRenderMaxRows(t *testing.T) {
	r := chart.NewRenderer(model.Alphabet{'a'}, model.LayoutParams{Rows: model.MaxRows, TickStride: 1000})

	lines, err := r.Render(model.FrequencyTable{'a': 1}, 1)

	require.NoError(t, err)
	assert.Len(t, lines, model.MaxRows+2)
}

func TestRowsTickPlacement(t *testing.T) {
	ticks := make([]int, 0)

	top := 0
	for row := range chart.Rows(100, model.LayoutParams{Rows: 10, TickStride: 3}) {
		if row.HasTick {
			ticks = append(ticks, top)
		}
		top++
	}

	assert.Equal(t, []int{0, 3, 6, 9}, ticks)
}

func TestRowsBounds(t *testing.T) {
	rows := make([]model.Row, 0)
	for row := range chart.Rows(3, model.LayoutParams{Rows: 2, TickStride: 1}) {
		rows = append(rows, row)
	}

	assert.Equal(t, []model.Row{
		{Index: 1, Floor: 1.5, Ceil: 3, HasTick: true, Label: 2},
		{Index: 0, Floor: 0, Ceil: 1.5, HasTick: true, Label: 0},
	}, rows)
}

func TestDigits(t *testing.T) {
	testCases := []struct {
		peak     int
		expected int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{250, 3},
		{1000, 4},
		{999999, 6},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, chart.Digits(tc.peak), "peak %d", tc.peak)
	}
}

func TestRowProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		peak := rapid.IntRange(0, 100000).Draw(t, "peak")
		count := rapid.IntRange(0, peak).Draw(t, "count")
		layout := model.LayoutParams{
			Rows:       rapid.IntRange(1, 60).Draw(t, "rows"),
			TickStride: rapid.IntRange(1, 20).Draw(t, "stride"),
		}

		seenFilled := false
		first := true

		for row := range chart.Rows(peak, layout) {
			if first && !row.HasTick {
				t.Fatalf("top row %d has no tick", row.Index)
			}
			first = false

			// Bars grow from the bottom: once a row is filled, every row below is too.
			filled := chart.Filled(count, row)
			if seenFilled && !filled {
				t.Fatalf("row %d unfilled below a filled row for count %d", row.Index, count)
			}
			seenFilled = seenFilled || filled

			if row.HasTick && (row.Label < 0 || chart.Digits(row.Label) > chart.Digits(peak)) {
				t.Fatalf("label %d does not fit width of peak %d", row.Label, peak)
			}
		}
	})
}

func TestRenderLineWidths(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alphabet := model.Latin()
		table := make(model.FrequencyTable)

		peak := 0
		for _, s := range alphabet {
			v := rapid.IntRange(0, 5000).Draw(t, string(rune(s)))
			if v > 0 {
				table[s] = v
			}
			peak = max(peak, v)
		}

		layout := model.LayoutParams{
			Rows:       rapid.IntRange(1, 40).Draw(t, "rows"),
			TickStride: rapid.IntRange(1, 10).Draw(t, "stride"),
		}

		lines, err := chart.NewRenderer(alphabet, layout).Render(table, peak)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(lines) != layout.Rows+2 {
			t.Fatalf("got %d lines, expected %d", len(lines), layout.Rows+2)
		}

		width := chart.Digits(peak) + 1 + len(alphabet)
		for i, line := range lines {
			if len(line) != width {
				t.Fatalf("line %d %q has width %d, expected %d", i, line, len(line), width)
			}
		}
	})
}
