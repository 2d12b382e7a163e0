package histogrammer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/dasdy/histogrammer/binner"
	"github.com/dasdy/histogrammer/chart"
	"github.com/dasdy/histogrammer/input"
	"github.com/dasdy/histogrammer/model"
	"github.com/dasdy/histogrammer/style"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, path string, layout model.LayoutParams, s *settings) error {
	if err := validateMarker(s.marker); err != nil {
		return err
	}

	opts := input.ReadOptions{}
	if s.progress {
		opts.Progress = cmd.ErrOrStderr()
	}

	text, err := input.ReadText(path, opts)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file %q not found", path)
	} else if err != nil {
		return err
	}

	table, peak := binner.Bin(text)
	slog.DebugContext(logCtx, "Binned input", "letters", table.Total(), "peak", peak)

	renderer := chart.NewRenderer(model.Latin(), layout)
	renderer.Glyphs.Fill = s.marker
	renderer.Paint = style.FillPainter(s.color)

	lines, err := renderer.Render(table, peak)
	if err != nil {
		return fmt.Errorf("could not render chart: %w", err)
	}

	return writeLines(cmd.OutOrStdout(), lines)
}

func writeLines(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("could not write chart: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write chart: %w", err)
	}

	return nil
}

func validateMarker(marker string) error {
	if len(marker) != 1 || marker[0] <= ' ' || marker[0] > '~' {
		return fmt.Errorf("marker must be a single printable ASCII character, got %q", marker)
	}

	return nil
}
