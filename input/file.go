package input

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/histogrammer/logging"
	"github.com/schollz/progressbar/v3"
)

var logCtx = logging.PackageCtx("input")

// OpenPath opens path, resolving relative paths against the working directory.
func OpenPath(path string) (*os.File, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve path %s: %w", path, err)
	}

	slog.DebugContext(logCtx, "Opening file", "path", path, "resolved", resolved)

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}

type ReadOptions struct {
	// Progress receives a byte progress bar while the file is read. Nil disables it.
	Progress io.Writer
}

// ReadText reads the whole file at path. The file is closed before returning.
func ReadText(path string, opts ReadOptions) (string, error) {
	file, err := OpenPath(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("could not stat file %s: %w", path, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	var buf strings.Builder

	buf.Grow(int(info.Size()))

	var dst io.Writer = &buf

	if opts.Progress != nil && info.Size() > 0 {
		bar := progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("Reading "+filepath.Base(path)),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish())
		defer func() {
			if err := bar.Finish(); err != nil {
				slog.ErrorContext(logCtx, "could not finish progress bar", "error", err)
			}
		}()

		dst = io.MultiWriter(&buf, bar)
	}

	n, err := io.Copy(dst, file)
	if err != nil {
		return "", fmt.Errorf("could not read file %s: %w", path, err)
	}

	slog.DebugContext(logCtx, "Read file", "path", path, "bytes", n)

	return buf.String(), nil
}
