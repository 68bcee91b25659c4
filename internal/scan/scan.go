// Package scan locates records in a newline-delimited text file by their
// zero-based ordinal position, without loading the whole file into memory.
package scan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/csvpeek/internal/ctxlog"
)

// LineNotFoundError reports a request for an ordinal past the end of a file.
// It is distinct from I/O failures: the file was read fine, it just does not
// have that many lines.
type LineNotFoundError struct {
	Path    string
	Ordinal int
	Lines   int
}

// Error implements the error interface for LineNotFoundError.
func (e *LineNotFoundError) Error() string {
	return fmt.Sprintf("line %d not found in %s: file has %d line(s)", e.Ordinal, e.Path, e.Lines)
}

// Count returns the number of newline-terminated records in the file at
// path. A final unterminated line counts as one record; an empty file counts
// zero. The count is recomputed on every call, nothing is cached.
func Count(ctx context.Context, path string) (int, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	count := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			count++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	logger.Debug("Line count complete.", "path", path, "count", count)
	return count, nil
}

// LineAt returns the text of the record at the given zero-based ordinal with
// its trailing newline stripped, echoing the ordinal back for the caller's
// convenience. Only the final '\n' is removed; a '\r' before it is kept.
//
// The scan always runs from the start of the file to its end, even after the
// requested record has been captured. Every call costs a full pass; callers
// must not rely on an early exit.
//
// If the file holds fewer than ordinal+1 records, LineAt returns a
// *LineNotFoundError. Any open or read failure is returned wrapped. The file
// handle is released on every exit path. The context carries only the
// logger; the scan is not cancellable once started.
func LineAt(ctx context.Context, path string, ordinal int) (string, int, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return "", ordinal, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var matched string
	found := false
	num := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if num == ordinal {
				matched = strings.TrimSuffix(line, "\n")
				found = true
			}
			num++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", ordinal, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if !found {
		return "", ordinal, &LineNotFoundError{Path: path, Ordinal: ordinal, Lines: num}
	}

	logger.Debug("Line captured.", "path", path, "ordinal", ordinal, "total_lines", num)
	return matched, ordinal, nil
}
