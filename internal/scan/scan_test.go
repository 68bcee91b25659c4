package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile drops content into a fresh temp file and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err, "failed to set up test file")
	return path
}

func TestCount_TerminatedLines(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "h1,h2\n1,2\n,4\n")

	count, err := Count(context.Background(), path)

	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestCount_UnterminatedFinalLine(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "h1,h2\n1,2")

	count, err := Count(context.Background(), path)

	require.NoError(t, err)
	require.Equal(t, 2, count, "a final line without a terminator still counts as a record")
}

func TestCount_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "")

	count, err := Count(context.Background(), path)

	require.NoError(t, err)
	require.Zero(t, count)
}

func TestCount_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Count(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLineAt_EveryValidOrdinal(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	lines := []string{"h1,h2", "1,2", ",4"}
	path := writeFile(t, "h1,h2\n1,2\n,4\n")

	for want, wantText := range lines {
		// --- Act ---
		text, echoed, err := LineAt(context.Background(), path, want)

		// --- Assert ---
		require.NoError(t, err)
		require.Equal(t, wantText, text, "terminator must be stripped, content untouched")
		require.Equal(t, want, echoed, "the requested ordinal is echoed back")
	}
}

func TestLineAt_UnterminatedFinalLine(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "h1,h2\ntail")

	text, echoed, err := LineAt(context.Background(), path, 1)

	require.NoError(t, err)
	require.Equal(t, "tail", text)
	require.Equal(t, 1, echoed)
}

func TestLineAt_PreservesCarriageReturn(t *testing.T) {
	t.Parallel()

	// Only the trailing '\n' is stripped; CRLF files keep their '\r'.
	path := writeFile(t, "h1,h2\r\n1,2\r\n")

	text, _, err := LineAt(context.Background(), path, 0)

	require.NoError(t, err)
	require.Equal(t, "h1,h2\r", text)
}

func TestLineAt_OrdinalPastEndOfFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, "h1,h2\n1,2\n")

	// --- Act ---
	_, echoed, err := LineAt(context.Background(), path, 5)

	// --- Assert ---
	require.Equal(t, 5, echoed)
	var notFound *LineNotFoundError
	require.ErrorAs(t, err, &notFound, "a short file must signal LineNotFoundError, never return a stale value")
	require.Equal(t, path, notFound.Path)
	require.Equal(t, 5, notFound.Ordinal)
	require.Equal(t, 2, notFound.Lines)
}

func TestLineAt_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "")

	_, _, err := LineAt(context.Background(), path, 0)

	var notFound *LineNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Zero(t, notFound.Lines)
}

func TestLineAt_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := LineAt(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), 0)

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)

	var notFound *LineNotFoundError
	require.False(t, errors.As(err, &notFound), "an open failure is an I/O error, not LineNotFound")
}
