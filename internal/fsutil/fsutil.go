// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
)

// EnsureRegularFile verifies that path names an existing regular file. It is
// the argument layer's pre-flight check; the core scan still handles its own
// open and read failures.
func EnsureRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return nil
}
