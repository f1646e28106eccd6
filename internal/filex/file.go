// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and any missing parents) if it does not exist yet
// and returns the path back. Used at bootstrap so that the first run of the
// application can create its data directory before the store opens users.db
// inside it.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
