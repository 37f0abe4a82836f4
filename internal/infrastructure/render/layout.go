package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxDirSuffix bounds the search for a free patch directory name.
const maxDirSuffix = 1000

// ReservePatchDir creates a new directory for releaseID under root and returns
// its path. Existing directories are never reused: the second copy of 7.01B
// becomes "7.01B [1]", the third "7.01B [2]" and so on.
func ReservePatchDir(root, releaseID string) (string, error) {
	if releaseID == "" || releaseID == "." || releaseID == ".." || strings.ContainsAny(releaseID, `/\`) {
		return "", fmt.Errorf("invalid release id %q for a directory name", releaseID)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("creating patch root: %w", err)
	}

	name := releaseID
	for n := 1; n <= maxDirSuffix; n++ {
		dir := filepath.Join(root, name)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("creating patch directory: %w", err)
		}
		name = fmt.Sprintf("%s [%d]", releaseID, n)
	}
	return "", fmt.Errorf("no free directory name for %s in %s", releaseID, root)
}
