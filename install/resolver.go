package install

import (
	"fmt"
	"path/filepath"
)

// candidateDirs returns the ordered list of directories searched for a
// payload, derived from startDir. The order is the priority order: the
// starting directory itself, two nested variants under it, then the parent
// and the same two variants under the parent.
func candidateDirs(startDir string) []string {
	parent := filepath.Dir(startDir)
	return []string{
		startDir,
		filepath.Join(startDir, "agents"),
		filepath.Join(startDir, "src", "agents"),
		parent,
		filepath.Join(parent, "agents"),
		filepath.Join(parent, "src", "agents"),
	}
}

// Resolve locates the payload root nearest startDir. Candidates are checked
// in a fixed priority order and the first valid one wins; later candidates
// are never preferred. Candidates that do not exist are skipped.
func Resolve(startDir string) (*Payload, error) {
	if startDir == "" {
		startDir = "."
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolve start dir: %w", err)
	}

	for _, dir := range candidateDirs(abs) {
		if validPayloadDir(dir) {
			return &Payload{Root: dir}, nil
		}
	}
	return nil, &NotFoundError{StartDir: abs}
}
