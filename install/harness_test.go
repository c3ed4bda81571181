package install

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		// Create temp dir for this test file
		tmpDir, err := os.MkdirTemp("", "agents-test-*")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "payload":
				return handlePayloadFile(t, d, tmpDir)
			case "resolve":
				return handleResolve(t, d, tmpDir)
			case "build":
				return handleBuild(t, d, tmpDir)
			case "tree":
				return handleTree(t, d, tmpDir)
			case "read":
				return handleRead(t, d, tmpDir)
			default:
				t.Fatalf("unknown command: %s", d.Cmd)
				return ""
			}
		})
	})
}

// handlePayloadFile creates a payload file in the temp directory
func handlePayloadFile(t *testing.T, d *datadriven.TestData, tmpDir string) string {
	var name string
	d.ScanArgs(t, "name", &name)

	absPath := filepath.Join(tmpDir, name)

	err := os.MkdirAll(filepath.Dir(absPath), 0755)
	require.NoError(t, err)

	err = os.WriteFile(absPath, []byte(d.Input), 0644)
	require.NoError(t, err)

	return "" // payload command produces no output
}

// handleResolve runs Resolve() from a directory relative to the temp root
func handleResolve(t *testing.T, d *datadriven.TestData, tmpDir string) string {
	var start string
	d.ScanArgs(t, "start", &start)

	payload, err := Resolve(filepath.Join(tmpDir, start))
	if err != nil {
		return "error: " + redact(err.Error(), tmpDir)
	}

	rel, relErr := filepath.Rel(tmpDir, payload.Root)
	require.NoError(t, relErr)
	return "resolved: " + filepath.ToSlash(rel)
}

// handleBuild resolves the payload at the temp root and runs one build
func handleBuild(t *testing.T, d *datadriven.TestData, tmpDir string) string {
	var targetName string
	d.ScanArgs(t, "target", &targetName)
	target, err := ParseTarget(targetName)
	require.NoError(t, err)

	payload, err := Resolve(tmpDir)
	if err != nil {
		return "error: " + redact(err.Error(), tmpDir)
	}

	var out string
	if d.HasArg("out") {
		d.ScanArgs(t, "out", &out)
		out = filepath.Join(tmpDir, out)
	}
	force := d.HasArg("force")

	if target == TargetAll {
		results, err := BuildAll(payload, out, force)
		var lines []string
		for _, res := range results {
			lines = append(lines, resultLine(t, res, tmpDir))
		}
		if err != nil {
			lines = append(lines, "error: "+redact(err.Error(), tmpDir))
		}
		return strings.Join(lines, "\n")
	}

	res, err := Build(payload, BuildRequest{Target: target, OutDir: out, Force: force})
	if err != nil {
		return "error: " + redact(err.Error(), tmpDir)
	}
	return resultLine(t, res, tmpDir)
}

// handleTree lists the files under a directory relative to the temp root
func handleTree(t *testing.T, d *datadriven.TestData, tmpDir string) string {
	var dir string
	d.ScanArgs(t, "dir", &dir)

	root := filepath.Join(tmpDir, dir)
	if classify(root) != pathDir {
		return "(absent)"
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)

	sort.Strings(paths)
	return strings.Join(paths, "\n")
}

// handleRead prints a file relative to the temp root
func handleRead(t *testing.T, d *datadriven.TestData, tmpDir string) string {
	var name string
	d.ScanArgs(t, "file", &name)

	data, err := os.ReadFile(filepath.Join(tmpDir, name))
	if err != nil {
		return "error: " + redact(err.Error(), tmpDir)
	}
	return string(data)
}

func resultLine(t *testing.T, res *Result, tmpDir string) string {
	rel, err := filepath.Rel(tmpDir, res.Path)
	require.NoError(t, err)
	return fmt.Sprintf("installed %s: %s (%d files)", res.Target, filepath.ToSlash(rel), res.Files)
}

// redact keeps testdata expectations stable across temp directories
func redact(msg, tmpDir string) string {
	return strings.ReplaceAll(msg, tmpDir, "$ROOT")
}
