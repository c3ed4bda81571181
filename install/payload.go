// Package install locates a payload of agent instruction files and installs
// it into tool-specific directory layouts.
package install

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// rulesFileName is the fixed name of the rules document inside a
	// payload root.
	rulesFileName = "AGENTS.md"

	// commandsDirName is the fixed name of the subdirectory holding
	// command documents.
	commandsDirName = "commands"

	// markdownExt is the extension command documents must carry.
	markdownExt = ".md"
)

// Payload is a resolved payload root. It is read-only: builders copy out of
// it and never write into it.
type Payload struct {
	// Root is the absolute path of the payload root directory.
	Root string
}

// RulesPath returns the path of the rules document.
func (p *Payload) RulesPath() string {
	return filepath.Join(p.Root, rulesFileName)
}

// CommandsDir returns the path of the commands subdirectory.
func (p *Payload) CommandsDir() string {
	return filepath.Join(p.Root, commandsDirName)
}

// Commands lists the command document filenames directly under the commands
// subdirectory, sorted by name. Nested directories are never descended into.
func (p *Payload) Commands() ([]string, error) {
	entries, err := os.ReadDir(p.CommandsDir())
	if err != nil {
		return nil, &PayloadError{Path: p.CommandsDir(), Err: err}
	}

	var names []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), markdownExt) {
			continue
		}
		// ReadDir does not follow symlinks, so classify the resolved entry;
		// only regular files (or links to them) count as command documents.
		if classify(filepath.Join(p.CommandsDir(), entry.Name())) != pathFile {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// pathKind classifies a filesystem path as a file, a directory, or absent.
type pathKind int

const (
	pathAbsent pathKind = iota
	pathFile
	pathDir
)

// classify resolves symlinks and returns the kind of the path. Any stat
// failure counts as absent.
func classify(path string) pathKind {
	info, err := os.Stat(path)
	if err != nil {
		return pathAbsent
	}
	if info.IsDir() {
		return pathDir
	}
	return pathFile
}

// validPayloadDir reports whether dir holds a complete payload: the rules
// document as a regular file plus at least one markdown command document.
func validPayloadDir(dir string) bool {
	if classify(dir) != pathDir {
		return false
	}
	payload := Payload{Root: dir}
	if classify(payload.RulesPath()) != pathFile {
		return false
	}
	commands, err := payload.Commands()
	return err == nil && len(commands) > 0
}
