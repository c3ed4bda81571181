package install

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// distDirName is the distribution directory default outputs live under,
// created as a sibling of the payload's rules document.
const distDirName = "dist"

// DefaultOutDir returns the output directory used when a build request does
// not override it.
func DefaultOutDir(payload *Payload, target Target) string {
	return filepath.Join(payload.Root, distDirName, string(target))
}

// Build installs the payload into one target layout.
//
// The output directory is created fresh: a pre-existing directory fails with
// *AlreadyExistsError unless the request forces, in which case it is removed
// wholesale first. Trees are never merged incrementally.
func Build(payload *Payload, req BuildRequest) (*Result, error) {
	spec, ok := targetSpecs[req.Target]
	if !ok {
		return nil, fmt.Errorf("target %q is not buildable", req.Target)
	}

	outDir := req.OutDir
	if outDir == "" {
		outDir = DefaultOutDir(payload, req.Target)
	}

	if classify(outDir) != pathAbsent {
		if !req.Force {
			return nil, &AlreadyExistsError{Path: outDir}
		}
		if err := os.RemoveAll(outDir); err != nil {
			return nil, &WriteError{Path: outDir, Err: err}
		}
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, &WriteError{Path: outDir, Err: err}
	}

	manifest := Manifest{Target: string(req.Target)}
	files := 0

	rules, err := os.ReadFile(payload.RulesPath())
	if err != nil {
		return nil, &PayloadError{Path: payload.RulesPath(), Err: err}
	}
	for _, dest := range spec.rulesDests {
		if err := writeFileAt(outDir, dest, rules); err != nil {
			return nil, err
		}
		manifest.Rules = append(manifest.Rules, dest)
		files++
	}

	names, err := payload.Commands()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, &PayloadError{
			Path: payload.CommandsDir(),
			Err:  errors.New("no command documents left"),
		}
	}
	for _, dir := range spec.commandDirs {
		for _, name := range names {
			src := filepath.Join(payload.CommandsDir(), name)
			data, err := os.ReadFile(src)
			if err != nil {
				return nil, &PayloadError{Path: src, Err: err}
			}
			dest := path.Join(dir, name)
			if err := writeFileAt(outDir, dest, data); err != nil {
				return nil, err
			}
			manifest.Commands = append(manifest.Commands, dest)
			files++
		}
	}

	if spec.manifestPath != "" {
		if err := writeManifest(outDir, spec.manifestPath, manifest); err != nil {
			return nil, err
		}
		files++
	}
	if spec.configPath != "" {
		if err := writeConfigDescriptor(outDir, spec.configPath, manifest); err != nil {
			return nil, err
		}
		files++
	}
	if spec.readmePath != "" {
		if err := writeFileAt(outDir, spec.readmePath, usageNote(req.Target, spec, manifest)); err != nil {
			return nil, err
		}
		files++
	}

	return &Result{Target: req.Target, Path: outDir, Files: files}, nil
}

// BuildAll builds every target in fixed order, continuing past per-target
// failures. The returned error aggregates every failure and is nil only when
// all targets succeeded; successful builds are returned either way.
//
// When outDir overrides the default, each target still builds into its own
// subdirectory beneath it so the three trees never collide.
func BuildAll(payload *Payload, outDir string, force bool) ([]*Result, error) {
	var results []*Result
	var errs []error
	for _, target := range Targets() {
		req := BuildRequest{Target: target, Force: force}
		if outDir != "" {
			req.OutDir = filepath.Join(outDir, string(target))
		}
		res, err := Build(payload, req)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", target, err))
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

// writeFileAt writes data to the slash-separated path rel under outDir,
// creating intermediate directories as needed.
func writeFileAt(outDir, rel string, data []byte) error {
	dest := filepath.Join(outDir, filepath.FromSlash(rel))
	if dir := filepath.Dir(dest); dir != outDir {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: dir, Err: err}
		}
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	return nil
}
