package install

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the structured descriptor enumerating every installed file,
// with paths relative to the output directory.
type Manifest struct {
	Target   string   `json:"target" yaml:"target"`
	Rules    []string `json:"rules" yaml:"rules"`
	Commands []string `json:"commands,omitempty" yaml:"commands,omitempty"`
}

func writeManifest(outDir, rel string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return writeFileAt(outDir, rel, data)
}

// configDescriptor is the opencode-style JSON descriptor. Instructions point
// at the installed rules copies so the tool loads them on startup; Files
// enumerates every installed document so the descriptor stands alone as the
// structured manifest for this target.
type configDescriptor struct {
	Schema       string   `json:"$schema"`
	Instructions []string `json:"instructions"`
	Files        []string `json:"files"`
}

func writeConfigDescriptor(outDir, rel string, m Manifest) error {
	files := make([]string, 0, len(m.Rules)+len(m.Commands))
	files = append(files, m.Rules...)
	files = append(files, m.Commands...)

	cfg := configDescriptor{
		Schema:       "https://opencode.ai/config.json",
		Instructions: m.Rules,
		Files:        files,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", rel, err)
	}
	return writeFileAt(outDir, rel, buf.Bytes())
}

// usageNote renders the generated human-readable note naming every installed
// file.
func usageNote(target Target, spec targetSpec, m Manifest) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s instructions\n\n", target)
	b.WriteString("Generated by the agents installer. Copy the contents of this directory\n")
	b.WriteString("into the root of the project that should use these instructions.\n\n")
	b.WriteString(spec.usage)
	b.WriteString("\n\n## Installed files\n\n")
	for _, p := range m.Rules {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	for _, p := range m.Commands {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	return []byte(b.String())
}
