package install

import (
	"fmt"
	"strings"
)

// Target identifies one supported destination tool layout.
type Target string

const (
	TargetCursor   Target = "cursor"
	TargetClaude   Target = "claude"
	TargetOpenCode Target = "opencode"

	// TargetAll is the CLI wildcard selecting every buildable target. It is
	// not a layout itself and has no row in the spec table.
	TargetAll Target = "all"
)

// Targets returns the buildable targets in their fixed build order.
func Targets() []Target {
	return []Target{TargetCursor, TargetClaude, TargetOpenCode}
}

// ParseTarget validates a CLI target selector.
func ParseTarget(s string) (Target, error) {
	switch t := Target(strings.ToLower(strings.TrimSpace(s))); t {
	case TargetCursor, TargetClaude, TargetOpenCode, TargetAll:
		return t, nil
	default:
		return "", fmt.Errorf("unknown target %q (expected cursor, claude, opencode, or all)", s)
	}
}

// targetSpec describes where one target wants the payload placed. All paths
// are slash-separated and relative to the build's output directory.
type targetSpec struct {
	// rulesDests are the paths receiving a copy of the rules document.
	rulesDests []string

	// commandDirs are the directories receiving a copy of every command
	// document.
	commandDirs []string

	// manifestPath, when set, receives the YAML manifest descriptor.
	manifestPath string

	// configPath, when set, receives the JSON config descriptor.
	configPath string

	// readmePath receives the generated usage note.
	readmePath string

	// usage is the per-target blurb written into the usage note.
	usage string
}

// targetSpecs maps each buildable target to its layout. Adding a target
// means adding a row here, not new branching in the builder.
var targetSpecs = map[Target]targetSpec{
	TargetCursor: {
		rulesDests:   []string{"AGENTS.md", ".cursor/rules/agents.mdc"},
		commandDirs:  []string{".cursor/commands"},
		manifestPath: "manifest.yaml",
		readmePath:   "README.md",
		usage: "Cursor loads .cursor/rules/agents.mdc automatically; AGENTS.md at the\n" +
			"root is the same content for tools that read the agents convention.\n" +
			"Files under .cursor/commands become / commands in chat.",
	},
	TargetClaude: {
		rulesDests:   []string{"CLAUDE.md"},
		commandDirs:  []string{".claude/commands"},
		manifestPath: "manifest.yaml",
		readmePath:   "README.md",
		usage: "Claude Code reads CLAUDE.md at session start. Files under\n" +
			".claude/commands become /slash commands.",
	},
	TargetOpenCode: {
		rulesDests:  []string{"AGENTS.md"},
		commandDirs: []string{"commands", ".opencode/command"},
		configPath:  "opencode.json",
		readmePath:  "README.md",
		usage: "OpenCode reads opencode.json and loads the instruction files it\n" +
			"names. Commands live under .opencode/command; the commands directory\n" +
			"holds the same files for manual browsing.",
	},
}
