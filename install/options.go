package install

// BuildRequest configures a single target build.
type BuildRequest struct {
	// Target selects the destination layout.
	Target Target

	// OutDir overrides the output directory.
	// If empty, <payloadRoot>/dist/<target> is used.
	OutDir string

	// Force permits replacing an existing output directory.
	// Without it, a pre-existing directory fails the build untouched.
	Force bool
}

// Result describes one completed build.
type Result struct {
	Target Target `json:"target"`
	Path   string `json:"path"`
	Files  int    `json:"files"`
}
