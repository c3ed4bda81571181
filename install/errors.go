package install

import "fmt"

// NotFoundError reports that no candidate directory near the starting
// directory held a valid payload.
type NotFoundError struct {
	StartDir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no payload root found near %s", e.StartDir)
}

// AlreadyExistsError reports an output directory that is already present
// while overwriting was not permitted.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("output directory %s already exists (use --force to replace it)", e.Path)
}

// PayloadError reports a payload file that could not be read at copy time.
// The payload root was valid at resolution, so this usually means it changed
// underneath us.
type PayloadError struct {
	Path string
	Err  error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("payload file %s: %v", e.Path, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// WriteError reports a failed filesystem write, carrying the offending path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
