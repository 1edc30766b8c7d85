package textchunk

import "fmt"

// ErrConfig reports an invalid configuration field. It is returned by New
// before any chunking runs; a Chunker that was constructed successfully
// never fails mid-run.
type ErrConfig struct {
	Field  string
	Reason string
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}
