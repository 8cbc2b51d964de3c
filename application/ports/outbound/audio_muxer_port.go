package outbound

import (
	"context"
	"fmt"
)

// MuxError carries the muxing utility's captured output so callers can
// surface diagnostics alongside the failure.
type MuxError struct {
	Err    error
	Output string
}

func (e *MuxError) Error() string {
	return fmt.Sprintf("audio concatenation failed: %v", e.Err)
}

func (e *MuxError) Unwrap() error {
	return e.Err
}

type AudioMuxerPort interface {
	Concatenate(ctx context.Context, manifestPath string, outputPath string) error
}
