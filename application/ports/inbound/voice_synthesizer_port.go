package inbound

import (
	"context"
	"podcast-generation-service/domain"
)

// VoiceSynthesizerPort converts dialogue lines to per-line audio files inside
// workDir. Lines that fail to synthesize are skipped, so the result may be
// shorter than the script; relative order is always preserved.
type VoiceSynthesizerPort interface {
	Synthesize(ctx context.Context, script domain.DialogueScript, workDir string) []domain.AudioSegment
}
