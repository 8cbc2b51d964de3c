package inbound

import (
	"context"
	"podcast-generation-service/domain"
)

type AssembleAudioParams struct {
	Segments []domain.AudioSegment
	Topic    string
	VoiceIDs []string
	WorkDir  string
	RunID    string
}

// AudioAssemblerPort concatenates synthesized segments into the final
// artifact. It owns the work directory's disposal: segment files and the
// manifest are gone by the time Assemble returns, success or not.
type AudioAssemblerPort interface {
	Assemble(ctx context.Context, params AssembleAudioParams) (*domain.PodcastArtifact, error)
}
