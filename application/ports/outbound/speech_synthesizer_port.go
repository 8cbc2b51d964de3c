package outbound

import (
	"context"
	"io"
)

type SynthesizeSpeechRequest struct {
	Text    string
	VoiceID string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (io.ReadCloser, error)
}
