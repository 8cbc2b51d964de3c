package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"podcast-generation-service/application/ports/outbound"
)

// stubSpeechSynthesizer produces deterministic audio-sized byte runs instead
// of calling the speech service. It lets the full pipeline run locally with
// only the mux and probe utilities installed.
type stubSpeechSynthesizer struct {
	logger outbound.LoggerPort
}

func NewStubSpeechSynthesizer(logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &stubSpeechSynthesizer{
		logger: logger,
	}
}

func (s *stubSpeechSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	if req.VoiceID == "" {
		return nil, fmt.Errorf("voice ID is required")
	}
	if req.Text == "" {
		return nil, fmt.Errorf("text is required")
	}

	payload := make([]byte, len(req.Text)*320)

	s.logger.DebugWithFields("Stub speech synthesis", map[string]interface{}{
		"voice_id":    req.VoiceID,
		"text_length": len(req.Text),
		"bytes":       len(payload),
	})

	return io.NopCloser(bytes.NewReader(payload)), nil
}
