package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"podcast-generation-service/application/ports/inbound"
	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/domain"
)

type voiceSynthesizer struct {
	speech outbound.SpeechSynthesizerPort
	logger outbound.LoggerPort
}

func NewVoiceSynthesizer(speech outbound.SpeechSynthesizerPort, logger outbound.LoggerPort) inbound.VoiceSynthesizerPort {
	return &voiceSynthesizer{
		speech: speech,
		logger: logger,
	}
}

// Synthesize voices each line one at a time. Segment indices match line
// positions, so a skipped line leaves a gap instead of renumbering the rest.
func (s *voiceSynthesizer) Synthesize(ctx context.Context, script domain.DialogueScript, workDir string) []domain.AudioSegment {
	segments := make([]domain.AudioSegment, 0, len(script))
	for i, line := range script {
		filePath, err := s.synthesizeLine(ctx, line, workDir, i)
		if err != nil {
			s.logger.WarnWithFields("Skipping dialogue line, synthesis failed", map[string]interface{}{
				"line":     i,
				"speaker":  string(line.Speaker),
				"voice_id": line.VoiceID,
				"error":    err.Error(),
			})
			continue
		}
		segments = append(segments, domain.AudioSegment{
			Index:    i,
			FilePath: filePath,
		})
	}
	return segments
}

func (s *voiceSynthesizer) synthesizeLine(ctx context.Context, line domain.DialogueLine, workDir string, index int) (string, error) {
	body, err := s.speech.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:    line.Text,
		VoiceID: line.VoiceID,
	})
	if err != nil {
		return "", err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			s.logger.Error(err, "Failed to close the speech response body")
		}
	}(body)

	filePath := filepath.Join(workDir, fmt.Sprintf("segment_%03d.mp3", index))
	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}

	written, err := io.Copy(file, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := os.Remove(filePath); removeErr != nil {
			s.logger.Error(removeErr, "Failed to remove partial segment file")
		}
		return "", err
	}
	if written == 0 {
		if removeErr := os.Remove(filePath); removeErr != nil {
			s.logger.Error(removeErr, "Failed to remove empty segment file")
		}
		return "", fmt.Errorf("speech service returned no audio")
	}

	return filePath, nil
}
