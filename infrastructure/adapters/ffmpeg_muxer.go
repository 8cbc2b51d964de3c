package adapters

import (
	"context"
	"os/exec"

	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/config"
)

type ffmpegAudioMuxer struct {
	ffmpegPath string
	logger     outbound.LoggerPort
}

func NewFfmpegAudioMuxer(audioConfig *config.AudioConfig, logger outbound.LoggerPort) outbound.AudioMuxerPort {
	return &ffmpegAudioMuxer{
		ffmpegPath: audioConfig.FfmpegPath,
		logger:     logger,
	}
}

// Concatenate joins the files listed in the manifest without re-encoding.
// The manifest order is the output order.
func (f *ffmpegAudioMuxer) Concatenate(ctx context.Context, manifestPath string, outputPath string) error {
	cmd := exec.CommandContext(ctx, f.ffmpegPath, "-f", "concat", "-safe", "0", "-i", manifestPath, "-c", "copy", outputPath)

	out, err := cmd.CombinedOutput()
	if err != nil {
		f.logger.ErrorWithFields(err, "Failed to concatenate audio segments", map[string]interface{}{
			"manifest": manifestPath,
			"output":   outputPath,
			"details":  string(out),
		})
		return &outbound.MuxError{
			Err:    err,
			Output: string(out),
		}
	}

	return nil
}
