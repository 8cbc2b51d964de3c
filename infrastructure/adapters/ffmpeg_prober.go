package adapters

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/config"
)

type ffmpegDurationProber struct {
	ffprobePath string
	logger      outbound.LoggerPort
}

func NewFfmpegDurationProber(audioConfig *config.AudioConfig, logger outbound.LoggerPort) outbound.DurationProberPort {
	return &ffmpegDurationProber{
		ffprobePath: audioConfig.FfprobePath,
		logger:      logger,
	}
}

func (f *ffmpegDurationProber) Duration(ctx context.Context, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, f.ffprobePath, "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)

	out, err := cmd.Output()
	if err != nil {
		f.logger.ErrorWithFields(err, "Failed to probe audio duration", map[string]interface{}{
			"file": filePath,
		})
		return 0, fmt.Errorf("duration probe failed: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		f.logger.Error(err, "Failed to parse probed duration")
		return 0, fmt.Errorf("failed to parse probed duration: %w", err)
	}

	return duration, nil
}
