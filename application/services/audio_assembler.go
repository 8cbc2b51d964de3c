package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"podcast-generation-service/application/ports/inbound"
	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/domain"
)

// ErrNoSegments is returned when every dialogue line failed to synthesize,
// leaving nothing to concatenate.
var ErrNoSegments = errors.New("no audio segments to assemble")

const manifestFileName = "file_list.txt"

type audioAssembler struct {
	muxer     outbound.AudioMuxerPort
	prober    outbound.DurationProberPort
	logger    outbound.LoggerPort
	outputDir string
}

func NewAudioAssembler(muxer outbound.AudioMuxerPort, prober outbound.DurationProberPort, logger outbound.LoggerPort, outputDir string) inbound.AudioAssemblerPort {
	return &audioAssembler{
		muxer:     muxer,
		prober:    prober,
		logger:    logger,
		outputDir: outputDir,
	}
}

// Assemble concatenates the segment files into the shared output directory.
// The work directory holding segments and the manifest is removed before
// returning, on every path.
func (a *audioAssembler) Assemble(ctx context.Context, params inbound.AssembleAudioParams) (*domain.PodcastArtifact, error) {
	defer a.removeWorkDir(params.WorkDir)

	if len(params.Segments) == 0 {
		return nil, ErrNoSegments
	}

	manifestPath, err := a.writeManifest(params.WorkDir, params.Segments)
	if err != nil {
		return nil, fmt.Errorf("failed to write segment manifest: %w", err)
	}

	if err := os.MkdirAll(a.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	generatedAt := time.Now()
	outputPath := filepath.Join(a.outputDir, outputFileName(params.Topic, generatedAt, params.RunID))

	if err := a.muxer.Concatenate(ctx, manifestPath, outputPath); err != nil {
		if removeErr := os.Remove(outputPath); removeErr != nil && !os.IsNotExist(removeErr) {
			a.logger.Error(removeErr, "Failed to remove partial output file")
		}
		return nil, err
	}

	duration, err := a.prober.Duration(ctx, outputPath)
	if err != nil {
		a.logger.WarnWithFields("Duration probe failed, reporting zero", map[string]interface{}{
			"file":  outputPath,
			"error": err.Error(),
		})
		duration = 0.0
	}

	return &domain.PodcastArtifact{
		FilePath:        outputPath,
		DurationSeconds: duration,
		VoiceIDsUsed:    params.VoiceIDs,
		GeneratedAt:     generatedAt,
	}, nil
}

// writeManifest lists segment files in the order they arrive. The muxer
// concatenates in manifest order, so this order is the episode's line order.
func (a *audioAssembler) writeManifest(workDir string, segments []domain.AudioSegment) (string, error) {
	manifestPath := filepath.Join(workDir, manifestFileName)
	manifest, err := os.Create(manifestPath)
	if err != nil {
		return "", err
	}

	writer := bufio.NewWriter(manifest)
	for _, segment := range segments {
		if _, err := writer.WriteString("file '" + segment.FilePath + "'\n"); err != nil {
			_ = manifest.Close()
			return "", err
		}
	}
	if err := writer.Flush(); err != nil {
		_ = manifest.Close()
		return "", err
	}
	if err := manifest.Close(); err != nil {
		return "", err
	}

	return manifestPath, nil
}

func (a *audioAssembler) removeWorkDir(workDir string) {
	if workDir == "" {
		return
	}
	if err := os.RemoveAll(workDir); err != nil {
		a.logger.ErrorWithFields(err, "Failed to remove segment work directory", map[string]interface{}{
			"dir": workDir,
		})
	}
}

func outputFileName(topic string, generatedAt time.Time, runID string) string {
	name := fmt.Sprintf("podcast_%s_%s", strings.ReplaceAll(topic, " ", "_"), generatedAt.Format("20060102_150405"))
	if runID != "" {
		name += "_" + runID
	}
	return name + ".mp3"
}
