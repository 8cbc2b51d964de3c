package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"

	"podcast-generation-service/application/ports/inbound"
	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/domain"
)

const (
	podcastFlowType = "podcast"

	defaultTopic = "Educational Topic"

	// failurePlaceholder stands in for the transcript when the pipeline dies
	// before any dialogue exists.
	failurePlaceholder = "Failed to generate podcast"
)

type podcastPipeline struct {
	aggregator   inbound.ContentAggregatorPort
	scriptWriter inbound.ScriptWriterPort
	synthesizer  inbound.VoiceSynthesizerPort
	assembler    inbound.AudioAssemblerPort
	logger       outbound.LoggerPort
}

func NewPodcastPipeline(
	aggregator inbound.ContentAggregatorPort,
	scriptWriter inbound.ScriptWriterPort,
	synthesizer inbound.VoiceSynthesizerPort,
	assembler inbound.AudioAssemblerPort,
	logger outbound.LoggerPort) inbound.GenerationFlowPort {
	return &podcastPipeline{
		aggregator:   aggregator,
		scriptWriter: scriptWriter,
		synthesizer:  synthesizer,
		assembler:    assembler,
		logger:       logger,
	}
}

func (p *podcastPipeline) FlowType() string {
	return podcastFlowType
}

func (p *podcastPipeline) Info() inbound.FlowInfo {
	return inbound.FlowInfo{
		Description:         "Generates a podcast-style conversation between a host and a guest based on educational content",
		RequiredCredentials: []string{"SPEECH_API_KEY", "CHAT_API_KEY"},
		OutputFormat:        "mp3",
	}
}

// Process runs the stages in order and is the flow's failure boundary:
// every stage error and every panic comes back as a failure result, and the
// per-run work directory is gone on every exit path.
func (p *podcastPipeline) Process(ctx context.Context, sources []domain.Source, genCtx domain.GenerationContext) (result domain.PipelineResult) {
	runID := uuid.NewString()[:8]
	topic := genCtx.Topic
	if topic == "" {
		topic = defaultTopic
	}

	var script domain.DialogueScript
	var workDir string

	defer func() {
		if workDir != "" {
			if err := os.RemoveAll(workDir); err != nil {
				p.logger.ErrorWithFields(err, "Failed to remove segment work directory", map[string]interface{}{
					"run_id": runID,
					"dir":    workDir,
				})
			}
		}
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			p.logger.ErrorWithFields(err, "Podcast pipeline panicked", map[string]interface{}{
				"run_id": runID,
				"topic":  topic,
			})
			result = domain.NewFailureResult(podcastFlowType, len(sources), transcriptOrPlaceholder(script), err.Error(), string(debug.Stack()))
		}
	}()

	p.logger.InfoWithFields("Starting podcast generation", map[string]interface{}{
		"run_id":  runID,
		"topic":   topic,
		"sources": len(sources),
	})

	workDir, err := os.MkdirTemp("", "podcast_segments_")
	if err != nil {
		p.logger.Error(err, "Failed to create segment work directory")
		return domain.NewFailureResult(podcastFlowType, len(sources), failurePlaceholder, err.Error(), "")
	}

	aggregated := p.aggregator.Aggregate(ctx, sources, topic)
	p.logger.DebugWithFields("Content aggregated", map[string]interface{}{
		"run_id": runID,
		"title":  aggregated.Title,
		"chars":  len(aggregated.Content),
	})

	script = p.scriptWriter.WriteScript(ctx, aggregated.Content, topic)

	segments := p.synthesizer.Synthesize(ctx, script, workDir)
	if len(segments) < len(script) {
		p.logger.WarnWithFields("Some dialogue lines were not synthesized", map[string]interface{}{
			"run_id":      runID,
			"script_len":  len(script),
			"synthesized": len(segments),
		})
	}

	artifact, err := p.assembler.Assemble(ctx, inbound.AssembleAudioParams{
		Segments: segments,
		Topic:    topic,
		VoiceIDs: script.VoiceIDs(),
		WorkDir:  workDir,
		RunID:    runID,
	})
	if err != nil {
		p.logger.ErrorWithFields(err, "Podcast assembly failed", map[string]interface{}{
			"run_id": runID,
			"topic":  topic,
		})
		return domain.NewFailureResult(podcastFlowType, len(sources), script.Transcript(), err.Error(), muxDiagnostics(err))
	}

	p.logger.InfoWithFields("Podcast generated", map[string]interface{}{
		"run_id":   runID,
		"file":     artifact.FilePath,
		"segments": len(segments),
		"duration": artifact.DurationSeconds,
	})

	return domain.NewSuccessResult(podcastFlowType, len(sources), script.Transcript(), len(segments), *artifact)
}

func transcriptOrPlaceholder(script domain.DialogueScript) string {
	if len(script) == 0 {
		return failurePlaceholder
	}
	return script.Transcript()
}

func muxDiagnostics(err error) string {
	var muxErr *outbound.MuxError
	if errors.As(err, &muxErr) {
		return muxErr.Output
	}
	return ""
}
