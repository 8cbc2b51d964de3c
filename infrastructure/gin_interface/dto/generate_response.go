package dto

import (
	"time"

	"podcast-generation-service/domain"
)

type ResultMetadata struct {
	DurationSeconds float64  `json:"duration_seconds"`
	Format          string   `json:"format"`
	VoicesUsed      []string `json:"voices_used"`
	GeneratedAt     string   `json:"generated_at"`
}

type GenerateResponse struct {
	Status           string          `json:"status"`
	FlowType         string          `json:"flow_type"`
	SourcesFound     int             `json:"sources_found"`
	Transcript       string          `json:"transcript"`
	DialogueSegments int             `json:"dialogue_segments"`
	AudioOutput      string          `json:"audio_output,omitempty"`
	Metadata         *ResultMetadata `json:"metadata,omitempty"`
	Error            string          `json:"error,omitempty"`
	Diagnostics      string          `json:"diagnostics,omitempty"`
}

func NewGenerateResponse(result domain.PipelineResult) GenerateResponse {
	response := GenerateResponse{
		Status:           string(result.Status),
		FlowType:         result.FlowType,
		SourcesFound:     result.SourcesFound,
		Transcript:       result.Transcript,
		DialogueSegments: result.SegmentCount,
		Error:            result.ErrorMessage,
		Diagnostics:      result.Diagnostics,
	}
	if result.Artifact != nil {
		response.AudioOutput = result.Artifact.FilePath
		response.Metadata = &ResultMetadata{
			DurationSeconds: result.Artifact.DurationSeconds,
			Format:          "mp3",
			VoicesUsed:      result.Artifact.VoiceIDsUsed,
			GeneratedAt:     result.Artifact.GeneratedAt.Format(time.RFC3339),
		}
	}
	return response
}
