package domain

import (
	"fmt"
	"strings"
	"time"
)

type Speaker string

const (
	HostSpeaker  Speaker = "Host"
	GuestSpeaker Speaker = "Guest"
)

type Source struct {
	Content string
	Title   string
}

type GenerationContext struct {
	Topic string
	Extra map[string]string
}

func NewDialogueLine(speaker Speaker, text string, voiceID string) DialogueLine {
	return DialogueLine{
		Speaker: speaker,
		Text:    text,
		VoiceID: voiceID,
	}
}

type DialogueLine struct {
	Speaker Speaker
	Text    string
	VoiceID string
}

type DialogueScript []DialogueLine

// Transcript renders the script as speaker-labeled markdown, one line per
// utterance, in conversational order.
func (s DialogueScript) Transcript() string {
	var sb strings.Builder
	sb.WriteString("# Podcast Transcript\n\n")
	for _, line := range s {
		sb.WriteString(fmt.Sprintf("**%s**: %s\n\n", line.Speaker, line.Text))
	}
	return sb.String()
}

// VoiceIDs returns the distinct voice identifiers in first-appearance order.
func (s DialogueScript) VoiceIDs() []string {
	seen := make(map[string]struct{}, 2)
	ids := make([]string, 0, 2)
	for _, line := range s {
		if _, ok := seen[line.VoiceID]; ok {
			continue
		}
		seen[line.VoiceID] = struct{}{}
		ids = append(ids, line.VoiceID)
	}
	return ids
}

type AudioSegment struct {
	Index    int
	FilePath string
}

type PodcastArtifact struct {
	FilePath        string
	DurationSeconds float64
	VoiceIDsUsed    []string
	GeneratedAt     time.Time
}

type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusFailure ResultStatus = "failure"
)

// PipelineResult is the single value a generation flow hands back to its
// caller. Failures are represented here, never as panics across the flow
// boundary.
type PipelineResult struct {
	Status       ResultStatus
	FlowType     string
	SourcesFound int
	Transcript   string
	SegmentCount int
	Artifact     *PodcastArtifact
	ErrorMessage string
	Diagnostics  string
}

func NewSuccessResult(flowType string, sourcesFound int, transcript string, segmentCount int, artifact PodcastArtifact) PipelineResult {
	return PipelineResult{
		Status:       StatusSuccess,
		FlowType:     flowType,
		SourcesFound: sourcesFound,
		Transcript:   transcript,
		SegmentCount: segmentCount,
		Artifact:     &artifact,
	}
}

func NewFailureResult(flowType string, sourcesFound int, transcript string, errorMessage string, diagnostics string) PipelineResult {
	return PipelineResult{
		Status:       StatusFailure,
		FlowType:     flowType,
		SourcesFound: sourcesFound,
		Transcript:   transcript,
		ErrorMessage: errorMessage,
		Diagnostics:  diagnostics,
	}
}

func (r PipelineResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}
