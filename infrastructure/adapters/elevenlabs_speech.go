package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/config"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsSpeechSynthesizer struct {
	ContentFetcher
	speechConfig *config.SpeechConfig
	logger       outbound.LoggerPort
}

func NewElevenLabsSpeechSynthesizer(contentFetcher ContentFetcher, speechConfig *config.SpeechConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSpeechSynthesizer{
		ContentFetcher: contentFetcher,
		speechConfig:   speechConfig,
		logger:         logger,
	}
}

func (s *elevenLabsSpeechSynthesizer) Synthesize(ctx context.Context, synthesizeReq outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	req, err := s.getRequest(ctx, synthesizeReq.Text, synthesizeReq.VoiceID)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to construct the HTTP request for speech synthesis", map[string]interface{}{
			"voice_id": synthesizeReq.VoiceID,
		})
		return nil, err
	}

	return s.FetchStream(req)
}

func (s *elevenLabsSpeechSynthesizer) getRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelId: s.speechConfig.ModelId,
		VoiceSettings: VoiceSettings{
			Stability:       s.speechConfig.Stability,
			SimilarityBoost: s.speechConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body for the speech service")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.speechConfig.ApiUrl+"/"+voiceID, bytes.NewBuffer(jsonPayload))
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to create the HTTP POST request", map[string]interface{}{
			"URL": s.speechConfig.ApiUrl + "/" + voiceID,
		})
		return nil, err
	}

	reqHeaders := map[string]string{
		"Accept":       "audio/mpeg",
		"xi-api-key":   s.speechConfig.ApiKey,
		"Content-Type": "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
