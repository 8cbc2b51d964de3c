package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/config"
)

func testSpeechConfig(apiUrl string) *config.SpeechConfig {
	return &config.SpeechConfig{
		ApiUrl:          apiUrl,
		ApiKey:          "test-speech-key",
		ModelId:         "eleven_multilingual_v2",
		Stability:       0.5,
		SimilarityBoost: 0.75,
	}
}

func TestElevenLabsSpeechSynthesizer_Synthesize(t *testing.T) {
	var gotPath string
	var gotHeaders http.Header
	var gotBody ElevenLabsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Error("failed to decode request body:", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		if _, err := w.Write([]byte("mp3-bytes")); err != nil {
			t.Error("failed to write response:", err)
		}
	}))
	defer server.Close()

	logger := NewZerologWrapperTo(io.Discard)
	synthesizer := NewElevenLabsSpeechSynthesizer(NewContentFetcher(server.Client(), logger), testSpeechConfig(server.URL), logger)

	body, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:    "Welcome to the show.",
		VoiceID: "host-voice",
	})
	if err != nil {
		t.Fatal("failed to synthesize speech:", err)
	}
	payload, err := io.ReadAll(body)
	if err != nil {
		t.Fatal("failed to read audio stream:", err)
	}
	if err := body.Close(); err != nil {
		t.Fatal("failed to close audio stream:", err)
	}

	if string(payload) != "mp3-bytes" {
		t.Fatal("unexpected audio payload:", string(payload))
	}
	if gotPath != "/host-voice" {
		t.Fatal("voice ID missing from the request path:", gotPath)
	}
	if gotHeaders.Get("xi-api-key") != "test-speech-key" {
		t.Fatal("API key header not set")
	}
	if gotHeaders.Get("Accept") != "audio/mpeg" {
		t.Fatal("Accept header not set:", gotHeaders.Get("Accept"))
	}
	if gotHeaders.Get("Content-Type") != "application/json" {
		t.Fatal("Content-Type header not set:", gotHeaders.Get("Content-Type"))
	}
	if gotBody.Text != "Welcome to the show." {
		t.Fatal("unexpected text in request body:", gotBody.Text)
	}
	if gotBody.ModelId != "eleven_multilingual_v2" {
		t.Fatal("unexpected model in request body:", gotBody.ModelId)
	}
	if gotBody.VoiceSettings.Stability != 0.5 || gotBody.VoiceSettings.SimilarityBoost != 0.75 {
		t.Fatalf("unexpected voice settings: %+v", gotBody.VoiceSettings)
	}
}

func TestElevenLabsSpeechSynthesizer_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	logger := NewZerologWrapperTo(io.Discard)
	synthesizer := NewElevenLabsSpeechSynthesizer(NewContentFetcher(server.Client(), logger), testSpeechConfig(server.URL), logger)

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:    "Welcome to the show.",
		VoiceID: "host-voice",
	})
	if err == nil {
		t.Fatal("expected an error for a non-OK response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatal("status code missing from the error:", err)
	}
}
