package config

import (
	"fmt"
	"os"
	"strconv"
)

type SpeechConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	HostVoiceId     string
	GuestVoiceId    string
	Stability       float64
	SimilarityBoost float64
	UseStub         bool
}

func GetSpeechConfig() (*SpeechConfig, error) {
	useStub := os.Getenv("SPEECH_STUB") == "true"
	apiKey := os.Getenv("SPEECH_API_KEY")
	if apiKey == "" && !useStub {
		return nil, fmt.Errorf("SPEECH_API_KEY must be set")
	}
	apiUrl := os.Getenv("SPEECH_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.elevenlabs.io/v1/text-to-speech"
	}
	modelId := os.Getenv("SPEECH_MODEL_ID")
	if modelId == "" {
		modelId = "eleven_multilingual_v2"
	}
	hostVoiceId := os.Getenv("HOST_VOICE_ID")
	if hostVoiceId == "" {
		hostVoiceId = "JBFqnCBsd6RMkjVDRZzb"
	}
	guestVoiceId := os.Getenv("GUEST_VOICE_ID")
	if guestVoiceId == "" {
		guestVoiceId = "EXAVITQu4vr4xnSDxMaL"
	}
	stability, err := floatEnv("SPEECH_STABILITY", 0.5)
	if err != nil {
		return nil, err
	}
	similarityBoost, err := floatEnv("SPEECH_SIMILARITY_BOOST", 0.5)
	if err != nil {
		return nil, err
	}
	return &SpeechConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		ModelId:         modelId,
		HostVoiceId:     hostVoiceId,
		GuestVoiceId:    guestVoiceId,
		Stability:       stability,
		SimilarityBoost: similarityBoost,
		UseStub:         useStub,
	}, nil
}

func floatEnv(name string, fallback float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s", name)
	}
	return val, nil
}
