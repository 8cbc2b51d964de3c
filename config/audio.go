package config

import (
	"os"
)

type AudioConfig struct {
	OutputDir   string
	FfmpegPath  string
	FfprobePath string
}

func GetAudioConfig() *AudioConfig {
	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "uploads"
	}
	ffmpegPath := os.Getenv("FFMPEG_PATH")
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	ffprobePath := os.Getenv("FFPROBE_PATH")
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &AudioConfig{
		OutputDir:   outputDir,
		FfmpegPath:  ffmpegPath,
		FfprobePath: ffprobePath,
	}
}
