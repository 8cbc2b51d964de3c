package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"podcast-generation-service/application/flows"
	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/application/services"
	"podcast-generation-service/config"
	"podcast-generation-service/infrastructure/adapters"
	"podcast-generation-service/infrastructure/gin_interface/controllers"
	"podcast-generation-service/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, reading configuration from the environment")
	}

	chatConfig, err := config.GetChatConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get chat config")
	}

	speechConfig, err := config.GetSpeechConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get speech config")
	}

	audioConfig := config.GetAudioConfig()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithNonblocking(true), ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	chatCompleter := adapters.NewOpenAIChatCompleter(chatConfig, zeroLogger)

	var speechSynthesizer outbound.SpeechSynthesizerPort
	if speechConfig.UseStub {
		zeroLogger.Warn("Using the stub speech synthesizer, no real audio will be produced")
		speechSynthesizer = adapters.NewStubSpeechSynthesizer(zeroLogger)
	} else {
		contentFetcher := adapters.NewContentFetcher(&http.Client{Timeout: 60 * time.Second}, zeroLogger)
		speechSynthesizer = adapters.NewElevenLabsSpeechSynthesizer(contentFetcher, speechConfig, zeroLogger)
	}

	audioMuxer := adapters.NewFfmpegAudioMuxer(audioConfig, zeroLogger)
	durationProber := adapters.NewFfmpegDurationProber(audioConfig, zeroLogger)

	contentAggregator := services.NewContentAggregator(chatCompleter, zeroLogger)
	scriptWriter := services.NewScriptWriter(chatCompleter, zeroLogger, speechConfig.HostVoiceId, speechConfig.GuestVoiceId)
	voiceSynthesizer := services.NewVoiceSynthesizer(speechSynthesizer, zeroLogger)
	audioAssembler := services.NewAudioAssembler(audioMuxer, durationProber, zeroLogger, audioConfig.OutputDir)

	podcastFlow := services.NewPodcastPipeline(contentAggregator, scriptWriter, voiceSynthesizer, audioAssembler, zeroLogger)

	registry := flows.NewRegistry()
	if err := registry.Register(podcastFlow, "content"); err != nil {
		log.Fatal().Err(err).Msg("Failed to register the podcast flow")
	}

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.RequestLogger(zeroLogger))

	flowController := controllers.NewFlowController(zeroLogger, registry, workerPool)
	flowController.RegisterRoutes(router)

	zeroLogger.InfoWithFields("Server starting", map[string]interface{}{
		"port":  serverConfig.Port,
		"flows": len(registry.Describe()),
	})

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
