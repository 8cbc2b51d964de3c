package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"podcast-generation-service/application/ports/inbound"
	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/domain"
)

const (
	assistantSystemPrompt = "You are a helpful assistant."

	promptContentRunes = 3000
	fallbackEchoRunes  = 200
)

// topicExtensions are filename suffixes stripped from the topic before it is
// handed to the model, so an uploaded document's name is not read aloud as
// the episode title.
var topicExtensions = map[string]struct{}{
	".pdf":  {},
	".txt":  {},
	".md":   {},
	".doc":  {},
	".docx": {},
	".epub": {},
	".html": {},
}

type dialogueLinePayload struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

type scriptWriter struct {
	chatCompleter outbound.ChatCompleterPort
	logger        outbound.LoggerPort
	hostVoiceID   string
	guestVoiceID  string
}

func NewScriptWriter(chatCompleter outbound.ChatCompleterPort, logger outbound.LoggerPort, hostVoiceID string, guestVoiceID string) inbound.ScriptWriterPort {
	return &scriptWriter{
		chatCompleter: chatCompleter,
		logger:        logger,
		hostVoiceID:   hostVoiceID,
		guestVoiceID:  guestVoiceID,
	}
}

func (w *scriptWriter) WriteScript(ctx context.Context, content string, topic string) domain.DialogueScript {
	topic = stripTopicExtension(topic)

	raw, err := w.chatCompleter.Complete(ctx, outbound.ChatCompletionParams{
		System:      assistantSystemPrompt,
		Prompt:      w.dialoguePrompt(content, topic),
		Temperature: 0.5,
		MaxTokens:   1500,
	})
	if err != nil {
		w.logger.WarnWithFields("Dialogue generation failed, using fallback script", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return w.fallbackScript(content, topic)
	}

	script, err := w.parseDialogue(raw)
	if err != nil {
		w.logger.WarnWithFields("Could not parse dialogue output, using fallback script", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return w.fallbackScript(content, topic)
	}

	return script
}

func (w *scriptWriter) dialoguePrompt(content string, topic string) string {
	return fmt.Sprintf(
		"You are a podcast script writer. Given the following content, "+
			"generate a podcast-style conversation between a Host and a Guest. "+
			"The conversation should be informative, engaging, and cover the main points. "+
			"The topic is: %s. "+
			"The Host should introduce the topic by its proper title, not as a filename. "+
			"Make the introduction natural and engaging, as if this were a real educational podcast. "+
			"Return a **valid JSON list** of dictionaries. Each dictionary must have keys: 'speaker', 'text', 'voice_id'. "+
			"Use this voice_id for Host: %s, and this for Guest: %s. "+
			"Use only double quotes (\") for all keys and values. Do not wrap the output in markdown or code blocks.\n\n"+
			"Content:\n%s\n\n"+
			"Podcast Dialogue:",
		topic, w.hostVoiceID, w.guestVoiceID, truncateRunes(content, promptContentRunes))
}

func (w *scriptWriter) parseDialogue(raw string) (domain.DialogueScript, error) {
	cleaned := stripCodeFence(raw)

	var payload []dialogueLinePayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("dialogue output is not a JSON list: %w", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("dialogue output is an empty list")
	}

	script := make(domain.DialogueScript, 0, len(payload))
	for i, line := range payload {
		speaker, err := parseSpeaker(line.Speaker)
		if err != nil {
			return nil, fmt.Errorf("dialogue line %d: %w", i, err)
		}
		if line.Text == "" {
			return nil, fmt.Errorf("dialogue line %d has no text", i)
		}
		if line.VoiceID == "" {
			return nil, fmt.Errorf("dialogue line %d has no voice_id", i)
		}
		script = append(script, domain.NewDialogueLine(speaker, line.Text, line.VoiceID))
	}
	return script, nil
}

// fallbackScript is the fixed dialogue used when the model's output cannot be
// parsed. It needs no external calls, so a usable script always exists.
func (w *scriptWriter) fallbackScript(content string, topic string) domain.DialogueScript {
	return domain.DialogueScript{
		domain.NewDialogueLine(domain.HostSpeaker, fmt.Sprintf("Welcome to this educational podcast about %s.", topic), w.hostVoiceID),
		domain.NewDialogueLine(domain.GuestSpeaker, "Thank you for having me. I'm excited to discuss this topic.", w.guestVoiceID),
		domain.NewDialogueLine(domain.HostSpeaker, "Let's start with the basics. Could you give our listeners an overview?", w.hostVoiceID),
		domain.NewDialogueLine(domain.GuestSpeaker, fmt.Sprintf("Certainly. %s...", truncateRunes(content, fallbackEchoRunes)), w.guestVoiceID),
		domain.NewDialogueLine(domain.HostSpeaker, "That's fascinating. What are some practical applications of this knowledge?", w.hostVoiceID),
		domain.NewDialogueLine(domain.GuestSpeaker, "There are several applications worth discussing...", w.guestVoiceID),
	}
}

func parseSpeaker(raw string) (domain.Speaker, error) {
	switch domain.Speaker(raw) {
	case domain.HostSpeaker:
		return domain.HostSpeaker, nil
	case domain.GuestSpeaker:
		return domain.GuestSpeaker, nil
	default:
		return "", fmt.Errorf("unknown speaker %q", raw)
	}
}

// stripCodeFence removes a markdown code fence and an optional json language
// tag that models add despite instructions not to.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimSpace(strings.Trim(cleaned, "`"))
	if len(cleaned) >= 4 && strings.EqualFold(cleaned[:4], "json") {
		cleaned = strings.TrimSpace(cleaned[4:])
	}
	return cleaned
}

func stripTopicExtension(topic string) string {
	ext := strings.ToLower(filepath.Ext(topic))
	if _, ok := topicExtensions[ext]; ok {
		return topic[:len(topic)-len(ext)]
	}
	return topic
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
