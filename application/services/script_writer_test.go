package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"podcast-generation-service/domain"
)

func TestScriptWriter_WriteScript_ParsesModelOutput(t *testing.T) {
	payload := `[
		{"speaker": "Host", "text": "Welcome everyone.", "voice_id": "host-voice"},
		{"speaker": "Guest", "text": "Happy to be here.", "voice_id": "guest-voice"}
	]`
	chat := &fakeChatCompleter{response: payload}
	writer := NewScriptWriter(chat, testLogger(), "host-voice", "guest-voice")

	script := writer.WriteScript(context.Background(), "Climate content.", "climate change")

	if len(script) != 2 {
		t.Fatal("expected two dialogue lines, got:", len(script))
	}
	if script[0].Speaker != domain.HostSpeaker || script[0].Text != "Welcome everyone." || script[0].VoiceID != "host-voice" {
		t.Fatalf("unexpected first line: %+v", script[0])
	}
	if script[1].Speaker != domain.GuestSpeaker || script[1].VoiceID != "guest-voice" {
		t.Fatalf("unexpected second line: %+v", script[1])
	}
	if len(chat.calls) != 1 {
		t.Fatal("expected a single completion call, got:", len(chat.calls))
	}
	call := chat.calls[0]
	if call.Temperature != 0.5 || call.MaxTokens != 1500 {
		t.Fatalf("unexpected sampling parameters: temperature=%v maxTokens=%d", call.Temperature, call.MaxTokens)
	}
	if !strings.Contains(call.Prompt, "The topic is: climate change") {
		t.Fatal("dialogue prompt lost the topic:", call.Prompt)
	}
}

func TestScriptWriter_WriteScript_StripsCodeFence(t *testing.T) {
	fenced := []string{
		"```json\n[{\"speaker\": \"Host\", \"text\": \"Hello.\", \"voice_id\": \"host-voice\"}]\n```",
		"```\n[{\"speaker\": \"Host\", \"text\": \"Hello.\", \"voice_id\": \"host-voice\"}]\n```",
	}
	for _, response := range fenced {
		chat := &fakeChatCompleter{response: response}
		writer := NewScriptWriter(chat, testLogger(), "host-voice", "guest-voice")

		script := writer.WriteScript(context.Background(), "content", "topic")

		if len(script) != 1 || script[0].Text != "Hello." {
			t.Fatalf("fenced response %q did not parse: %+v", response, script)
		}
	}
}

func TestScriptWriter_WriteScript_FallbackOnNonJSON(t *testing.T) {
	chat := &fakeChatCompleter{response: "Sorry, I cannot produce JSON today."}
	writer := NewScriptWriter(chat, testLogger(), "host-voice", "guest-voice")

	script := writer.WriteScript(context.Background(), "Climate change causes shifts in weather patterns.", "climate change")

	if len(script) != 6 {
		t.Fatal("expected the six-line fallback script, got:", len(script))
	}
	if script[0].Text != "Welcome to this educational podcast about climate change." {
		t.Fatal("unexpected fallback opener:", script[0].Text)
	}
	for i, line := range script {
		wantSpeaker := domain.HostSpeaker
		wantVoice := "host-voice"
		if i%2 == 1 {
			wantSpeaker = domain.GuestSpeaker
			wantVoice = "guest-voice"
		}
		if line.Speaker != wantSpeaker {
			t.Fatalf("line %d: expected speaker %s, got %s", i, wantSpeaker, line.Speaker)
		}
		if line.VoiceID != wantVoice {
			t.Fatalf("line %d: expected voice %s, got %s", i, wantVoice, line.VoiceID)
		}
	}
	if !strings.Contains(script[3].Text, "Climate change causes shifts") {
		t.Fatal("fallback script lost the content echo:", script[3].Text)
	}
}

func TestScriptWriter_WriteScript_FallbackOnChatError(t *testing.T) {
	chat := &fakeChatCompleter{err: errors.New("model unavailable")}
	writer := NewScriptWriter(chat, testLogger(), "host-voice", "guest-voice")

	script := writer.WriteScript(context.Background(), "content", "climate change")

	if len(script) != 6 {
		t.Fatal("expected the fallback script after a chat failure, got:", len(script))
	}
	if len(chat.calls) != 1 {
		t.Fatal("a failed completion must not be retried, got calls:", len(chat.calls))
	}
}

func TestScriptWriter_WriteScript_FallbackOnInvalidPayload(t *testing.T) {
	invalid := map[string]string{
		"missing voice_id": `[{"speaker": "Host", "text": "Hello."}]`,
		"unknown speaker":  `[{"speaker": "Narrator", "text": "Hello.", "voice_id": "host-voice"}]`,
		"empty text":       `[{"speaker": "Host", "text": "", "voice_id": "host-voice"}]`,
		"empty list":       `[]`,
		"not a list":       `{"speaker": "Host", "text": "Hello.", "voice_id": "host-voice"}`,
	}
	for name, response := range invalid {
		chat := &fakeChatCompleter{response: response}
		writer := NewScriptWriter(chat, testLogger(), "host-voice", "guest-voice")

		script := writer.WriteScript(context.Background(), "content", "topic")

		if len(script) != 6 {
			t.Fatalf("%s: expected the fallback script, got %d lines", name, len(script))
		}
	}
}

func TestScriptWriter_WriteScript_StripsTopicExtension(t *testing.T) {
	chat := &fakeChatCompleter{response: "not json"}
	writer := NewScriptWriter(chat, testLogger(), "host-voice", "guest-voice")

	script := writer.WriteScript(context.Background(), "content", "climate change.pdf")

	if script[0].Text != "Welcome to this educational podcast about climate change." {
		t.Fatal("topic extension leaked into the fallback script:", script[0].Text)
	}
	if !strings.Contains(chat.calls[0].Prompt, "The topic is: climate change. ") {
		t.Fatal("topic extension leaked into the prompt")
	}
}

func TestScriptWriter_WriteScript_CapsPromptContent(t *testing.T) {
	chat := &fakeChatCompleter{response: "not json"}
	writer := NewScriptWriter(chat, testLogger(), "host-voice", "guest-voice")

	writer.WriteScript(context.Background(), strings.Repeat("z", 3500), "topic")

	if got := strings.Count(chat.calls[0].Prompt, "z"); got != 3000 {
		t.Fatal("expected prompt content capped at 3000 characters, got:", got)
	}
}

func TestScriptWriter_WriteScript_CapsFallbackEcho(t *testing.T) {
	chat := &fakeChatCompleter{response: "not json"}
	writer := NewScriptWriter(chat, testLogger(), "host-voice", "guest-voice")

	script := writer.WriteScript(context.Background(), strings.Repeat("w", 300), "topic")

	echo := script[3].Text
	if got := strings.Count(echo, "w"); got != 200 {
		t.Fatal("expected the content echo capped at 200 characters, got:", got)
	}
	if !strings.HasSuffix(echo, "...") {
		t.Fatal("expected an ellipsis after the truncated echo:", echo)
	}
}
