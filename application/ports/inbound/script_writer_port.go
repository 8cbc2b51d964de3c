package inbound

import (
	"context"
	"podcast-generation-service/domain"
)

// ScriptWriterPort turns content and a topic into a two-speaker dialogue.
// The returned script always has at least one line: unparseable model output
// yields the fixed fallback script instead of an error.
type ScriptWriterPort interface {
	WriteScript(ctx context.Context, content string, topic string) domain.DialogueScript
}
