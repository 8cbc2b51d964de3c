package services

import (
	"context"
	"fmt"
	"strings"

	"podcast-generation-service/application/ports/inbound"
	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/domain"
)

const titleExcerptRunes = 1000

// titleResolver is one strategy in the title resolution chain. An empty
// result means the strategy has nothing to offer and the next one is tried.
type titleResolver struct {
	name    string
	resolve func(ctx context.Context, sources []domain.Source, content string, topic string) string
}

type contentAggregator struct {
	chatCompleter outbound.ChatCompleterPort
	logger        outbound.LoggerPort
	resolvers     []titleResolver
}

func NewContentAggregator(chatCompleter outbound.ChatCompleterPort, logger outbound.LoggerPort) inbound.ContentAggregatorPort {
	a := &contentAggregator{
		chatCompleter: chatCompleter,
		logger:        logger,
	}
	a.resolvers = []titleResolver{
		{name: "source_title", resolve: a.titleFromSources},
		{name: "leading_line", resolve: a.titleFromLeadingLines},
		{name: "chat_model", resolve: a.titleFromModel},
		{name: "topic", resolve: a.titleFromTopic},
	}
	return a
}

func (a *contentAggregator) Aggregate(ctx context.Context, sources []domain.Source, topic string) inbound.AggregatedContent {
	var sb strings.Builder
	for _, source := range sources {
		sb.WriteString(source.Content)
	}
	content := sb.String()

	var title string
	for _, resolver := range a.resolvers {
		if title = resolver.resolve(ctx, sources, content, topic); title != "" {
			a.logger.DebugWithFields("Resolved episode title", map[string]interface{}{
				"strategy": resolver.name,
				"title":    title,
			})
			break
		}
	}

	return inbound.AggregatedContent{
		Content: content,
		Title:   title,
	}
}

func (a *contentAggregator) titleFromSources(_ context.Context, sources []domain.Source, _ string, _ string) string {
	for _, source := range sources {
		if title := strings.TrimSpace(source.Title); title != "" {
			return title
		}
	}
	return ""
}

// titleFromLeadingLines scans the first five lines for something that looks
// like a heading: short enough, long enough, no terminal punctuation.
func (a *contentAggregator) titleFromLeadingLines(_ context.Context, _ []domain.Source, content string, _ string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		length := len([]rune(line))
		if length <= 3 || length >= 100 {
			continue
		}
		if strings.ContainsAny(line[len(line)-1:], ".:;,?!") {
			continue
		}
		return line
	}
	return ""
}

func (a *contentAggregator) titleFromModel(ctx context.Context, _ []domain.Source, content string, _ string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	title, err := a.chatCompleter.Complete(ctx, outbound.ChatCompletionParams{
		System:      assistantSystemPrompt,
		Prompt:      fmt.Sprintf("Extract the title or main topic from this text. Respond with ONLY the title, nothing else:\n\n%s", truncateRunes(content, titleExcerptRunes)),
		Temperature: 0.3,
		MaxTokens:   50,
	})
	if err != nil {
		a.logger.WarnWithFields("Title extraction call failed, falling through", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}
	return strings.TrimSpace(title)
}

func (a *contentAggregator) titleFromTopic(_ context.Context, _ []domain.Source, _ string, topic string) string {
	return topic
}
