package inbound

import (
	"context"
	"podcast-generation-service/domain"
)

type AggregatedContent struct {
	Content string
	Title   string
}

// ContentAggregatorPort merges source texts and resolves an episode title.
// It cannot fail the pipeline: every resolver miss falls through to the next
// strategy, ending at the caller-supplied topic.
type ContentAggregatorPort interface {
	Aggregate(ctx context.Context, sources []domain.Source, topic string) AggregatedContent
}
