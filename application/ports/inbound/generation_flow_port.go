package inbound

import (
	"context"
	"podcast-generation-service/domain"
)

type FlowInfo struct {
	Description         string
	RequiredCredentials []string
	OutputFormat        string
}

// GenerationFlowPort is the contract every registered content flow exposes to
// callers. Process never panics past this boundary; failures come back as a
// failure-status result.
type GenerationFlowPort interface {
	FlowType() string
	Info() FlowInfo
	Process(ctx context.Context, sources []domain.Source, genCtx domain.GenerationContext) domain.PipelineResult
}
