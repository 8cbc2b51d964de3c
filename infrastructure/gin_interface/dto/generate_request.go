package dto

import (
	"podcast-generation-service/domain"
)

type SourcePayload struct {
	Content string `json:"content" binding:"required"`
	Title   string `json:"title"`
}

type GenerateRequest struct {
	Sources []SourcePayload   `json:"sources" binding:"required,min=1,dive"`
	Context map[string]string `json:"context"`
}

// ToDomain maps the wire request onto the flow's input types. The "topic"
// context key is lifted out; everything else rides along untouched.
func (r GenerateRequest) ToDomain() ([]domain.Source, domain.GenerationContext) {
	sources := make([]domain.Source, 0, len(r.Sources))
	for _, source := range r.Sources {
		sources = append(sources, domain.Source{
			Content: source.Content,
			Title:   source.Title,
		})
	}

	genCtx := domain.GenerationContext{
		Topic: r.Context["topic"],
	}
	for key, value := range r.Context {
		if key == "topic" {
			continue
		}
		if genCtx.Extra == nil {
			genCtx.Extra = make(map[string]string)
		}
		genCtx.Extra[key] = value
	}

	return sources, genCtx
}
