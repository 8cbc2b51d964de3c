package flows

import (
	"context"
	"strings"
	"testing"

	"podcast-generation-service/application/ports/inbound"
	"podcast-generation-service/domain"
)

type stubFlow struct {
	flowType string
}

func (s *stubFlow) FlowType() string {
	return s.flowType
}

func (s *stubFlow) Info() inbound.FlowInfo {
	return inbound.FlowInfo{
		Description:  "stub flow for " + s.flowType,
		OutputFormat: "mp3",
	}
}

func (s *stubFlow) Process(_ context.Context, sources []domain.Source, _ domain.GenerationContext) domain.PipelineResult {
	return domain.NewSuccessResult(s.flowType, len(sources), "", 0, domain.PodcastArtifact{})
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	flow := &stubFlow{flowType: "podcast"}

	if err := registry.Register(flow, "content"); err != nil {
		t.Fatal("failed to register flow:", err)
	}

	got, ok := registry.Get("podcast")
	if !ok {
		t.Fatal("registered flow not found")
	}
	if got.FlowType() != "podcast" {
		t.Fatal("registry returned the wrong flow:", got.FlowType())
	}
	if _, ok := registry.Get("summary"); ok {
		t.Fatal("unregistered flow type should not resolve")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubFlow{flowType: "podcast"}, "content"); err != nil {
		t.Fatal("failed to register flow:", err)
	}

	err := registry.Register(&stubFlow{flowType: "podcast"}, "content")
	if err == nil {
		t.Fatal("expected an error for a duplicate flow type")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatal("unexpected duplicate error:", err)
	}
}

func TestRegistry_RejectsEmptyFlowType(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubFlow{}, "content"); err == nil {
		t.Fatal("expected an error for an empty flow type")
	}
}

func TestRegistry_Describe(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubFlow{flowType: "podcast"}, "content"); err != nil {
		t.Fatal("failed to register flow:", err)
	}
	if err := registry.Register(&stubFlow{flowType: "audiobook"}, "content"); err != nil {
		t.Fatal("failed to register flow:", err)
	}

	descriptions := registry.Describe()
	if len(descriptions) != 2 {
		t.Fatal("expected two descriptions, got:", len(descriptions))
	}
	if descriptions[0].FlowType != "audiobook" || descriptions[1].FlowType != "podcast" {
		t.Fatalf("descriptions are not sorted by flow type: %+v", descriptions)
	}
	if descriptions[1].Category != "content" {
		t.Fatal("category was not recorded:", descriptions[1].Category)
	}
	if descriptions[1].Info.OutputFormat != "mp3" {
		t.Fatal("flow info was not captured:", descriptions[1].Info)
	}
}
