package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"normativa/internal/model"
	"normativa/internal/telemetry"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Store.Driver = "memory"
	return cfg
}

func testData() model.ReglamentoData {
	return model.ReglamentoData{
		RazonSocial:     "Servicios Australes SpA",
		RutEmpresa:      "76.987.654-3",
		Giro:            "consultoría en gestión",
		Email:           "contacto@australes.cl",
		NumTrabajadores: "10-25",
		CategoriaRiesgo: "servicios_oficina",
		JornadaGeneral:  "44 horas semanales de lunes a viernes",
		TrabajoRemoto:   "no",
		UsoEPP:          "no",
		ComiteParitario: "no",
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	store := telemetry.NewMemory()
	p := NewPipeline(testConfig(), store, zap.NewNop())

	result, err := p.Generate(context.Background(), testData())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if result.EventID == "" {
		t.Error("expected a telemetry event id")
	}
	if result.Outcome.Passes != 2 {
		t.Errorf("expected 2 passes for a fresh record, got %d", result.Outcome.Passes)
	}
	if !result.Deliverable(false) {
		t.Errorf("expected a deliverable document, issues: %v", result.Outcome.Result.Issues)
	}

	events, err := store.EventsSince(context.Background(), time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("events since: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 telemetry event, got %d", len(events))
	}
	ev := events[0]
	if ev.ID != result.EventID {
		t.Errorf("event id mismatch: %s vs %s", ev.ID, result.EventID)
	}
	if !ev.AutofixApplied {
		t.Error("expected autofix flag on the persisted event")
	}
	if len(ev.Fixes) == 0 {
		t.Error("expected fixes on the persisted event")
	}
}

func TestGenerate_PromotedFixSkipsSecondPass(t *testing.T) {
	store := telemetry.NewMemory()
	ctx := context.Background()

	_, err := store.RecordPromotion(ctx, model.PromotionRecord{
		FixCode:    model.CodeArticulo9Rigido,
		Promoted:   true,
		WindowDays: 30,
		PromotedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("record promotion: %v", err)
	}

	p := NewPipeline(testConfig(), store, zap.NewNop())
	result, err := p.Generate(ctx, testData())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if result.Outcome.Passes != 1 {
		t.Errorf("promoted fix should converge in 1 pass, got %d", result.Outcome.Passes)
	}
	if !result.Outcome.FlexibleWording {
		t.Error("promoted fix should pre-set flexible wording")
	}
}

func TestRenderMarkdown_NumbersArticlesSequentially(t *testing.T) {
	sections := []model.Section{
		{Title: "PRIMERO", Content: []model.ContentItem{
			{Type: model.ItemPlain, Text: "Introducción sin número."},
			{Type: model.ItemArticle, Text: "Primera regla."},
			{Type: model.ItemArticle, Text: "Segunda regla."},
		}},
		{Title: "SEGUNDO", Content: []model.ContentItem{
			{Type: model.ItemArticle, Text: "Tercera regla."},
		}},
	}

	r := NewRenderer(false)
	md := r.RenderMarkdown(sections, model.ReglamentoData{RazonSocial: "Prueba SpA"})

	for _, want := range []string{
		"## CAPÍTULO I: PRIMERO",
		"## CAPÍTULO II: SEGUNDO",
		"**Artículo 1°.** Primera regla.",
		"**Artículo 2°.** Segunda regla.",
		"**Artículo 3°.** Tercera regla.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "Artículo 0") {
		t.Error("plain items must not be numbered")
	}
}

func TestRenderAuditJSON(t *testing.T) {
	store := telemetry.NewMemory()
	p := NewPipeline(testConfig(), store, zap.NewNop())

	result, err := p.Generate(context.Background(), testData())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := p.Renderer().RenderAuditJSON(result)
	if err != nil {
		t.Fatalf("render audit json: %v", err)
	}
	for _, want := range []string{`"passes": 2`, `"stats"`, `"variant"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("audit json missing %q", want)
		}
	}
}
