package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"normativa/internal/model"
	"normativa/internal/pipeline"
	"normativa/internal/telemetry"
)

// failingGenerator implements Generator and fails on a marker name
type failingGenerator struct {
	inner Generator
}

func (g *failingGenerator) Generate(ctx context.Context, d model.ReglamentoData) (*pipeline.GenerateResult, error) {
	if d.RazonSocial == "FALLA" {
		return nil, errors.New("forced failure")
	}
	return g.inner.Generate(ctx, d)
}

func testGenerator() Generator {
	cfg := model.DefaultConfig()
	cfg.Store.Driver = "memory"
	return pipeline.NewPipeline(cfg, telemetry.NewMemory(), zap.NewNop())
}

func record(name string) model.ReglamentoData {
	return model.ReglamentoData{
		RazonSocial:     name,
		RutEmpresa:      "76.111.222-3",
		Giro:            "servicios de aseo",
		Email:           "contacto@empresa.cl",
		NumTrabajadores: "10-25",
		CategoriaRiesgo: "servicios_oficina",
		TrabajoRemoto:   "no",
	}
}

func TestBatchProcessor_PreservesInputOrder(t *testing.T) {
	processor := NewBatchProcessor(testGenerator(), 4)

	records := []model.ReglamentoData{
		record("Empresa Uno"), record("Empresa Dos"), record("Empresa Tres"),
	}
	outcomes := processor.Process(context.Background(), records)

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	for i, outcome := range outcomes {
		if outcome.Index != i {
			t.Errorf("outcome %d has index %d", i, outcome.Index)
		}
		if outcome.RazonSocial != records[i].RazonSocial {
			t.Errorf("outcome %d: expected %q, got %q", i, records[i].RazonSocial, outcome.RazonSocial)
		}
		if outcome.Error != nil {
			t.Errorf("outcome %d failed: %v", i, outcome.Error)
		}
	}
}

func TestBatchProcessor_IsolatesFailures(t *testing.T) {
	processor := NewBatchProcessor(&failingGenerator{inner: testGenerator()}, 2)

	outcomes := processor.Process(context.Background(), []model.ReglamentoData{
		record("Empresa Uno"), record("FALLA"), record("Empresa Tres"),
	})

	if outcomes[0].Error != nil || outcomes[2].Error != nil {
		t.Error("healthy records must not be affected by a failing one")
	}
	if outcomes[1].Error == nil {
		t.Error("expected the marked record to fail")
	}
}

func TestReadRecordsFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	content := `
- razonSocial: "Empresa Uno"
  numTrabajadores: "10-25"
  categoriaRiesgo: servicios_oficina
- razonSocial: "Empresa Dos"
  numTrabajadores: "51+"
  categoriaRiesgo: construccion
  trabajoRemoto: "si"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	records, err := ReadRecordsFromFile(path)
	if err != nil {
		t.Fatalf("read records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].RazonSocial != "Empresa Uno" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].TrabajoRemoto != "si" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestReadRecordsFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	content := `[{"razonSocial": "Empresa JSON", "numTrabajadores": "26-50", "categoriaRiesgo": "comercio"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	records, err := ReadRecordsFromFile(path)
	if err != nil {
		t.Fatalf("read records: %v", err)
	}
	if len(records) != 1 || records[0].RazonSocial != "Empresa JSON" {
		t.Errorf("unexpected records: %+v", records)
	}
}
