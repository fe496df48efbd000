package converge

import (
	"testing"

	"normativa/internal/audit"
	"normativa/internal/model"
)

func testData() model.ReglamentoData {
	return model.ReglamentoData{
		RazonSocial:     "Constructora Cordillera Ltda",
		RutEmpresa:      "77.456.789-0",
		Giro:            "obras civiles y edificación",
		Email:           "contacto@cordillera.cl",
		NumTrabajadores: "26-50",
		CategoriaRiesgo: "construccion",
		JornadaGeneral:  "44 horas semanales distribuidas de lunes a viernes",
		TrabajoRemoto:   "no",
		UsoEPP:          "si",
		ComiteParitario: "si",
		Mutualidad:      "la Mutual de Seguridad",
	}
}

func TestRun_ConvergesInTwoPasses(t *testing.T) {
	engine := New(audit.Options{Mode: audit.ModeStrict, EnableAutofix: true})

	outcome := engine.Run(testData(), nil)

	if outcome.Passes != 2 {
		t.Fatalf("expected 2 passes for a rigid document, got %d", outcome.Passes)
	}
	if !outcome.FlexibleWording {
		t.Error("expected flexible wording after convergence")
	}
	if len(outcome.Fixes) == 0 {
		t.Error("expected recorded fixes from the first pass")
	}
	if rigid := outcome.Result.RigidityIssues(); len(rigid) != 0 {
		t.Errorf("expected no rigidity issues after convergence, got %v", rigid)
	}
	if len(outcome.Result.Errors()) != 0 {
		t.Errorf("expected a clean document after convergence, got %v", outcome.Result.Errors())
	}
}

func TestRun_FixesAreDistinctCodes(t *testing.T) {
	engine := New(audit.Options{Mode: audit.ModeStrict, EnableAutofix: true})

	outcome := engine.Run(testData(), nil)

	seen := make(map[string]bool)
	for _, fix := range outcome.Fixes {
		if seen[fix.Code] {
			t.Errorf("fix code %s recorded more than once", fix.Code)
		}
		seen[fix.Code] = true
		if fix.Count != 1 {
			t.Errorf("fix %s: expected count 1, got %d", fix.Code, fix.Count)
		}
		if !model.RigidityCodes[fix.Code] {
			t.Errorf("fix %s is not a rigidity code", fix.Code)
		}
	}
}

func TestRun_PromotedCodeSkipsSecondPass(t *testing.T) {
	engine := New(audit.Options{Mode: audit.ModeStrict, EnableAutofix: true})

	outcome := engine.Run(testData(), []string{model.CodeArticulo9Rigido})

	if outcome.Passes != 1 {
		t.Fatalf("expected 1 pass with a promoted rigidity fix, got %d", outcome.Passes)
	}
	if !outcome.FlexibleWording {
		t.Error("promoted rigidity fix should pre-set flexible wording")
	}
	if len(outcome.Fixes) != 0 {
		t.Errorf("no fixes should be recorded when the document starts flexible, got %v", outcome.Fixes)
	}
	if rigid := outcome.Result.RigidityIssues(); len(rigid) != 0 {
		t.Errorf("expected no rigidity issues, got %v", rigid)
	}
}

func TestRun_UnrelatedPromotionDoesNotPreSet(t *testing.T) {
	engine := New(audit.Options{Mode: audit.ModeStrict, EnableAutofix: true})

	outcome := engine.Run(testData(), []string{"SOME_OTHER_FIX"})

	if outcome.Passes != 2 {
		t.Errorf("unrelated promotion must not pre-set flexible wording, got %d passes", outcome.Passes)
	}
}

func TestRun_VariantDerivation(t *testing.T) {
	engine := New(audit.Options{Mode: audit.ModeNormal})

	outcome := engine.Run(testData(), nil)
	if outcome.Variant != model.VariantConstruccion26a50 {
		t.Errorf("expected construction variant, got %s", outcome.Variant)
	}

	d := testData()
	d.TrabajoRemoto = "si"
	d.NumTrabajadores = "51+"
	outcome = engine.Run(d, nil)
	if outcome.Variant != model.VariantTeletrabajo51Plus {
		t.Errorf("expected remote-work variant, got %s", outcome.Variant)
	}
}
