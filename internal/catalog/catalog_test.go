package catalog

import (
	"strings"
	"testing"

	"normativa/internal/model"
)

func TestAdaptarSegunRubro_Profiles(t *testing.T) {
	construccion := AdaptarSegunRubro("construccion")
	if !strings.Contains(construccion.EPPContexto, "cascos") {
		t.Errorf("construction profile should mention helmets, got %q", construccion.EPPContexto)
	}

	oficina := AdaptarSegunRubro("servicios_oficina")
	if !strings.Contains(oficina.RiesgosEjemplo, "ergonómicos") {
		t.Errorf("office profile should mention ergonomic risks, got %q", oficina.RiesgosEjemplo)
	}

	// Unknown categories degrade to the office profile
	unknown := AdaptarSegunRubro("algo_raro")
	if unknown != oficina {
		t.Error("unknown category should fall back to the office profile")
	}
}

func TestProhibicionText(t *testing.T) {
	if _, ok := ProhibicionText("consumo_alcohol"); !ok {
		t.Error("expected known prohibition code to resolve")
	}
	if _, ok := ProhibicionText("codigo_inexistente"); ok {
		t.Error("unknown prohibition code must not resolve")
	}
}

func TestNormasInternas_ComplementsShortSelections(t *testing.T) {
	d := model.ReglamentoData{Prohibiciones: []string{"violencia", "acoso"}}
	section := NormasInternas(d)

	articles := 0
	for _, item := range section.Content {
		if item.Type == model.ItemArticle {
			articles++
		}
	}
	// 1 general conduct + 2 selected + 3 generic complements + 1 closing
	if articles != 7 {
		t.Errorf("expected 7 articles with complements, got %d", articles)
	}
}

func TestNormasInternas_SkipsUnknownCodes(t *testing.T) {
	d := model.ReglamentoData{Prohibiciones: []string{"violencia", "codigo_falso", "acoso", "filtracion_info", "consumo_drogas"}}
	section := NormasInternas(d)

	for _, item := range section.Content {
		if strings.Contains(item.Text, "codigo_falso") {
			t.Error("unknown codes must be skipped, not interpolated")
		}
	}
}

func TestFlexibleWordingRemovesNamedAuthorities(t *testing.T) {
	d := model.ReglamentoData{FlexibleLegalWording: true, TipoProcedimiento: "escalonado"}

	for name, build := range map[string]Builder{
		"ambito":        AmbitoAplicacion,
		"ley_karin":     LeyKarin,
		"disciplinario": ProcedimientoDisciplinario,
	} {
		section := build(d)
		for _, item := range section.Content {
			if strings.Contains(item.Text, "Ministerio de Salud") || strings.Contains(item.Text, "Inspección del Trabajo") {
				t.Errorf("%s: flexible wording must not name authorities: %q", name, item.Text)
			}
		}
	}
}

func TestIdentificacion_FallbacksForBlankFields(t *testing.T) {
	section := Identificacion(model.ReglamentoData{})

	joined := ""
	for _, item := range section.Content {
		joined += item.Text + " "
	}
	if !strings.Contains(joined, "la empresa") {
		t.Error("blank company name should fall back to a generic reference")
	}
	if !strings.Contains(joined, "[pendiente]") {
		t.Error("blank RUT should fall back to the pending marker")
	}
}

func TestJornada_ControlAsistenciaBranch(t *testing.T) {
	with := Jornada(model.ReglamentoData{ControlAsistencia: "si"})
	without := Jornada(model.ReglamentoData{ControlAsistencia: "no"})

	wantWith := "registrar personalmente su hora de ingreso"
	if !sectionContains(with, wantWith) {
		t.Error("attendance control chapter should describe the register")
	}
	if sectionContains(without, wantWith) {
		t.Error("chapter without attendance control must not describe the register")
	}
}

func sectionContains(s model.Section, substr string) bool {
	for _, item := range s.Content {
		if strings.Contains(item.Text, substr) {
			return true
		}
	}
	return false
}
