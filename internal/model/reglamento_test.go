package model

import "testing"

func TestDetermineVariant(t *testing.T) {
	cases := []struct {
		name string
		d    ReglamentoData
		want Variant
	}{
		{
			name: "remote large company",
			d:    ReglamentoData{TrabajoRemoto: "si", NumTrabajadores: "51+"},
			want: VariantTeletrabajo51Plus,
		},
		{
			name: "remote beats construction",
			d:    ReglamentoData{TrabajoRemoto: "si", NumTrabajadores: "51+", CategoriaRiesgo: "construccion"},
			want: VariantTeletrabajo51Plus,
		},
		{
			name: "construction mid size",
			d:    ReglamentoData{CategoriaRiesgo: "construccion", NumTrabajadores: "26-50"},
			want: VariantConstruccion26a50,
		},
		{
			name: "industrial counts as construction segment",
			d:    ReglamentoData{CategoriaRiesgo: "industrial", NumTrabajadores: "51+"},
			want: VariantConstruccion26a50,
		},
		{
			name: "office small",
			d:    ReglamentoData{CategoriaRiesgo: "servicios_oficina", NumTrabajadores: "10-25"},
			want: VariantServicios10a25,
		},
		{
			name: "no segment",
			d:    ReglamentoData{CategoriaRiesgo: "comercio", NumTrabajadores: "1-9"},
			want: VariantUnknown,
		},
	}

	for _, tc := range cases {
		if got := DetermineVariant(tc.d); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestCloneSections_DeepCopy(t *testing.T) {
	original := []Section{
		{Title: "UNO", Content: []ContentItem{{Type: ItemArticle, Text: "texto original"}}},
	}

	clone := CloneSections(original)
	clone[0].Content[0].Text = "texto modificado"

	if original[0].Content[0].Text != "texto original" {
		t.Error("modifying the clone must not affect the original")
	}
}

func TestDomicilioCompleto(t *testing.T) {
	d := ReglamentoData{Domicilio: "Av. Siempre Viva 742", Comuna: "Ñuñoa", Region: ""}
	if got := d.DomicilioCompleto(); got != "Av. Siempre Viva 742, Ñuñoa" {
		t.Errorf("unexpected address: %q", got)
	}

	empty := ReglamentoData{}
	if got := empty.DomicilioCompleto(); got != "" {
		t.Errorf("expected empty address, got %q", got)
	}
}
