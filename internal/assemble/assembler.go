// Package assemble selects and orders the document chapters.
// Assembly is deterministic, side-effect free and total: malformed
// categorical fields fall back to generic chapter variants instead of
// failing.
package assemble

import (
	"normativa/internal/catalog"
	"normativa/internal/model"
)

// moduleEntry binds an inclusion predicate to a chapter builder.
// Entries are evaluated once, in declaration order; that order is the
// document order.
type moduleEntry struct {
	name    string
	include func(model.ReglamentoData) bool
	build   catalog.Builder
}

func always(model.ReglamentoData) bool { return true }

// modules is the full chapter table. Inclusion rules live here, not in
// the assembly driver, so they can be inspected and tested on their
// own.
var modules = []moduleEntry{
	{"identificacion", always, catalog.Identificacion},
	{"ambito_aplicacion", always, catalog.AmbitoAplicacion},
	{"principios", always, catalog.Principios},
	{"derechos_empleador", always, catalog.DerechosEmpleador},
	{"obligaciones_trabajador", always, catalog.ObligacionesTrabajador},
	{"jornada", always, catalog.Jornada},
	{"teletrabajo", func(d model.ReglamentoData) bool { return d.TrabajoRemoto == "si" }, catalog.Teletrabajo},
	{"normas_internas", always, catalog.NormasInternas},
	{"ley_karin", always, catalog.LeyKarin},
	{"higiene", always, catalog.Higiene},
	{"epp", func(d model.ReglamentoData) bool { return d.UsoEPP == "si" }, catalog.EPP},
	{"comite_paritario", func(d model.ReglamentoData) bool { return d.ComiteParitario == "si" }, catalog.ComiteParitario},
	{"empresa_pequena", tier("10-25"), catalog.EmpresaPequena},
	{"empresa_mediana", tier("26-50"), catalog.EmpresaMediana},
	{"empresa_ampliada", tier("51+"), catalog.EmpresaFormalAmpliada},
	{"procedimiento_disciplinario", always, catalog.ProcedimientoDisciplinario},
	{"disposiciones_generales", always, catalog.DisposicionesGenerales},
	{"actualizacion", always, catalog.Actualizacion},
	{"adecuacion_normativa", always, catalog.AdecuacionNormativa},
	{"vigencia", always, catalog.Vigencia},
}

func tier(t string) func(model.ReglamentoData) bool {
	return func(d model.ReglamentoData) bool { return d.NumTrabajadores == t }
}

// Assemble produces the full ordered section list for one input record
func Assemble(d model.ReglamentoData) []model.Section {
	sections := make([]model.Section, 0, len(modules))
	for _, m := range modules {
		if m.include(d) {
			sections = append(sections, m.build(d))
		}
	}
	return sections
}

// ModuleNames returns the names of the modules that would be included
// for the given record, in assembly order
func ModuleNames(d model.ReglamentoData) []string {
	var names []string
	for _, m := range modules {
		if m.include(d) {
			names = append(names, m.name)
		}
	}
	return names
}
