// Package catalog holds the parameterized chapter builders for the
// internal regulations document. Every builder is a pure function from
// the input record to a titled section; blank optional fields degrade
// to generic phrasing and never fail.
package catalog

import (
	"normativa/internal/model"
)

// Builder produces one chapter from the input record
type Builder func(model.ReglamentoData) model.Section

func art(text string) model.ContentItem {
	return model.ContentItem{Type: model.ItemArticle, Text: text}
}

func plain(text string) model.ContentItem {
	return model.ContentItem{Type: model.ItemPlain, Text: text}
}

func safe(val string) string { return model.Safe(val) }

// NormalizarRubro maps the risk category to a natural-language line of
// business for interpolation
func NormalizarRubro(d model.ReglamentoData) string {
	switch d.CategoriaRiesgo {
	case "servicios_oficina":
		return "servicios profesionales u oficina"
	case "construccion":
		return "construcción"
	case "industrial":
		return "actividades industriales"
	case "comercio":
		return "comercio"
	case "otro":
		if g := safe(d.Giro); g != "" {
			return g
		}
		return "actividades comerciales"
	}
	return "servicios generales"
}

// RubroContext is the adaptation tuple consumed by the hygiene and PPE
// chapters
type RubroContext struct {
	RiesgosEjemplo     string
	MedidasPreventivas string
	EPPContexto        string
	AmbienteLaboral    string
}

// AdaptarSegunRubro maps a risk category to its adaptation tuple. The
// default profile is office services.
func AdaptarSegunRubro(categoriaRiesgo string) RubroContext {
	switch categoriaRiesgo {
	case "construccion":
		return RubroContext{
			RiesgosEjemplo:     "caídas de altura, atrapamientos, contacto con sustancias peligrosas, exposición a ruido y vibraciones, riesgos eléctricos y proyección de partículas propios de la actividad constructiva",
			MedidasPreventivas: "la señalización de zonas de riesgo, la instalación de barandas y redes de protección, la delimitación de áreas de tránsito seguro y la supervisión permanente de las condiciones de trabajo en obra",
			EPPContexto:        "cascos de seguridad, arneses para trabajos en altura, guantes industriales, calzado de seguridad con puntera reforzada, protección auditiva y respiratoria, según la naturaleza de las tareas asignadas",
			AmbienteLaboral:    "las faenas constructivas y los frentes de trabajo",
		}
	case "industrial":
		return RubroContext{
			RiesgosEjemplo:     "atrapamiento por maquinaria, exposición a agentes químicos, ruido industrial, riesgos ergonómicos derivados de la manipulación de cargas y riesgos eléctricos asociados a procesos productivos",
			MedidasPreventivas: "el mantenimiento preventivo de equipos y maquinaria, la ventilación adecuada de los espacios de trabajo, la señalización de zonas peligrosas y la capacitación continua en procedimientos seguros de operación",
			EPPContexto:        "protección auditiva, respiratoria y visual, guantes especializados, calzado de seguridad y vestimenta adecuada al tipo de proceso industrial en que se desempeñen",
			AmbienteLaboral:    "las instalaciones productivas y áreas de operación industrial",
		}
	case "comercio":
		return RubroContext{
			RiesgosEjemplo:     "caídas al mismo nivel, sobreesfuerzos por manipulación manual de mercadería, riesgos ergonómicos derivados de posturas prolongadas y exposición a riesgos de seguridad en la atención al público",
			MedidasPreventivas: "la mantención de pisos limpios y sin obstáculos, la correcta organización de bodegas y estanterías, el uso de escaleras y elementos auxiliares apropiados, y la capacitación en técnicas de levantamiento seguro",
			EPPContexto:        "calzado antideslizante, guantes para manipulación de carga y los elementos que correspondan según la evaluación de riesgos del puesto de trabajo",
			AmbienteLaboral:    "los locales comerciales, bodegas y dependencias de atención al público",
		}
	}
	return RubroContext{
		RiesgosEjemplo:     "riesgos ergonómicos derivados del uso prolongado de equipos de escritorio, fatiga visual, estrés laboral y riesgos psicosociales asociados a la carga de trabajo",
		MedidasPreventivas: "la adecuación ergonómica de los puestos de trabajo, pausas activas, iluminación apropiada, ventilación adecuada y la promoción de hábitos saludables en el entorno laboral",
		EPPContexto:        "los elementos ergonómicos y de protección que resulten pertinentes conforme a la evaluación de riesgos de cada puesto de trabajo",
		AmbienteLaboral:    "las oficinas, dependencias administrativas y lugares donde se presten los servicios",
	}
}
