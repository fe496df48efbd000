package model

import "strings"

// ContentItemType distinguishes numbered articles from plain prose
type ContentItemType string

const (
	ItemArticle ContentItemType = "article" // Receives sequential numbering at render time
	ItemPlain   ContentItemType = "plain"   // Introductory text, never numbered
)

// ContentItem is a single block of text inside a chapter
type ContentItem struct {
	Type ContentItemType `json:"type"`
	Text string          `json:"text"`
}

// Section is a titled chapter of the assembled document.
// The ordered section list is the complete document body; cover page,
// index and signature block are rendered externally.
type Section struct {
	Title   string        `json:"title"`
	Content []ContentItem `json:"content"`
}

// Clone returns a deep copy of the section
func (s Section) Clone() Section {
	content := make([]ContentItem, len(s.Content))
	copy(content, s.Content)
	return Section{Title: s.Title, Content: content}
}

// CloneSections deep-copies a full section list
func CloneSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s.Clone()
	}
	return out
}

// ReglamentoData holds the validated business facts for one document
// request. Validation happens upstream; every builder degrades to
// generic phrasing when optional fields are blank.
//
// All fields are immutable within an assembly pass except
// FlexibleLegalWording, which the convergence loop may set exactly
// once between pass 1 and pass 2.
type ReglamentoData struct {
	RazonSocial      string `json:"razonSocial" yaml:"razonSocial"`
	RutEmpresa       string `json:"rutEmpresa" yaml:"rutEmpresa"`
	Giro             string `json:"giro" yaml:"giro"`
	Domicilio        string `json:"domicilio" yaml:"domicilio"`
	Comuna           string `json:"comuna" yaml:"comuna"`
	Region           string `json:"region" yaml:"region"`
	NombreCompleto   string `json:"nombreCompleto" yaml:"nombreCompleto"`
	RutRepresentante string `json:"rutRepresentante" yaml:"rutRepresentante"`
	Cargo            string `json:"cargo" yaml:"cargo"`
	Email            string `json:"email" yaml:"email"`

	NumTrabajadores string `json:"numTrabajadores" yaml:"numTrabajadores"` // Tier: "1-9", "10-25", "26-50", "51+"
	CategoriaRiesgo string `json:"categoriaRiesgo" yaml:"categoriaRiesgo"` // servicios_oficina, construccion, industrial, comercio, otro
	Rubro           string `json:"rubro" yaml:"rubro"`                     // Deprecated, kept for input compatibility

	JornadaGeneral    string `json:"jornadaGeneral" yaml:"jornadaGeneral"`
	TrabajoRemoto     string `json:"trabajoRemoto" yaml:"trabajoRemoto"`         // "si" / "no"
	ControlAsistencia string `json:"controlAsistencia" yaml:"controlAsistencia"` // "si" / "no"
	UsoEPP            string `json:"usoEPP" yaml:"usoEPP"`                       // "si" / "no"
	ComiteParitario   string `json:"comiteParitario" yaml:"comiteParitario"`     // "si" / "no"
	Mutualidad        string `json:"mutualidad" yaml:"mutualidad"`

	Prohibiciones              []string `json:"prohibiciones" yaml:"prohibiciones"`
	TipoProcedimiento          string   `json:"tipoProcedimiento" yaml:"tipoProcedimiento"` // escalonado, segun_gravedad, personalizado
	ProcedimientoDisciplinario string   `json:"procedimientoDisciplinario" yaml:"procedimientoDisciplinario"`

	// FlexibleLegalWording switches chapters that name specific
	// authorities to generic wording. Defaults to false; toggled by
	// the convergence loop or pre-set when the corresponding fix has
	// been promoted.
	FlexibleLegalWording bool `json:"flexibleLegalWording,omitempty" yaml:"flexibleLegalWording,omitempty"`
}

// Variant is the coarse segmentation label used for telemetry only.
// The assembler never consults it.
type Variant string

const (
	VariantServicios10a25     Variant = "servicios_10_25"
	VariantConstruccion26a50  Variant = "construccion_26_50"
	VariantTeletrabajo51Plus  Variant = "teletrabajo_51_plus"
	VariantUnknown            Variant = "unknown"
)

// DetermineVariant derives the telemetry segment for a request
func DetermineVariant(d ReglamentoData) Variant {
	if d.TrabajoRemoto == "si" && (d.NumTrabajadores == "51+" || d.NumTrabajadores == "100+") {
		return VariantTeletrabajo51Plus
	}
	if (d.CategoriaRiesgo == "construccion" || d.CategoriaRiesgo == "industrial") &&
		(d.NumTrabajadores == "26-50" || d.NumTrabajadores == "51+") {
		return VariantConstruccion26a50
	}
	if d.CategoriaRiesgo == "servicios_oficina" && d.NumTrabajadores == "10-25" {
		return VariantServicios10a25
	}
	return VariantUnknown
}

// Safe trims a possibly-blank optional field, returning "" when the
// value carries no information
func Safe(val string) string {
	return strings.TrimSpace(val)
}

// DomicilioCompleto joins the address fields that are present
func (d ReglamentoData) DomicilioCompleto() string {
	parts := make([]string, 0, 3)
	for _, v := range []string{d.Domicilio, d.Comuna, d.Region} {
		if Safe(v) != "" {
			parts = append(parts, Safe(v))
		}
	}
	return strings.Join(parts, ", ")
}
