package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"normativa/internal/model"
	"normativa/internal/telemetry"
)

// Renderer produces the delivery formats for an assembled document
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// romans covers more chapters than any assembly can produce
var romans = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX",
	"XXI", "XXII", "XXIII", "XXIV", "XXV",
}

func roman(n int) string {
	if n >= 1 && n <= len(romans) {
		return romans[n-1]
	}
	return fmt.Sprintf("%d", n)
}

// RenderMarkdown renders the full document as markdown. Chapters get
// roman numerals; articles are numbered sequentially across the whole
// document, not per chapter.
func (r *Renderer) RenderMarkdown(sections []model.Section, d model.ReglamentoData) string {
	var b strings.Builder

	b.WriteString("# REGLAMENTO INTERNO DE ORDEN, HIGIENE Y SEGURIDAD\n\n")
	if model.Safe(d.RazonSocial) != "" {
		fmt.Fprintf(&b, "**%s**\n", d.RazonSocial)
	}
	if model.Safe(d.RutEmpresa) != "" {
		fmt.Fprintf(&b, "RUT: %s\n", d.RutEmpresa)
	}
	if addr := d.DomicilioCompleto(); addr != "" {
		fmt.Fprintf(&b, "%s\n", addr)
	}
	b.WriteString("\n")

	articleNum := 0
	for i, section := range sections {
		fmt.Fprintf(&b, "## CAPÍTULO %s: %s\n\n", roman(i+1), section.Title)
		for _, item := range section.Content {
			if item.Type == model.ItemArticle {
				articleNum++
				fmt.Fprintf(&b, "**Artículo %d°.** %s\n\n", articleNum, item.Text)
			} else {
				fmt.Fprintf(&b, "%s\n\n", item.Text)
			}
		}
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nDocumento generado el %s. Capítulos: %d. Artículos: %d.\n",
			time.Now().Format("02-01-2006"), len(sections), articleNum)
	}

	return b.String()
}

// AuditReport is the serializable view of one generation outcome
type AuditReport struct {
	Variant        model.Variant      `json:"variant"`
	Passes         int                `json:"passes"`
	AutofixApplied bool               `json:"autofixApplied"`
	Fixes          []model.FixRef     `json:"fixes,omitempty"`
	Issues         []model.AuditIssue `json:"issues"`
	Stats          model.AuditStats   `json:"stats"`
}

// RenderAuditJSON renders the audit outcome as indented JSON
func (r *Renderer) RenderAuditJSON(res *GenerateResult) ([]byte, error) {
	report := AuditReport{
		Variant:        res.Outcome.Variant,
		Passes:         res.Outcome.Passes,
		AutofixApplied: res.Outcome.AutofixApplied,
		Fixes:          res.Outcome.Fixes,
		Issues:         res.Outcome.Result.Issues,
		Stats:          res.Outcome.Result.Stats,
	}
	return json.MarshalIndent(report, "", "  ")
}

// RenderMetricsJSON renders a metrics snapshot as indented JSON
func (r *Renderer) RenderMetricsJSON(snap telemetry.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}
