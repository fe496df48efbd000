// Package converge runs the assemble/audit loop until the document is
// free of rigidity findings or the pass budget is spent. The loop has
// exactly one repair available: regenerating with flexible legal
// wording. One repair means at most two passes.
package converge

import (
	"sort"

	"normativa/internal/assemble"
	"normativa/internal/audit"
	"normativa/internal/model"
)

// maxPasses bounds the loop. The only mutation between passes is the
// flexible-wording flag, which is monotonic, so a third pass could
// never see different input.
const maxPasses = 2

// Outcome is the settled state of one convergence run
type Outcome struct {
	Sections        []model.Section
	Result          model.AuditResult
	Variant         model.Variant
	Passes          int
	Fixes           []model.FixRef
	AutofixApplied  bool
	FlexibleWording bool
}

// Engine drives the loop. It owns no state between runs.
type Engine struct {
	auditor *audit.Auditor
	opts    audit.Options
}

// New creates a convergence engine with fixed audit options
func New(opts audit.Options) *Engine {
	return &Engine{auditor: audit.New(), opts: opts}
}

// Run assembles and audits the record. When the first pass surfaces
// rigidity issues and the record is not already flexible, the record
// is regenerated once with flexible wording and re-audited; the rigid
// codes found in the first pass are reported as applied fixes.
// promotedCodes lists fix codes already promoted to defaults; if any
// of them is a rigidity code the first pass starts flexible.
func (e *Engine) Run(d model.ReglamentoData, promotedCodes []string) Outcome {
	for _, code := range promotedCodes {
		if model.RigidityCodes[code] {
			d.FlexibleLegalWording = true
			break
		}
	}

	sections := assemble.Assemble(d)
	result, fixed := e.auditor.Audit(sections, d, e.opts)
	passes := 1

	var fixes []model.FixRef
	rigid := result.RigidityIssues()
	if len(rigid) > 0 && !d.FlexibleLegalWording && passes < maxPasses {
		fixes = distinctFixes(rigid)

		d.FlexibleLegalWording = true
		sections = assemble.Assemble(d)
		result, fixed = e.auditor.Audit(sections, d, e.opts)
		passes++
	}

	return Outcome{
		Sections:        fixed,
		Result:          result,
		Variant:         model.DetermineVariant(d),
		Passes:          passes,
		Fixes:           fixes,
		AutofixApplied:  d.FlexibleLegalWording,
		FlexibleWording: d.FlexibleLegalWording,
	}
}

// distinctFixes collapses the rigidity findings to one fix record per
// code
func distinctFixes(issues []model.AuditIssue) []model.FixRef {
	seen := make(map[string]bool, len(issues))
	var fixes []model.FixRef
	for _, i := range issues {
		if !seen[i.Code] {
			seen[i.Code] = true
			fixes = append(fixes, model.FixRef{Code: i.Code, Count: 1})
		}
	}
	sort.Slice(fixes, func(i, j int) bool { return fixes[i].Code < fixes[j].Code })
	return fixes
}
