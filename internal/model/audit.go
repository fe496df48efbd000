package model

// AuditSeverity classifies how an issue affects document delivery
type AuditSeverity string

const (
	SeverityInfo  AuditSeverity = "info"
	SeverityWarn  AuditSeverity = "warn"  // Advisory, bypassable by explicit override
	SeverityError AuditSeverity = "error" // Always blocks delivery
)

// Issue codes. These are a stable vocabulary shared with the telemetry
// store and the reporting views; renaming one is a breaking change.
const (
	CodePlaceholderFound        = "PLACEHOLDER_FOUND"
	CodeEmailPlaceholder        = "EMAIL_PLACEHOLDER"
	CodeProhibitedString        = "PROHIBITED_STRING"
	CodeArticulo9Rigido         = "ARTICULO_9_RIGIDO"
	CodeReferenciaAutoridad     = "REFERENCIA_AUTORIDAD_RIGIDA"
	CodeRubroGiroIncoherente    = "RUBRO_GIRO_INCOHERENTE"
	CodeJornadaInconsistente    = "JORNADA_INCONSISTENTE"
	CodeRepetitiveStart         = "REPETITIVE_START"
	CodeEmptyChapter            = "EMPTY_CHAPTER"
	CodeFewChapters             = "FEW_CHAPTERS"
	CodeFewArticles             = "FEW_ARTICLES"
)

// RigidityCodes is the set of issues the convergence loop knows how to
// fix by regenerating with flexible wording
var RigidityCodes = map[string]bool{
	CodeArticulo9Rigido:     true,
	CodeProhibitedString:    true,
	CodeReferenciaAutoridad: true,
}

// IssueLocation points at the chapter/article where an issue was found
type IssueLocation struct {
	ChapterTitle  string `json:"chapterTitle,omitempty"`
	ArticleNumber int    `json:"articleNumber,omitempty"`
}

// AuditIssue is one finding of the audit engine. Severity is assigned
// by rule, never by the caller.
type AuditIssue struct {
	Severity AuditSeverity  `json:"severity"`
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Where    *IssueLocation `json:"where,omitempty"`
	Snippet  string         `json:"snippet,omitempty"`
}

// RepeatedStart records an article opening phrase seen many times
type RepeatedStart struct {
	Start string `json:"start"`
	Count int    `json:"count"`
}

// AuditStats summarizes the structural shape of the document.
// Everything here is accumulated in the same single pass that emits
// the issues.
type AuditStats struct {
	ChapterCount             int             `json:"chapterCount"`
	ArticleCount             int             `json:"articleCount"`
	AvgArticleLength         int             `json:"avgArticleLength"`
	ShortArticles            int             `json:"shortArticles"`
	LongArticles             int             `json:"longArticles"`
	RepeatedStartsTop        []RepeatedStart `json:"repeatedStartsTop"`
	HasNormativeContradiction bool           `json:"hasNormativeContradiction"`
	PlaceholderCount         int             `json:"placeholderCount"`
	SemanticWarningsCount    int             `json:"semanticWarningsCount"`
}

// AuditResult is the complete outcome of one audit pass
type AuditResult struct {
	Issues []AuditIssue `json:"issues"`
	Stats  AuditStats   `json:"stats"`
}

// BySeverity filters issues by severity
func (r AuditResult) BySeverity(sev AuditSeverity) []AuditIssue {
	var out []AuditIssue
	for _, i := range r.Issues {
		if i.Severity == sev {
			out = append(out, i)
		}
	}
	return out
}

// Errors returns the blocking issues
func (r AuditResult) Errors() []AuditIssue { return r.BySeverity(SeverityError) }

// Warnings returns the advisory issues
func (r AuditResult) Warnings() []AuditIssue { return r.BySeverity(SeverityWarn) }

// RigidityIssues returns issues the convergence loop can resolve by
// switching to flexible wording
func (r AuditResult) RigidityIssues() []AuditIssue {
	var out []AuditIssue
	for _, i := range r.Issues {
		if RigidityCodes[i.Code] {
			out = append(out, i)
		}
	}
	return out
}
