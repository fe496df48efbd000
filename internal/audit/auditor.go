// Package audit scans an assembled document plus its raw input record
// for placeholder, rigid-reference, semantic and structural issues.
// Detection is entirely pattern/keyword based; a single linear pass
// over all items accumulates both issues and stats.
package audit

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"normativa/internal/model"
)

// Mode controls severity escalation for placeholder-class and
// rigid-wording findings
type Mode string

const (
	ModeStrict Mode = "strict"
	ModeNormal Mode = "normal"
)

// Options configures one audit pass
type Options struct {
	Mode          Mode
	EnableAutofix bool
}

// Thresholds for the structural and statistical checks
const (
	minChapters        = 8
	minArticles        = 25
	shortArticleLen    = 180
	longArticleLen     = 1800
	repeatedStartFloor = 6
	repeatedStartTopN  = 5
)

// placeholders are the literal strings that mark stale form data.
// Matching is word-bounded so e.g. "Otros" never trips on "Otro".
var placeholders = []string{"no especificado", "N/A", "undefined", "null", "Otro"}

// prohibited are the named-authority strings the flexible-wording
// rewrite knows how to generalize
var prohibited = []string{"Ministerio de Salud", "Inspección del Trabajo"}

// rigidClause is the specific two-authority co-occurrence that
// identifies the one clause the system rewrites on its own
const rigidClause = "Ministerio de Salud y a la Inspección del Trabajo"

var (
	placeholderRes = compilePlaceholders()

	emailPlaceholderRe = regexp.MustCompile(`(?i)(@random\.com$|demo@|no-reply@|test@)`)
	emailRe            = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)

	jornadaOrdinariaRe = regexp.MustCompile(`(?i)jornada ordinaria de trabajo será de (\d+) horas`)
	jornadaLimiteRe    = regexp.MustCompile(`(?i)no podrá exceder de (\d+) horas`)

	giroKeywords = []string{"construcción", "obra", "faena", "civil", "edificación"}
)

func compilePlaceholders() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(placeholders))
	for _, ph := range placeholders {
		out[ph] = regexp.MustCompile(`\b` + regexp.QuoteMeta(ph) + `\b`)
	}
	return out
}

// Auditor runs the quality/compliance audit over assembled sections
type Auditor struct{}

// New creates a new auditor
func New() *Auditor {
	return &Auditor{}
}

// scan carries the single-pass accumulation state
type scan struct {
	opts   Options
	issues []model.AuditIssue

	articleCount int
	totalLength  int
	shortCount   int
	longCount    int

	placeholderCount int
	semanticWarnings int

	startPhrases map[string]int

	hoursOrdinary *int
	hoursLimit    *int
}

// Audit audits the sections against the input record. It always
// returns a deep copy of the sections; when autofix is enabled the
// copy is normalized in place before the per-item checks run.
func (a *Auditor) Audit(sections []model.Section, d model.ReglamentoData, opts Options) (model.AuditResult, []model.Section) {
	if opts.Mode == "" {
		opts.Mode = ModeNormal
	}

	st := &scan{opts: opts, startPhrases: make(map[string]int)}
	fixed := model.CloneSections(sections)

	st.checkInputRecord(d)

	for si := range fixed {
		section := &fixed[si]
		if len(section.Content) == 0 {
			st.add(model.AuditIssue{
				Severity: model.SeverityError,
				Code:     model.CodeEmptyChapter,
				Message:  fmt.Sprintf("El capítulo %q no tiene contenido.", section.Title),
				Where:    &model.IssueLocation{ChapterTitle: section.Title},
			})
			continue
		}

		for ii := range section.Content {
			item := &section.Content[ii]

			if opts.EnableAutofix {
				item.Text = Normalize(item.Text)
			}

			if item.Type == model.ItemArticle {
				st.articleCount++
				st.totalLength += len(item.Text)
				if len(item.Text) < shortArticleLen {
					st.shortCount++
				}
				if len(item.Text) > longArticleLen {
					st.longCount++
				}

				st.checkText(item.Text, section.Title, st.articleCount)

				// First six words feed the repetition statistic
				start := openingPhrase(item.Text)
				if len(start) > 10 {
					st.startPhrases[start]++
				}

				if opts.EnableAutofix {
					item.Text = varyOpener(item.Text, st.articleCount)
				}
			} else {
				st.checkText(item.Text, section.Title, 0)
			}
		}
	}

	st.checkJornada()
	repeated := st.checkRepetition()
	st.checkStructure(len(fixed))

	avg := 0
	if st.articleCount > 0 {
		avg = int(math.Round(float64(st.totalLength) / float64(st.articleCount)))
	}

	result := model.AuditResult{
		Issues: st.issues,
		Stats: model.AuditStats{
			ChapterCount:              len(fixed),
			ArticleCount:              st.articleCount,
			AvgArticleLength:          avg,
			ShortArticles:             st.shortCount,
			LongArticles:              st.longCount,
			RepeatedStartsTop:         repeated,
			HasNormativeContradiction: st.hoursOrdinary != nil && st.hoursLimit != nil && *st.hoursOrdinary != *st.hoursLimit,
			PlaceholderCount:          st.placeholderCount,
			SemanticWarningsCount:     st.semanticWarnings,
		},
	}

	return result, fixed
}

func (s *scan) add(issue model.AuditIssue) {
	s.issues = append(s.issues, issue)
}

// checkInputRecord runs the checks that look at the raw record rather
// than the assembled text
func (s *scan) checkInputRecord(d model.ReglamentoData) {
	if d.CategoriaRiesgo == "construccion" {
		giro := strings.ToLower(d.Giro)
		coherent := false
		for _, k := range giroKeywords {
			if strings.Contains(giro, k) {
				coherent = true
				break
			}
		}
		if !coherent {
			s.add(model.AuditIssue{
				Severity: model.SeverityWarn,
				Code:     model.CodeRubroGiroIncoherente,
				Message:  fmt.Sprintf("Categoría 'construcción' pero giro %q no parece relacionado (faltan keywords: obra, faena, civil...).", d.Giro),
			})
			s.semanticWarnings++
		}
	}

	if d.Email != "" && emailPlaceholderRe.MatchString(d.Email) {
		s.add(model.AuditIssue{
			Severity: model.SeverityError,
			Code:     model.CodeEmailPlaceholder,
			Message:  fmt.Sprintf("Email de contacto parece fake: %q", d.Email),
		})
		s.placeholderCount++
	}
}

// checkText runs the per-item pattern checks. articleNum is 0 for
// plain items.
func (s *scan) checkText(text, chapterTitle string, articleNum int) {
	where := &model.IssueLocation{ChapterTitle: chapterTitle, ArticleNumber: articleNum}

	for _, ph := range placeholders {
		if loc := placeholderRes[ph].FindStringIndex(text); loc != nil {
			s.add(model.AuditIssue{
				Severity: model.SeverityError,
				Code:     model.CodePlaceholderFound,
				Message:  fmt.Sprintf("Se encontró placeholder o dato inválido: %q", ph),
				Where:    where,
				Snippet:  snippet(text, loc[0]),
			})
			s.placeholderCount++
		}
	}

	for _, bad := range prohibited {
		idx := strings.Index(text, bad)
		if idx < 0 {
			continue
		}

		code := model.CodeProhibitedString
		if strings.Contains(text, rigidClause) {
			code = model.CodeArticulo9Rigido
		}

		sev := model.SeverityWarn
		if s.opts.Mode == ModeStrict {
			sev = model.SeverityError
		}

		s.add(model.AuditIssue{
			Severity: sev,
			Code:     code,
			Message:  fmt.Sprintf("Uso de término restringido o configurable: %q", bad),
			Where:    where,
			Snippet:  snippet(text, idx),
		})
		if code == model.CodeArticulo9Rigido {
			s.semanticWarnings++
		}
	}

	for _, email := range emailRe.FindAllString(text, -1) {
		if emailPlaceholderRe.MatchString(email) {
			s.add(model.AuditIssue{
				Severity: model.SeverityError,
				Code:     model.CodeEmailPlaceholder,
				Message:  fmt.Sprintf("Email sospechoso en texto: %q", email),
				Where:    where,
			})
			s.placeholderCount++
		}
	}

	if m := jornadaOrdinariaRe.FindStringSubmatch(text); m != nil {
		s.hoursOrdinary = atoiPtr(m[1])
	}
	if m := jornadaLimiteRe.FindStringSubmatch(text); m != nil {
		s.hoursLimit = atoiPtr(m[1])
	}
}

// checkJornada emits the normative-contradiction error once both
// extractions found a value and the values differ
func (s *scan) checkJornada() {
	if s.hoursOrdinary == nil || s.hoursLimit == nil {
		return
	}
	if *s.hoursOrdinary != *s.hoursLimit {
		s.add(model.AuditIssue{
			Severity: model.SeverityError,
			Code:     model.CodeJornadaInconsistente,
			Message:  fmt.Sprintf("Contradicción normativa: Jornada ordinaria es %d hrs pero límite dice %d hrs.", *s.hoursOrdinary, *s.hoursLimit),
		})
	}
}

// checkRepetition surfaces the most repeated article openers and emits
// one warning per distinct phrase above the floor
func (s *scan) checkRepetition() []model.RepeatedStart {
	var repeated []model.RepeatedStart
	for start, count := range s.startPhrases {
		if count >= repeatedStartFloor {
			repeated = append(repeated, model.RepeatedStart{Start: start, Count: count})
		}
	}
	sort.Slice(repeated, func(i, j int) bool {
		if repeated[i].Count != repeated[j].Count {
			return repeated[i].Count > repeated[j].Count
		}
		return repeated[i].Start < repeated[j].Start
	})
	if len(repeated) > repeatedStartTopN {
		repeated = repeated[:repeatedStartTopN]
	}

	for _, r := range repeated {
		s.add(model.AuditIssue{
			Severity: model.SeverityWarn,
			Code:     model.CodeRepetitiveStart,
			Message:  fmt.Sprintf("El inicio de artículo \"%s...\" se repite %d veces.", r.Start, r.Count),
		})
	}
	return repeated
}

func (s *scan) checkStructure(chapterCount int) {
	if chapterCount < minChapters {
		s.add(model.AuditIssue{
			Severity: model.SeverityWarn,
			Code:     model.CodeFewChapters,
			Message:  fmt.Sprintf("El documento tiene pocos capítulos (%d).", chapterCount),
		})
	}
	if s.articleCount < minArticles {
		sev := model.SeverityWarn
		if s.opts.Mode == ModeStrict {
			sev = model.SeverityError
		}
		s.add(model.AuditIssue{
			Severity: sev,
			Code:     model.CodeFewArticles,
			Message:  fmt.Sprintf("El documento tiene pocos artículos (%d).", s.articleCount),
		})
	}
}

// openingPhrase returns the first six words of an article
func openingPhrase(text string) string {
	words := strings.Split(text, " ")
	if len(words) > 6 {
		words = words[:6]
	}
	return strings.Join(words, " ")
}

// snippet extracts a short context window around a match position
func snippet(text string, idx int) string {
	start := idx - 10
	if start < 0 {
		start = 0
	}
	end := idx + 20
	if end > len(text) {
		end = len(text)
	}
	return text[start:end] + "..."
}

func atoiPtr(s string) *int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return &n
}
