package audit

import (
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)

var quoteReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// Normalize collapses runs of whitespace, trims the ends and replaces
// curly quotes with straight ones. Running it twice yields the same
// output, so repeated audit passes never re-dirty a fixed document.
func Normalize(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	return quoteReplacer.Replace(text)
}

// rigidOpener is the over-used article opener that varyOpener rewrites
const rigidOpener = "La empresa podrá"

// openerVariations are the replacement openers, picked by article
// number so the choice is stable across runs
var openerVariations = []string{
	"Será facultad del empleador",
	"Corresponderá a la administración",
	"La organización tendrá la facultad de",
}

// varyOpener rewrites the rigid opener on a deterministic subset of
// articles. The (articleNum + length) % 3 gate touches roughly a third
// of the matching articles; which third never changes for a given
// document, so regeneration is reproducible.
func varyOpener(text string, articleNum int) string {
	if !strings.HasPrefix(text, rigidOpener) {
		return text
	}
	if (articleNum+len(text))%3 != 0 {
		return text
	}
	replacement := openerVariations[articleNum%len(openerVariations)]
	return replacement + strings.TrimPrefix(text, rigidOpener)
}
