package catalog

import (
	"regexp"
	"strings"
)

var (
	jsonSuffixPattern = regexp.MustCompile(`(?i)\.json$`)
	digitRunPattern   = regexp.MustCompile(`\d+`)
	separatorPattern  = regexp.MustCompile(`[-_]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// TitleNormalizer turns raw scraped filenames and titles into consistent
// display titles. Build one per Config; Normalize is safe for concurrent use.
type TitleNormalizer struct {
	cfg          Config
	acronyms     *regexp.Regexp
	brands       *regexp.Regexp
	brandCasings map[string]string
}

func NewTitleNormalizer(cfg Config) *TitleNormalizer {
	casings := make(map[string]string, len(cfg.Brands))
	brandTokens := make([]string, 0, len(cfg.Brands))

	for token, canonical := range cfg.Brands {
		casings[strings.ToLower(token)] = canonical
		brandTokens = append(brandTokens, regexp.QuoteMeta(strings.ToLower(token)))
	}

	acronymTokens := make([]string, 0, len(cfg.Acronyms))
	for _, token := range cfg.Acronyms {
		acronymTokens = append(acronymTokens, regexp.QuoteMeta(strings.ToLower(token)))
	}

	return &TitleNormalizer{
		cfg:          cfg,
		acronyms:     regexp.MustCompile(`(?i)\b(` + strings.Join(acronymTokens, "|") + `)\b`),
		brands:       regexp.MustCompile(`(?i)\b(` + strings.Join(brandTokens, "|") + `)\b`),
		brandCasings: casings,
	}
}

// Normalize applies the cleanup steps in strict order: drop a trailing
// .json suffix, erase digit runs (one space each), turn dashes and
// underscores into spaces, collapse whitespace, title-case, fix acronym
// and brand casings, and pad titles shorter than two words with the
// configured suffix. Empty input stays empty.
func (tn *TitleNormalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	clean := jsonSuffixPattern.ReplaceAllString(raw, "")
	clean = digitRunPattern.ReplaceAllString(clean, " ")
	clean = separatorPattern.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(whitespacePattern.ReplaceAllString(clean, " "))

	words := strings.Fields(clean)
	for i, word := range words {
		if strings.EqualFold(word, tn.cfg.ProductToken) {
			// The product name keeps its trademark casing.
			words[i] = tn.cfg.ProductToken

			continue
		}

		words[i] = capitalize(word)
	}

	fixed := tn.fixCommonTerms(strings.Join(words, " "))

	// A title that was nothing but digits and separators cleans down to
	// zero words; the suffix still applies so the result is never empty.
	if len(strings.Fields(fixed)) < 2 {
		return strings.TrimSpace(fixed + " " + tn.cfg.TitleSuffix)
	}

	return fixed
}

func (tn *TitleNormalizer) fixCommonTerms(title string) string {
	title = tn.acronyms.ReplaceAllStringFunc(title, strings.ToUpper)

	return tn.brands.ReplaceAllStringFunc(title, func(match string) string {
		if canonical, ok := tn.brandCasings[strings.ToLower(match)]; ok {
			return canonical
		}

		return match
	})
}

func capitalize(word string) string {
	if word == "" {
		return word
	}

	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
