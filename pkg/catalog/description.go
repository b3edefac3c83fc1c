package catalog

import (
	"regexp"
	"strings"
)

const (
	boilerplateMarker = "automates tasks using"
	genericTools      = "essential tools"
	maxOpenerTools    = 3
)

var (
	pluralNodesPattern   = regexp.MustCompile(`(?i)consists of\s+nodes`)
	singularNodePattern  = regexp.MustCompile(`(?i)consists of\s+node`)
	boilerplateAnchorRe  = regexp.MustCompile(`(?i)^.*?(It consists of)`)
	doublePeriodsLiteral = ".."
)

// SynthesizeDescription repairs a scraped description using the already
// normalized title and the record's integration list. Digits are removed
// wholesale, so the two grammar artifacts that leaves behind ("consists of
// nodes" losing its count) are patched back into grammatical sentences, and
// the scraper's generic boilerplate opener is replaced with one naming the
// first few integrations.
func SynthesizeDescription(raw, title string, integrations []string) string {
	if raw == "" {
		return title + " workflow template. Automate your processes with n8n."
	}

	clean := digitRunPattern.ReplaceAllString(raw, "")

	clean = pluralNodesPattern.ReplaceAllString(clean, "consists of multiple powerful nodes")
	clean = singularNodePattern.ReplaceAllString(clean, "consists of a specialized node")

	if strings.Contains(clean, boilerplateMarker) {
		tools := genericTools
		if len(integrations) > 0 {
			named := integrations
			if len(named) > maxOpenerTools {
				named = named[:maxOpenerTools]
			}

			tools = strings.Join(named, ", ")
		}

		opener := "Streamline your operations with this n8n automation template for " + tools + "."
		clean = boilerplateAnchorRe.ReplaceAllString(clean, opener+" ${1}")
	}

	clean = strings.ReplaceAll(clean, doublePeriodsLiteral, ".")

	return strings.TrimSpace(whitespacePattern.ReplaceAllString(clean, " "))
}
