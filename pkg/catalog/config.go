// Package catalog implements the normalization and faceted-filtering
// pipeline that turns messy scraped template metadata into the canonical
// marketplace catalog.
package catalog

import "github.com/nexusai/nexflow/pkg/models"

// CategoryRule maps a category to the substrings that select it. Rules are
// evaluated in slice order and the first match wins, so a title matching
// both marketing and sales keywords resolves to whichever rule comes first.
type CategoryRule struct {
	Category models.Category
	Keywords []string
}

// Config carries the fixed vocabularies the pipeline depends on. The tables
// are configuration data, not behavior, but they are load-bearing: changing
// their order changes classification output.
type Config struct {
	// KnownPlatforms is the priority-ordered allow-list used by platform
	// detection and filtering. A platform absent from this list is never
	// surfaced, however prominent it is in the data.
	KnownPlatforms []string

	// CategoryRules is the ordered keyword table for category
	// classification. FallbackCategory is returned when no rule matches,
	// which makes classification total.
	CategoryRules    []CategoryRule
	FallbackCategory models.Category

	// Acronyms are short tokens forced to all-uppercase in titles; Brands
	// maps known product tokens to their canonical casing. Both apply as
	// whole-word, case-insensitive replacements after title-casing.
	Acronyms []string
	Brands   map[string]string

	// ProductToken is the product name kept in its trademark lowercase
	// form instead of being title-cased.
	ProductToken string

	// TitleSuffix is appended when a normalized title ends up shorter
	// than two words.
	TitleSuffix string

	// BeginnerMaxNodes and IntermediateMaxNodes are the structural
	// complexity thresholds; anything above the latter is Advanced.
	BeginnerMaxNodes     int
	IntermediateMaxNodes int
}

// DefaultConfig returns the production vocabulary tables.
func DefaultConfig() Config {
	return Config{
		KnownPlatforms: []string{
			"Google", "Slack", "Notion", "OpenAI", "PagerDuty", "AWS", "Fitbit", "Misc",
			"Stripe", "Zoom", "Telegram", "GitHub", "LinkedIn", "CRM", "Home Assistant",
			"Philips Hue", "Transcription", "Jira", "ESPN", "Medium", "Twilio",
			"Eventbrite", "Instagram", "Salesforce", "Clearbit", "Postgres",
			"Todoist", "Zendesk", "Freshdesk", "Moodle",
		},
		CategoryRules: []CategoryRule{
			{models.CategoryMarketing, []string{"marketing", "seo", "blog", "content", "social", "tweet", "linkedin"}},
			{models.CategorySales, []string{"sales", "crm", "lead", "outreach", "hubspot", "salesforce", "pipedrive"}},
			{models.CategoryFinance, []string{"finance", "money", "invoice", "accounting", "stripe", "xero", "quickbooks"}},
			{models.CategoryHR, []string{"hr", "recruiting", "employee", "onboarding", "interview", "candidate"}},
			{models.CategoryDevOps, []string{"devops", "aws", "docker", "kubernetes", "deploy", "git", "monitoring", "incident"}},
			{models.CategorySecurityIT, []string{"security", "threat", "vulnerability"}},
			{models.CategoryDataAnalytics, []string{"data", "analytics", "report", "dashboard", "sql", "postgres", "scrape"}},
			{models.CategoryAIAgents, []string{"ai", "gpt", "openai", "llm", "bot", "chat", "claude", "model"}},
			{models.CategorySupport, []string{"support", "ticket", "customer", "intercom", "zendesk"}},
			{models.CategoryEcommerce, []string{"shop", "commerce", "store", "product", "woo"}},
			{models.CategoryHealthcare, []string{"health", "fitness"}},
			{models.CategoryRealEstate, []string{"estate", "property"}},
			{models.CategoryResearch, []string{"research", "academic", "university", "paper"}},
		},
		FallbackCategory: models.CategoryProductivity,
		Acronyms: []string{
			"gpt", "api", "seo", "crm", "sql", "aws", "llm", "json",
			"http", "ftp", "smtp", "html", "css", "rss",
		},
		Brands: map[string]string{
			"ai":        "AI",
			"tv":        "TV",
			"whatsapp":  "WhatsApp",
			"youtube":   "YouTube",
			"wordpress": "WordPress",
			"zapier":    "Zapier",
			"github":    "GitHub",
			"n8n":       "n8n",
		},
		ProductToken:         "n8n",
		TitleSuffix:          "Automation",
		BeginnerMaxNodes:     5,
		IntermediateMaxNodes: 12,
	}
}
