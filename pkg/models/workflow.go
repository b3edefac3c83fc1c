// Package models defines the core domain models for the workflow template marketplace.
package models

// PricingTier is the pricing classification of a template, derived from its price.
type PricingTier string

const (
	TierFree PricingTier = "Free" // Price of zero
	TierPaid PricingTier = "Paid" // Any positive price
)

// TierForPrice derives the pricing tier from a price. There is no other
// mutation path: tier and price always agree.
func TierForPrice(price float64) PricingTier {
	if price > 0 {
		return TierPaid
	}

	return TierFree
}

// Complexity is the difficulty tier assigned to a template.
type Complexity string

const (
	ComplexityBeginner     Complexity = "Beginner"
	ComplexityIntermediate Complexity = "Intermediate"
	ComplexityAdvanced     Complexity = "Advanced"
)

// AllComplexities lists every complexity tier in ascending order.
func AllComplexities() []Complexity {
	return []Complexity{ComplexityBeginner, ComplexityIntermediate, ComplexityAdvanced}
}

// Category is one of a fixed closed set of subject-matter labels. Every
// workflow carries exactly one; the classifier never fails to assign one.
type Category string

const (
	CategoryAIAgents      Category = "AI-Powered Agents"
	CategoryMarketing     Category = "Marketing & Content"
	CategorySales         Category = "Sales & Outreach"
	CategoryFinance       Category = "Finance & Money"
	CategoryHR            Category = "HR & Recruiting"
	CategoryDevOps        Category = "DevOps & Cloud"
	CategorySecurityIT    Category = "Security & IT Ops"
	CategoryDataAnalytics Category = "Data & Analytics"
	CategorySupport       Category = "Customer Support"
	CategoryEcommerce     Category = "Ecommerce"
	CategoryHealthcare    Category = "Healthcare & Fitness"
	CategoryRealEstate    Category = "Real Estate"
	CategoryResearch      Category = "Research & Academia"
	CategorySocialMedia   Category = "Social Media"
	CategoryProductivity  Category = "Productivity & Calendars"
)

// AllCategories lists the closed category set. The leading entries follow
// the classifier's rule order; categories without a keyword rule come last.
func AllCategories() []Category {
	return []Category{
		CategoryMarketing,
		CategorySales,
		CategoryFinance,
		CategoryHR,
		CategoryDevOps,
		CategorySecurityIT,
		CategoryDataAnalytics,
		CategoryAIAgents,
		CategorySupport,
		CategoryEcommerce,
		CategoryHealthcare,
		CategoryRealEstate,
		CategoryResearch,
		CategorySocialMedia,
		CategoryProductivity,
	}
}

// RawWorkflowRecord is the untrusted scraped shape a catalog is built from.
// Any field may be absent or malformed; the builder degrades missing fields
// to defaults instead of rejecting the record.
type RawWorkflowRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price,omitempty"`
	Category     string   `json:"category,omitempty"`
	Complexity   string   `json:"complexity,omitempty"`
	Integrations []string `json:"integrations,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
	Downloads    int      `json:"downloads,omitempty"`
	JSON         string   `json:"json,omitempty"`
	JSONURL      string   `json:"jsonUrl,omitempty"`
	NodeOverview string   `json:"nodeOverview,omitempty"`
}

// Workflow is the canonical catalog entity. The catalog is built once at
// startup and is read-only afterwards; no consumer may mutate a Workflow
// in place.
type Workflow struct {
	ID           string      `json:"id"           validate:"required"`
	Title        string      `json:"title"        validate:"required"`
	Description  string      `json:"description"  validate:"required"`
	Price        float64     `json:"price"        validate:"gte=0"`
	Tier         PricingTier `json:"tier"         validate:"required,oneof=Free Paid"`
	Category     Category    `json:"category"     validate:"required"`
	Complexity   Complexity  `json:"complexity"   validate:"required,oneof=Beginner Intermediate Advanced"`
	Integrations []string    `json:"integrations"`
	Tags         []string    `json:"tags"`
	Featured     bool        `json:"featured"`
	Downloads    int         `json:"downloads"    validate:"gte=0"`
	JSON         string      `json:"json,omitempty"`
	JSONURL      string      `json:"jsonUrl,omitempty"`
	NodeOverview string      `json:"nodeOverview,omitempty"`
}

// HasInlineContent reports whether the template document is stored inline.
// JSON and JSONURL are mutually-intended-exclusive; inline content wins
// when both are present.
func (w *Workflow) HasInlineContent() bool {
	return w.JSON != ""
}
