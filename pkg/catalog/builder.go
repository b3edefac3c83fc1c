package catalog

import (
	"hash/fnv"

	"github.com/nexusai/nexflow/pkg/models"
)

const downloadsPlaceholderRange = 1000

// DownloadsFunc produces the placeholder download count substituted when a
// raw record carries no real count.
type DownloadsFunc func(id string) int

// DeterministicDownloads derives a stable placeholder in [0,1000) from the
// record id, so repeated builds of the same input produce the same catalog.
func DeterministicDownloads(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))

	return int(h.Sum32() % downloadsPlaceholderRange)
}

// Builder maps raw scraped records onto the canonical catalog.
type Builder struct {
	cfg       Config
	titles    *TitleNormalizer
	downloads DownloadsFunc
}

func NewBuilder(cfg Config) *Builder {
	return &Builder{
		cfg:       cfg,
		titles:    NewTitleNormalizer(cfg),
		downloads: DeterministicDownloads,
	}
}

// WithDownloads overrides the placeholder generator, mainly for tests.
func (b *Builder) WithDownloads(fn DownloadsFunc) *Builder {
	b.downloads = fn

	return b
}

// Build maps each raw record onto one Workflow, preserving input order with
// no sorting, deduplication, or merging. Title, category, and complexity
// are three independent derivations over the same raw record: category
// keys off the raw title and tags, complexity off the node count, and only
// description synthesis consumes the normalized title. Malformed or absent
// fields degrade to defaults; the mapping never rejects a record.
func (b *Builder) Build(raw []models.RawWorkflowRecord) []*models.Workflow {
	workflows := make([]*models.Workflow, 0, len(raw))

	for _, record := range raw {
		workflows = append(workflows, b.buildOne(record))
	}

	return workflows
}

func (b *Builder) buildOne(record models.RawWorkflowRecord) *models.Workflow {
	title := b.titles.Normalize(record.Title)

	integrations := record.Integrations
	if integrations == nil {
		integrations = []string{}
	}

	tags := record.Tags
	if tags == nil {
		tags = []string{}
	}

	price := record.Price
	if price < 0 {
		price = 0
	}

	downloads := record.Downloads
	if downloads <= 0 {
		downloads = b.downloads(record.ID)
	}

	return &models.Workflow{
		ID:           record.ID,
		Title:        title,
		Description:  SynthesizeDescription(record.Description, title, integrations),
		Price:        price,
		Tier:         models.TierForPrice(price),
		Category:     ClassifyCategory(b.cfg, record.Title, record.Tags),
		Complexity:   ClassifyComplexity(b.cfg, record.Complexity, CountNodes(record.NodeOverview)),
		Integrations: integrations,
		Tags:         tags,
		Featured:     record.Featured,
		Downloads:    downloads,
		JSON:         record.JSON,
		JSONURL:      record.JSONURL,
		NodeOverview: record.NodeOverview,
	}
}
