package classify

import (
	"custodian-hq/custodian/pkg/catalog"
)

// Result holds the classification outcome for a single document.
type Result struct {
	// Categories are the matched categories in catalog order. Empty when
	// no detector matched; duplicates are impossible because the catalog
	// rejects duplicate categories.
	Categories []catalog.Category

	// RetentionDays is the governing retention period: the maximum
	// retention period among the matched categories, or 0 when Categories
	// is empty.
	RetentionDays int
}

// CategoryNames returns the matched category names as strings, preserving
// catalog order. It never returns nil so the result serializes as a JSON
// array, not null.
func (r Result) CategoryNames() []string {
	names := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		names[i] = string(c)
	}
	return names
}

// Classifier evaluates a catalog's detectors against document text.
// It is stateless apart from the catalog reference and safe for unlimited
// concurrent use.
type Classifier struct {
	catalog *catalog.Catalog
}

// New creates a classifier over the given catalog.
func New(c *catalog.Catalog) *Classifier {
	return &Classifier{catalog: c}
}

// Classify evaluates every detector against the text. Empty text yields an
// empty result with retention 0.
func (c *Classifier) Classify(text string) Result {
	result := Result{Categories: make([]catalog.Category, 0)}

	if text == "" {
		return result
	}

	for _, d := range c.catalog.Detectors() {
		if !d.Matches(text) {
			continue
		}
		result.Categories = append(result.Categories, d.Category)
		if d.RetentionDays > result.RetentionDays {
			result.RetentionDays = d.RetentionDays
		}
	}

	return result
}
