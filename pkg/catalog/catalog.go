package catalog

import (
	"fmt"
	"regexp"
)

// Category is a named class of sensitive information. Each category carries
// exactly one retention period, defined in the catalog and never overridden
// per file.
type Category string

// Detector binds a compiled matching rule to exactly one category.
// Detectors are evaluated independently; they never consult each other's
// results, so adding or removing a detector cannot change unrelated outcomes.
type Detector struct {
	// Category is the category reported when the pattern matches.
	Category Category

	// Pattern is the compiled matching rule.
	Pattern *regexp.Regexp

	// RetentionDays is the retention period, in calendar days, for the
	// category. Always non-negative; enforced by Validate.
	RetentionDays int
}

// Matches reports whether the detector's pattern matches the text.
func (d Detector) Matches(text string) bool {
	return d.Pattern.MatchString(text)
}

// Catalog is an ordered, immutable sequence of detectors. The order defines
// the order in which matched categories are reported.
type Catalog struct {
	detectors []Detector
	retention map[Category]int
}

// New builds a catalog from an ordered detector list and validates it.
func New(detectors []Detector) (*Catalog, error) {
	c := &Catalog{
		detectors: detectors,
		retention: make(map[Category]int, len(detectors)),
	}
	for _, d := range detectors {
		c.retention[d.Category] = d.RetentionDays
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Detectors returns the ordered detector list. Callers must not modify the
// returned slice.
func (c *Catalog) Detectors() []Detector {
	return c.detectors
}

// Len returns the number of detectors in the catalog.
func (c *Catalog) Len() int {
	return len(c.detectors)
}

// RetentionDays returns the retention period for a category, or 0 if the
// category is not in the catalog.
func (c *Catalog) RetentionDays(cat Category) int {
	return c.retention[cat]
}

// Validate checks the catalog's structural invariants. A catalog that fails
// validation must never be used for a scan; validation errors are fatal at
// startup rather than handled per file.
func (c *Catalog) Validate() error {
	if len(c.detectors) == 0 {
		return fmt.Errorf("catalog has no detectors")
	}

	seen := make(map[Category]bool, len(c.detectors))
	for i, d := range c.detectors {
		if d.Category == "" {
			return fmt.Errorf("detector %d: empty category", i)
		}
		if seen[d.Category] {
			return fmt.Errorf("detector %d: duplicate category %q", i, d.Category)
		}
		seen[d.Category] = true

		if d.Pattern == nil {
			return fmt.Errorf("detector %d (%s): nil pattern", i, d.Category)
		}
		if d.RetentionDays < 0 {
			return fmt.Errorf("detector %d (%s): negative retention period %d",
				i, d.Category, d.RetentionDays)
		}
	}

	return nil
}
