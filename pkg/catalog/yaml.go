package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// fileEntry is the YAML shape of a single catalog entry.
type fileEntry struct {
	// Category is the reported category name.
	Category string `yaml:"category"`

	// Pattern is the detector's regular expression (RE2 syntax).
	Pattern string `yaml:"pattern"`

	// RetentionDays is the category's retention period in calendar days.
	RetentionDays int `yaml:"retention_days"`
}

// catalogFile is the YAML shape of a catalog file.
type catalogFile struct {
	Detectors []fileEntry `yaml:"detectors"`
}

// LoadFile reads a catalog from a YAML file. The file order defines the
// reporting order. Patterns are compiled eagerly so a malformed pattern
// fails at load time, not during a scan.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %q: %w", path, err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %q: %w", path, err)
	}

	detectors := make([]Detector, 0, len(cf.Detectors))
	for i, e := range cf.Detectors {
		re, err := regexp.Compile(e.Pattern)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): invalid pattern: %w",
				i, e.Category, err)
		}
		detectors = append(detectors, Detector{
			Category:      Category(e.Category),
			Pattern:       re,
			RetentionDays: e.RetentionDays,
		})
	}

	c, err := New(detectors)
	if err != nil {
		return nil, fmt.Errorf("catalog file %q: %w", path, err)
	}
	return c, nil
}
