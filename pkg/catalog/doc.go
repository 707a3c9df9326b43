// Package catalog defines the pattern catalog: the ordered set of detectors
// that bind a sensitive-information category to a matching rule and a fixed
// retention period.
//
// The catalog is pure data. Changing a category's pattern or retention period
// is a data edit (YAML), not a code edit, so the retention policy stays
// auditable. The catalog is immutable at run time; hot reload swaps in a
// freshly validated catalog atomically via Store.
package catalog
