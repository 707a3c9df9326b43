package extract

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Func extracts plain text from the file at path.
type Func func(path string) (string, error)

// UnsupportedFormatError reports a file whose format has no registered
// extractor.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q", e.Format)
}

// Registry maps format tags to extraction functions. It is populated before
// a scan starts and read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	extractors map[string]Func
}

// NewRegistry returns a registry with the built-in extractors registered:
// docx, xlsx, pptx, pdf, and txt.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Func)}
	r.Register("docx", ExtractDocx)
	r.Register("xlsx", ExtractXlsx)
	r.Register("pptx", ExtractPptx)
	r.Register("pdf", ExtractPDF)
	r.Register("txt", ExtractText)
	return r
}

// Register binds a format tag to an extraction function, replacing any
// existing binding. Tags are normalized to lower case.
func (r *Registry) Register(format string, fn Func) {
	r.extractors[strings.ToLower(format)] = fn
}

// Formats returns the registered format tags in sorted order.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Supports reports whether the registry can extract text from path.
func (r *Registry) Supports(path string) bool {
	_, ok := r.extractors[formatTag(path)]
	return ok
}

// Extract resolves the extractor for path by format tag and runs it.
// Returns UnsupportedFormatError when no extractor is registered.
func (r *Registry) Extract(path string) (string, error) {
	tag := formatTag(path)
	fn, ok := r.extractors[tag]
	if !ok {
		return "", &UnsupportedFormatError{Format: tag}
	}
	return fn(path)
}

// Validate checks that every requested format tag has a registered
// extractor. Called at startup so a misconfigured format list fails before
// any file is read.
func (r *Registry) Validate(formats []string) error {
	for _, f := range formats {
		if _, ok := r.extractors[strings.ToLower(f)]; !ok {
			return fmt.Errorf("no extractor registered for format %q", f)
		}
	}
	return nil
}

// formatTag derives the format tag from a file path: the lowercased
// extension without the leading dot.
func formatTag(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
