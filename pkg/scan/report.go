package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EncodeReport writes the records as an indented JSON array. A scan with no
// files yields an empty array, never null.
func EncodeReport(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteReport writes the report to a file, or to stdout when path is "-"
// or empty.
func WriteReport(path string, records []Record) error {
	if path == "" || path == "-" {
		return EncodeReport(os.Stdout, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodeReport(f, records); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write report file %q: %w", path, err)
	}
	return nil
}
