package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"custodian-hq/custodian/pkg/catalog"
	"custodian-hq/custodian/pkg/cli"
)

var lintFlags struct {
	file   string
	dir    string
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate pattern catalog files",
	Long: `Validate catalog files for syntax and structural errors.

The lint command parses catalog files and performs validation:
  - YAML syntax validation
  - Regular expression compilation
  - Category uniqueness
  - Retention period bounds

Examples:
  # Lint single file
  custodian lint --file catalog.yaml

  # Lint directory
  custodian lint --dir catalogs/

  # JSON output for CI/CD
  custodian lint --file catalog.yaml --format json`,
	RunE: lintCatalogs,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "catalog file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of catalog files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

// LintResult represents the validation result for a single catalog file.
type LintResult struct {
	File      string `json:"file"`
	Valid     bool   `json:"valid"`
	Detectors int    `json:"detectors,omitempty"`
	Error     string `json:"error,omitempty"`
}

func lintCatalogs(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}

	if lintFlags.dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(lintFlags.dir, pattern))
			if err != nil {
				return fmt.Errorf("failed to list catalog files: %w", err)
			}
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no catalog files found")
	}

	results := make([]LintResult, 0, len(files))
	for _, file := range files {
		results = append(results, lintCatalogFile(file))
	}

	if lintFlags.format == "json" {
		return lintOutputJSON(results)
	}
	return lintOutputText(results)
}

func lintCatalogFile(path string) LintResult {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return LintResult{File: path, Valid: false, Error: err.Error()}
	}
	return LintResult{File: path, Valid: true, Detectors: cat.Len()}
}

func lintOutputText(results []LintResult) error {
	failed := 0

	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)
		if result.Valid {
			fmt.Printf("✓ %d detector(s), all patterns compile\n", result.Detectors)
		} else {
			fmt.Printf("✗ Error: %s\n", result.Error)
			failed++
		}
		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d file(s) checked, %d invalid\n", len(results), failed)

	if failed > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}
	return nil
}

func lintOutputJSON(results []LintResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return err
	}
	for _, result := range results {
		if !result.Valid {
			return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
		}
	}
	return nil
}
