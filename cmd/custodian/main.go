// Custodian is a document classification and retention engine.
//
// It scans a directory of documents, matching extracted text against a
// catalog of sensitive-data patterns, and produces a JSON report with:
//   - Matched classification categories per file
//   - Retention period and computed deletion date
//   - Content-hash reputation verdict (VirusTotal)
//   - Disposition: retain or delete
//
// Usage:
//
//	# Scan a directory with the built-in catalog
//	custodian scan --dir /srv/documents
//
//	# Scan with a custom pattern catalog and write the report to a file
//	custodian scan --dir /srv/documents --catalog catalog.yaml --output report.json
//
//	# Run scans on a schedule
//	custodian scan --dir /srv/documents --schedule "0 3 * * *"
//
//	# Validate a pattern catalog
//	custodian lint --file catalog.yaml
//
//	# Inspect stored scan history
//	custodian results list
//	custodian results show <scan-id>
//
//	# Show version information
//	custodian version
package main

func main() {
	Execute()
}
