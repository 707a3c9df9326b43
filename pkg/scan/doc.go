// Package scan runs the per-file classification pipeline and assembles the
// scan report.
//
// Each file flows through extract -> classify -> hash -> reputation ->
// disposition independently of every other file; the scanner fans the files
// out over a bounded worker pool and preserves input order only in the final
// report. One file's failure never affects another: extraction and read
// errors surface as that file's Error record, and the report always carries
// exactly one record per discovered file.
package scan
