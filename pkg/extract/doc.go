// Package extract obtains plain text from supported document formats.
//
// A Registry maps a format tag (the lowercased file extension without the
// dot) to a registered extraction function. The registry is built and
// validated at startup, so an unsupported format fails predictably with
// UnsupportedFormatError instead of silently producing empty text.
// Extraction failures are fatal for the affected file only; the scanner
// reports them as per-file error records.
package extract
