// Package reputation resolves a file's content hash to a three-state
// reputation verdict using the VirusTotal file-report API.
//
// The resolver is deliberately fail-soft: transport errors, authentication
// failures, rate limiting, and unknown hashes all resolve to an Unknown
// verdict rather than an error, so one lookup failure can never abort a
// file's classification or the scan. Verdict display strings belong to the
// report contract and are applied only at report assembly, never here.
package reputation
