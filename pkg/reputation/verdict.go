package reputation

// Verdict is the three-state reputation outcome for a content hash.
type Verdict int

const (
	// VerdictUnknown covers both "lookup failed" and "hash not previously
	// seen"; the two are not distinguished at the verdict level.
	VerdictUnknown Verdict = iota

	// VerdictClean means the hash is known and no engine flagged it.
	VerdictClean

	// VerdictMalicious means at least one engine flagged the hash.
	VerdictMalicious
)

// String returns the verdict's internal name, used in logs and metrics.
// Report display strings are separate and live in the report assembler.
func (v Verdict) String() string {
	switch v {
	case VerdictClean:
		return "clean"
	case VerdictMalicious:
		return "malicious"
	default:
		return "unknown"
	}
}

// Result is the outcome of a reputation lookup.
type Result struct {
	// Verdict is the resolved three-state verdict.
	Verdict Verdict

	// MaliciousCount is the raw number of engines that flagged the hash.
	// Zero when the verdict is Clean or Unknown.
	MaliciousCount int
}
