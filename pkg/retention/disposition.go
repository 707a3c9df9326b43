package retention

import (
	"time"

	"custodian-hq/custodian/pkg/reputation"
)

// State is the terminal disposition of a file within a scan. A file is
// evaluated exactly once per scan; there are no further transitions.
type State int

const (
	// StateRetained means the file is kept, labelled "Retain until <date>".
	// The date may already be in the past: time-based expiry alone never
	// deletes a file.
	StateRetained State = iota

	// StateDeleted means the file's retention has expired AND its
	// reputation verdict is malicious.
	StateDeleted
)

// Disposition is the resolved outcome for a file.
type Disposition struct {
	// State is the terminal disposition state.
	State State

	// DeletionDate is the computed end of the retention period. Set for
	// both states; the report label for a retained file embeds it.
	DeletionDate time.Time
}

// Resolve applies the fixed disposition policy: Deleted only when now is
// strictly after the deletion date AND the verdict is malicious. Every
// other combination retains the file, including a clean or unknown file
// whose deletion date has passed.
func Resolve(now, deletionDate time.Time, verdict reputation.Verdict) Disposition {
	expired := now.After(deletionDate)

	if expired && verdict == reputation.VerdictMalicious {
		return Disposition{State: StateDeleted, DeletionDate: deletionDate}
	}
	return Disposition{State: StateRetained, DeletionDate: deletionDate}
}
