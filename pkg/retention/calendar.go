package retention

import "time"

// DateLayout is the wire format for dates in the scan report.
const DateLayout = "2006-01-02"

// DeletionDate computes the calendar date on which a file's retention
// obligation ends: the creation timestamp's local date plus retentionDays
// calendar days. Retention of 0 yields the creation date itself, meaning no
// sensitive category matched and no extended retention applies.
func DeletionDate(createdAt time.Time, retentionDays int) time.Time {
	y, m, d := createdAt.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, createdAt.Location())
	return date.AddDate(0, 0, retentionDays)
}
