package scan

import (
	"encoding/json"
	"time"

	"custodian-hq/custodian/pkg/reputation"
	"custodian-hq/custodian/pkg/retention"
)

// Reputation display strings. These are part of the report contract and are
// applied only here, never inside the reputation package.
const (
	displayClean     = "Clean"
	displayMalicious = "Potential Malicious"
	displayNotFound  = "Hash was not found in virustotal - Maybe Clean"
)

// Record is one entry in the scan report. A record is either a full result
// or an error record; an error record serializes as {file_name, Error} with
// every other field omitted, not defaulted.
type Record struct {
	// FileName identifies the file within the scan.
	FileName string

	// Err is the per-file failure, empty on success.
	Err string

	// Classifications are the matched category names in catalog order.
	Classifications []string

	// VirusTotalResult is the verdict display string.
	VirusTotalResult string

	// RetentionDays is the governing retention period.
	RetentionDays int

	// DeletionDate is the computed deletion date, formatted YYYY-MM-DD.
	DeletionDate string

	// DeletionStatus is "Deleted" or "Retain until YYYY-MM-DD".
	DeletionStatus string

	// Hash is the hex-encoded SHA-256 of the file contents.
	Hash string
}

// fullRecord is the JSON shape of a successful record.
type fullRecord struct {
	FileName         string   `json:"file_name"`
	Classifications  []string `json:"Classifications"`
	VirusTotalResult string   `json:"virus_total_result"`
	RetentionDays    int      `json:"retention_days"`
	DeletionDate     string   `json:"Deletion Date"`
	DeletionStatus   string   `json:"Deletion Status"`
	Hash             string   `json:"Hash"`
}

// errorRecord is the JSON shape of a failed record.
type errorRecord struct {
	FileName string `json:"file_name"`
	Error    string `json:"Error"`
}

// MarshalJSON emits the report-contract shape for the record.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(errorRecord{FileName: r.FileName, Error: r.Err})
	}

	classifications := r.Classifications
	if classifications == nil {
		classifications = []string{}
	}

	return json.Marshal(fullRecord{
		FileName:         r.FileName,
		Classifications:  classifications,
		VirusTotalResult: r.VirusTotalResult,
		RetentionDays:    r.RetentionDays,
		DeletionDate:     r.DeletionDate,
		DeletionStatus:   r.DeletionStatus,
		Hash:             r.Hash,
	})
}

// UnmarshalJSON accepts either record shape.
func (r *Record) UnmarshalJSON(data []byte) error {
	var er errorRecord
	if err := json.Unmarshal(data, &er); err != nil {
		return err
	}
	if er.Error != "" {
		*r = Record{FileName: er.FileName, Err: er.Error}
		return nil
	}

	var fr fullRecord
	if err := json.Unmarshal(data, &fr); err != nil {
		return err
	}
	*r = Record{
		FileName:         fr.FileName,
		Classifications:  fr.Classifications,
		VirusTotalResult: fr.VirusTotalResult,
		RetentionDays:    fr.RetentionDays,
		DeletionDate:     fr.DeletionDate,
		DeletionStatus:   fr.DeletionStatus,
		Hash:             fr.Hash,
	}
	return nil
}

// errRecord builds an error record for a file.
func errRecord(fileName string, err error) Record {
	return Record{FileName: fileName, Err: err.Error()}
}

// verdictDisplay maps a verdict to its report display string. Unknown maps
// to the not-found string: the contract does not distinguish "never seen"
// from "lookup failed".
func verdictDisplay(v reputation.Verdict) string {
	switch v {
	case reputation.VerdictClean:
		return displayClean
	case reputation.VerdictMalicious:
		return displayMalicious
	default:
		return displayNotFound
	}
}

// statusDisplay maps a disposition to its report display string.
func statusDisplay(d retention.Disposition) string {
	if d.State == retention.StateDeleted {
		return "Deleted"
	}
	return "Retain until " + d.DeletionDate.Format(retention.DateLayout)
}

// formatDate formats a report date.
func formatDate(t time.Time) string {
	return t.Format(retention.DateLayout)
}
