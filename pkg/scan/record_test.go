package scan

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRecordMarshalFull(t *testing.T) {
	rec := Record{
		FileName:         "report.docx",
		Classifications:  []string{"credit card", "health record"},
		VirusTotalResult: "Clean",
		RetentionDays:    2190,
		DeletionDate:     "2029-03-15",
		DeletionStatus:   "Retain until 2029-03-15",
		Hash:             "abc123",
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{
		"file_name", "Classifications", "virus_total_result",
		"retention_days", "Deletion Date", "Deletion Status", "Hash",
	} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if _, ok := got["Error"]; ok {
		t.Errorf("full record must not carry an Error field: %s", data)
	}
	if got["Deletion Status"] != "Retain until 2029-03-15" {
		t.Errorf("unexpected deletion status: %v", got["Deletion Status"])
	}
}

func TestRecordMarshalError(t *testing.T) {
	rec := Record{FileName: "broken.pdf", Err: "failed to open pdf"}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	// Error records carry only the identifier and the error; everything
	// else is omitted, not defaulted.
	if len(got) != 2 {
		t.Errorf("expected exactly 2 keys, got %d: %s", len(got), data)
	}
	if got["file_name"] != "broken.pdf" {
		t.Errorf("unexpected file_name: %v", got["file_name"])
	}
	if got["Error"] != "failed to open pdf" {
		t.Errorf("unexpected Error: %v", got["Error"])
	}
}

func TestRecordMarshalEmptyClassifications(t *testing.T) {
	rec := Record{FileName: "plain.txt", VirusTotalResult: "Clean"}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(data), `"Classifications":[]`) {
		t.Errorf("expected empty array, not null: %s", data)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	records := []Record{
		{
			FileName:         "a.txt",
			Classifications:  []string{"financial info"},
			VirusTotalResult: "Potential Malicious",
			RetentionDays:    3650,
			DeletionDate:     "2033-01-01",
			DeletionStatus:   "Deleted",
			Hash:             "deadbeef",
		},
		{FileName: "b.pdf", Err: "extraction failed"},
	}

	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].DeletionStatus != "Deleted" || got[0].RetentionDays != 3650 {
		t.Errorf("full record did not survive round trip: %+v", got[0])
	}
	if got[1].Err != "extraction failed" {
		t.Errorf("error record did not survive round trip: %+v", got[1])
	}
}

func TestEncodeReport(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeReport(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty array for no records, got %q", buf.String())
	}
}

func TestEncodeReportOrder(t *testing.T) {
	records := []Record{
		{FileName: "z.txt", VirusTotalResult: "Clean"},
		{FileName: "a.txt", Err: "boom"},
		{FileName: "m.txt", VirusTotalResult: "Clean"},
	}

	var buf bytes.Buffer
	if err := EncodeReport(&buf, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"z.txt", "a.txt", "m.txt"}
	for i, rec := range got {
		if rec.FileName != want[i] {
			t.Errorf("record %d: expected %s, got %s", i, want[i], rec.FileName)
		}
	}
}
