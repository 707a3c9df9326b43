package classify

import (
	"reflect"
	"testing"

	"custodian-hq/custodian/pkg/catalog"
)

func TestClassify(t *testing.T) {
	c := New(catalog.Default())

	tests := []struct {
		name           string
		text           string
		wantCategories []string
		wantRetention  int
	}{
		{
			name:           "no matches",
			text:           "Nothing sensitive in this document at all.",
			wantCategories: []string{},
			wantRetention:  0,
		},
		{
			name:           "empty text",
			text:           "",
			wantCategories: []string{},
			wantRetention:  0,
		},
		{
			name:           "account number",
			text:           "Account Number: 123456",
			wantCategories: []string{"financial info"},
			wantRetention:  3650,
		},
		{
			name:           "credit card",
			text:           "Card on file: 4111-1111-1111-1111",
			wantCategories: []string{"credit card"},
			wantRetention:  365,
		},
		{
			name:           "health record",
			text:           "Patient ID: 884213 admitted on Monday",
			wantCategories: []string{"health record"},
			wantRetention:  2190,
		},
		{
			name:           "ssn",
			text:           "SSN: 123-45-6789",
			wantCategories: []string{"governmental ID"},
			wantRetention:  365,
		},
		{
			name:           "employee id",
			text:           "Employee ID: 99213",
			wantCategories: []string{"employee data"},
			wantRetention:  2555,
		},
		{
			name:           "governing retention is the max",
			text:           "Card 4111-1111-1111-1111 for Patient ID: 884213",
			wantCategories: []string{"credit card", "health record"},
			wantRetention:  2190,
		},
		{
			name: "categories follow catalog order not match position",
			text: "Employee ID: 99213 precedes 4111-1111-1111-1111 here",
			wantCategories: []string{
				"credit card",
				"employee data",
			},
			wantRetention: 2555,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)

			if !reflect.DeepEqual(got.CategoryNames(), tt.wantCategories) {
				t.Errorf("expected categories %v, got %v",
					tt.wantCategories, got.CategoryNames())
			}
			if got.RetentionDays != tt.wantRetention {
				t.Errorf("expected retention %d, got %d",
					tt.wantRetention, got.RetentionDays)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(catalog.Default())
	text := "Account Number: 123456 and Email: alice@example.com and Employee ID: 99213"

	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		got := c.Classify(text)
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("classification not deterministic: run %d got %v, want %v",
				i, got, first)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	c := New(catalog.Default())

	// Appending another category's match must never decrease the governing
	// retention period.
	base := c.Classify("Card: 4111-1111-1111-1111")
	extended := c.Classify("Card: 4111-1111-1111-1111 Account Number: 123456")

	if extended.RetentionDays < base.RetentionDays {
		t.Errorf("retention decreased after additional match: %d -> %d",
			base.RetentionDays, extended.RetentionDays)
	}
	if len(extended.Categories) < len(base.Categories) {
		t.Errorf("category count decreased after additional match: %d -> %d",
			len(base.Categories), len(extended.Categories))
	}
}

func TestCategoryNamesNeverNil(t *testing.T) {
	c := New(catalog.Default())
	got := c.Classify("")
	if got.CategoryNames() == nil {
		t.Error("expected non-nil category name slice for empty result")
	}
}
