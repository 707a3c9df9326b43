package catalog

import "regexp"

// Category names for the built-in catalog. The string values are part of the
// report contract ("Classifications" field) and must not change casually.
const (
	CategoryCreditCard           Category = "credit card"
	CategoryHealthRecord         Category = "health record"
	CategoryFinancialInfo        Category = "financial info"
	CategoryIntellectualProperty Category = "intellectual property"
	CategoryLegalDocuments       Category = "legal documents"
	CategoryGovernmentalID       Category = "governmental ID"
	CategoryEducationalRecords   Category = "educational records"
	CategoryCorporateInfo        Category = "corporate info"
	CategoryEmployeeData         Category = "employee data"
	CategoryCustomerData         Category = "customer data"
	CategoryCommunicationRecords Category = "communication records"
)

// Default returns the built-in pattern catalog: eleven categories with their
// matching rules and retention periods in days. It is used when no catalog
// file is configured.
func Default() *Catalog {
	c, err := New([]Detector{
		{
			Category:      CategoryCreditCard,
			Pattern:       regexp.MustCompile(`(?:(?:4\d{3})|(?:5[1-5]\d{2})|(?:6(?:011|5\d\d))|(?:3[47]\d{2}))[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}(?:[-\s]?\d{3})?`),
			RetentionDays: 365,
		},
		{
			Category:      CategoryHealthRecord,
			Pattern:       regexp.MustCompile(`\b(?:Patient ID|Medical Record):?\s*\d{4,}\b`),
			RetentionDays: 6 * 365,
		},
		{
			Category:      CategoryFinancialInfo,
			Pattern:       regexp.MustCompile(`\b(?:Account Number:?\s*\d{6,12}|Routing Number:?\s*\d{9})\b`),
			RetentionDays: 10 * 365,
		},
		{
			Category:      CategoryIntellectualProperty,
			Pattern:       regexp.MustCompile(`(?:Patent No\.|Copyright):\s*\w+`),
			RetentionDays: 7 * 365,
		},
		{
			Category:      CategoryLegalDocuments,
			Pattern:       regexp.MustCompile(`(?:Contract|Agreement)\sNo\.:\s*\d+`),
			RetentionDays: 7 * 365,
		},
		{
			Category:      CategoryGovernmentalID,
			Pattern:       regexp.MustCompile(`\b(?:SSN|Social Security No\.):?\s*\d{3}-\d{2}-\d{4}\b`),
			RetentionDays: 365,
		},
		{
			Category:      CategoryEducationalRecords,
			Pattern:       regexp.MustCompile(`\b(?:Student ID|Grade):\s*\w+`),
			RetentionDays: 10 * 365,
		},
		{
			Category:      CategoryCorporateInfo,
			Pattern:       regexp.MustCompile(`(?:Business Plan|Strategic Objective):\s*\w+`),
			RetentionDays: 7 * 365,
		},
		{
			Category:      CategoryEmployeeData,
			Pattern:       regexp.MustCompile(`\bEmployee ID:\s*\d{5,}\b`),
			RetentionDays: 7 * 365,
		},
		{
			Category:      CategoryCustomerData,
			Pattern:       regexp.MustCompile(`\b(?:Customer ID|Purchase History):\s*\w+`),
			RetentionDays: 5 * 365,
		},
		{
			Category:      CategoryCommunicationRecords,
			Pattern:       regexp.MustCompile(`(?:Email:?\s*\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b|Chat Log:?\s*\w+)`),
			RetentionDays: 3 * 365,
		},
	})
	if err != nil {
		// The built-in catalog is validated by tests; failure here is a
		// programming error.
		panic(err)
	}
	return c
}
