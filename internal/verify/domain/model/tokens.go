package model

// TokenCategory is one fixed, ordered list of literal strings expected to
// appear somewhere in the decoded shard content.
type TokenCategory struct {
	// Name labels the category in the analysis summary, e.g. "Collections".
	Name string
	// ItemLabel labels a single match announcement, e.g. "collection".
	ItemLabel string
	// Tokens are matched by plain substring containment, in order.
	Tokens []string
}

// Total returns the category size.
func (c TokenCategory) Total() int {
	return len(c.Tokens)
}

// ExpectedData declares, per token category, what a seeded export bundle
// must contain. It is data handed to the scanner, so the dataset can change
// without touching scan logic.
type ExpectedData struct {
	Categories []TokenCategory
}

// DefaultExpectedData returns the dataset written by the sample-data
// generator: two users documents and five cities documents.
func DefaultExpectedData() ExpectedData {
	return ExpectedData{
		Categories: []TokenCategory{
			{
				Name:      "Collections",
				ItemLabel: "collection",
				Tokens:    []string{"cities", "users"},
			},
			{
				Name:      "Documents",
				ItemLabel: "document ID",
				Tokens:    []string{"alovelace", "aturing", "SF", "LA", "DC", "TOK", "BJ"},
			},
			{
				Name:      "Fields",
				ItemLabel: "field",
				Tokens:    []string{"first", "last", "born", "name", "state", "country", "capital", "population"},
			},
			{
				Name:      "Values",
				ItemLabel: "value",
				Tokens:    []string{"Ada", "Lovelace", "Alan", "Turing", "San Francisco", "Los Angeles", "Washington", "Tokyo", "Beijing"},
			},
		},
	}
}
