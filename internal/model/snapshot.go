package model

// AppState is the full application state: every entity collection.
type AppState struct {
	Cards        []Card        `json:"cards"`
	Categories   []Category    `json:"categories"`
	Incomes      []Income      `json:"incomes"`
	Expenses     []Expense     `json:"expenses"`
	Installments []Installment `json:"installments"`
}

// ExportVersion is the current backup envelope version.
const ExportVersion = 10

// Export is the backup envelope written by the export command: the whole
// state snapshot, verbatim.
type Export struct {
	Version    int      `json:"version"`
	ExportedAt string   `json:"exportedAt"` // YYYY-MM-DD
	Data       AppState `json:"data"`
}
