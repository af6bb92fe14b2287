// Package importing provides the bulk import pipeline: row-by-row
// validation with per-row outcome accounting, all successes committed
// together in one storage transaction.
package importing

// Outcome classifies what happened to a single input row. Every batch
// importer uses the same enumeration.
type Outcome string

const (
	OutcomeInserted         Outcome = "inserted"
	OutcomeSkippedDuplicate Outcome = "skipped_duplicate"
	OutcomeSkippedInvalid   Outcome = "skipped_invalid"
	OutcomeErrorUnresolved  Outcome = "error_unresolved_reference"
	OutcomeError            Outcome = "error"
)

// RowError reports one failed row. Row numbers are 1-based positions in
// the source (for spreadsheets, the sheet row with header = row 1).
type RowError struct {
	Row   int    `json:"row"`
	Code  string `json:"ma_hang"`
	Error string `json:"error"`
}

// Summary accumulates row outcomes for one batch run.
type Summary struct {
	Inserted         int        `json:"inserted"`
	SkippedDuplicate int        `json:"skipped_duplicate"`
	SkippedInvalid   int        `json:"skipped_invalid"`
	Errors           []RowError `json:"errors"`
}

// Skipped returns the total number of skipped rows.
func (s *Summary) Skipped() int {
	return s.SkippedDuplicate + s.SkippedInvalid
}

// Failed returns the number of errored rows.
func (s *Summary) Failed() int {
	return len(s.Errors)
}

func (s *Summary) record(outcome Outcome, row int, code, msg string) {
	switch outcome {
	case OutcomeInserted:
		s.Inserted++
	case OutcomeSkippedDuplicate:
		s.SkippedDuplicate++
	case OutcomeSkippedInvalid:
		s.SkippedInvalid++
	case OutcomeErrorUnresolved, OutcomeError:
		s.Errors = append(s.Errors, RowError{Row: row, Code: code, Error: msg})
	}
}
