// Package reports derives stock figures from the transaction ledger.
// Nothing here is cached or materialized; every query recomputes from
// the ledger at request time.
package reports

import (
	"time"
)

// StockRow is one line of the current-stock view: the net quantity on
// hand for a material. Rows with zero net are suppressed.
type StockRow struct {
	Group string `db:"he_nhom" json:"he_nhom"`
	Code  string `db:"ma_hang" json:"ma_hang"`
	Stock int64  `db:"stock" json:"stock"`
}

// HistoryRow is one line of movement history, newest first.
type HistoryRow struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Code      string    `db:"ma_hang" json:"ma_hang"`
	Type      string    `db:"type" json:"type"`
	Quantity  int64     `db:"quantity" json:"quantity"`
}

// ReportRow is one line of the full period report: opening balance,
// in-period receipts and issues, and the resulting closing balance.
// Closing = opening + in - out; rows with zero closing are suppressed.
type ReportRow struct {
	Group     string `db:"he_nhom" json:"he_nhom"`
	Code      string `db:"ma_hang" json:"ma_hang"`
	Opening   int64  `db:"ton_dau" json:"ton_dau"`
	PeriodIn  int64  `db:"nhap" json:"nhap"`
	PeriodOut int64  `db:"xuat" json:"xuat"`
	Closing   int64  `db:"ton_cuoi" json:"ton_cuoi"`
}

// Period is a calendar-date reporting window, inclusive on both ends.
// Ledger timestamps are truncated to dates for comparison.
type Period struct {
	From time.Time
	To   time.Time
}

// DefaultHistoryLimit bounds the history view when the caller does not
// supply a limit.
const DefaultHistoryLimit = 100
