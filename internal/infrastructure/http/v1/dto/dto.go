// Package dto defines request and response shapes for the HTTP API.
// Catalog and report rows keep the Vietnamese field names the frontend
// and seed files already use; those types carry their own JSON tags in
// the domain packages and are returned directly.
package dto

import (
	"tonkho/internal/domain/importing"
)

// StockRequest is the body of POST /in and POST /out.
type StockRequest struct {
	MaterialID int64 `json:"material_id" binding:"required"`
	Qty        int64 `json:"qty" binding:"required"`
}

// StatusResponse is the minimal ok envelope.
type StatusResponse struct {
	Status string `json:"status"`
}

// OK is the canonical success response for movement calls.
var OK = StatusResponse{Status: "ok"}

// ImportExcelResponse summarizes one Excel import run.
type ImportExcelResponse struct {
	Inserted int                  `json:"inserted"`
	Skipped  int                  `json:"skipped"`
	Errors   []importing.RowError `json:"errors"`
}

// FromImportSummary converts an import summary to the API shape.
// Errors is always a non-nil array so clients can iterate it.
func FromImportSummary(s *importing.Summary) ImportExcelResponse {
	errs := s.Errors
	if errs == nil {
		errs = []importing.RowError{}
	}
	return ImportExcelResponse{
		Inserted: s.Inserted,
		Skipped:  s.Skipped(),
		Errors:   errs,
	}
}

// AdminClearRequest is the body of POST /admin/clear-data.
type AdminClearRequest struct {
	Key string `json:"key"`
}

// AdminClearResponse reports the outcome of an admin reset.
type AdminClearResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
