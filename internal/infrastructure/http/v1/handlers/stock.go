package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"tonkho/internal/core/apperror"
	"tonkho/internal/domain/ledger"
	"tonkho/internal/domain/reports"
	"tonkho/internal/infrastructure/http/v1/dto"
)

// dateLayout is the calendar-date format of report query parameters.
const dateLayout = "2006-01-02"

// StockHandler handles stock movement and reporting endpoints.
type StockHandler struct {
	*BaseHandler
	ledger  *ledger.Service
	reports *reports.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, ledgerService *ledger.Service, reportsService *reports.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		ledger:      ledgerService,
		reports:     reportsService,
	}
}

// StockIn handles POST /in
func (h *StockHandler) StockIn(c *gin.Context) {
	h.record(c, ledger.DirectionIn)
}

// StockOut handles POST /out
func (h *StockHandler) StockOut(c *gin.Context) {
	h.record(c, ledger.DirectionOut)
}

func (h *StockHandler) record(c *gin.Context, dir ledger.Direction) {
	var req dto.StockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.ledger.Record(c.Request.Context(), req.MaterialID, dir, req.Qty); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.OK)
}

// GetStock handles GET /stock
func (h *StockHandler) GetStock(c *gin.Context) {
	rows, err := h.reports.CurrentStock(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if rows == nil {
		rows = []reports.StockRow{}
	}
	h.OK(c, rows)
}

// GetHistory handles GET /history?limit=N
func (h *StockHandler) GetHistory(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", reports.DefaultHistoryLimit)

	rows, err := h.reports.History(c.Request.Context(), limit)
	if err != nil {
		h.Error(c, err)
		return
	}
	if rows == nil {
		rows = []reports.HistoryRow{}
	}
	h.OK(c, rows)
}

// GetFullReport handles GET /report/full?from_date=YYYY-MM-DD&to_date=YYYY-MM-DD
func (h *StockHandler) GetFullReport(c *gin.Context) {
	fromStr := c.Query("from_date")
	toStr := c.Query("to_date")
	if fromStr == "" || toStr == "" {
		h.Error(c, apperror.NewValidation("from_date and to_date are required"))
		return
	}

	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid from_date, expected YYYY-MM-DD"))
		return
	}

	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid to_date, expected YYYY-MM-DD"))
		return
	}

	rows, err := h.reports.FullReport(c.Request.Context(), reports.Period{From: from, To: to})
	if err != nil {
		h.Error(c, err)
		return
	}
	if rows == nil {
		rows = []reports.ReportRow{}
	}
	h.OK(c, rows)
}
