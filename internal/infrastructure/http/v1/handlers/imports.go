package handlers

import (
	"github.com/gin-gonic/gin"

	"tonkho/internal/core/apperror"
	"tonkho/internal/domain/importing"
	"tonkho/internal/infrastructure/http/v1/dto"
	"tonkho/internal/infrastructure/xlsx"
)

// ImportsHandler handles the Excel bulk import endpoint.
type ImportsHandler struct {
	*BaseHandler
	importer *importing.Service
}

// NewImportsHandler creates a new imports handler.
func NewImportsHandler(base *BaseHandler, importer *importing.Service) *ImportsHandler {
	return &ImportsHandler{
		BaseHandler: base,
		importer:    importer,
	}
}

// ImportExcel handles POST /import-excel (multipart, field "file").
func (h *ImportsHandler) ImportExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Error(c, apperror.NewValidation("multipart field \"file\" is required").
			WithDetail("error", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Error(c, apperror.NewValidation("cannot open uploaded file").
			WithDetail("error", err.Error()))
		return
	}
	defer func() { _ = file.Close() }()

	rows, err := xlsx.ParseImport(file)
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	summary, err := h.importer.ImportMovements(c.Request.Context(), rows)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromImportSummary(summary))
}
